package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mahmoud/recruitify/internal/analysis"
	"github.com/mahmoud/recruitify/internal/config"
	"github.com/mahmoud/recruitify/internal/jobs"
	"github.com/mahmoud/recruitify/internal/server/middleware"
	"github.com/mahmoud/recruitify/internal/stats"
	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/workflow"
)

// Server is the HTTP API over the workflow, jobs, stats, and auth services.
type Server struct {
	httpServer *http.Server
	workflow   *workflow.Service
	jobs       *jobs.Service
	aggregator *stats.Aggregator
	companies  *CompanyService
	jwtService *JWTService
}

// Config holds server wiring.
type Config struct {
	Port     int
	Store    store.Store
	Analyzer analysis.Analyzer
}

// New creates a server instance. The store and analyzer are injected so
// tests can substitute in-memory fakes.
func New(cfg Config) (*Server, error) {
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	s := &Server{
		workflow:   workflow.NewService(cfg.Store, cfg.Analyzer),
		jobs:       jobs.NewService(cfg.Store),
		aggregator: stats.NewAggregator(cfg.Store),
		companies:  NewCompanyService(cfg.Store, passwordConfig),
		jwtService: NewJWTService(jwtConfig),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // resume analysis calls can be slow
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// routes builds the router. Staff routes sit behind token auth; signup,
// login, and applicant submission are public.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	authed := middleware.Auth(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Public
	mux.HandleFunc("POST /auth/signup", s.handleSignup)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /applications", s.handleSubmitApplication)

	// Staff
	mux.Handle("GET /applications", authed(http.HandlerFunc(s.handleListApplications)))
	mux.Handle("GET /applications/{key}", authed(http.HandlerFunc(s.handleGetApplication)))
	mux.Handle("PATCH /applications/{key}/status", authed(http.HandlerFunc(s.handleSetStatus)))
	mux.Handle("DELETE /applications/{key}", authed(http.HandlerFunc(s.handleDeleteApplication)))

	mux.Handle("GET /jobs", authed(http.HandlerFunc(s.handleListJobs)))
	mux.Handle("POST /jobs", authed(http.HandlerFunc(s.handleCreateJob)))
	mux.Handle("DELETE /jobs/{key}", authed(http.HandlerFunc(s.handleDeleteJob)))

	mux.Handle("GET /stats", authed(http.HandlerFunc(s.handleStats)))
	mux.Handle("GET /overview", authed(http.HandlerFunc(s.handleOverview)))

	mux.Handle("PUT /auth/password", authed(http.HandlerFunc(s.handleUpdatePassword)))

	return mux
}

// authedCompany returns the company identity set by the auth middleware.
func (s *Server) authedCompany(r *http.Request) (key, name string, err error) {
	return middleware.Company(r)
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
