package server

import (
	"encoding/json"
	"net/http"

	"github.com/mahmoud/recruitify/internal/types"
)

// SignupResponse is returned after a successful signup.
type SignupResponse struct {
	Key string `json:"key"`
}

// LoginResponse carries the signed API token.
type LoginResponse struct {
	CompanyName string `json:"company_name"`
	Token       string `json:"token"`
}

// handleSignup registers a new company.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	key, err := s.companies.Signup(r.Context(), req)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, SignupResponse{Key: key})
}

// handleLogin authenticates a company and issues an API token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	company, err := s.companies.Login(r.Context(), req)
	if err != nil {
		s.failWith(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(company.Key, company.Company.CompanyName)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{
		CompanyName: company.Company.CompanyName,
		Token:       token,
	})
}

// UpdatePasswordRequest carries a password change for the signed-in company.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// handleUpdatePassword changes the signed-in company's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	key, _, err := s.authedCompany(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.companies.UpdatePassword(r.Context(), key, req.CurrentPassword, req.NewPassword); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "password updated"})
}
