package server

import (
	"encoding/json"
	"net/http"

	"github.com/mahmoud/recruitify/internal/types"
)

// CreateJobBody is the wire form of a new posting; the owning company
// comes from the token, not the body.
type CreateJobBody struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// handleCreateJob adds a posting for the signed-in company.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	_, companyName, err := s.authedCompany(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body CreateJobBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	key, err := s.jobs.Add(r.Context(), types.CreateJobRequest{
		Name:        body.Name,
		Value:       body.Value,
		CompanyName: companyName,
	})
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"key": key})
}

// handleListJobs lists the signed-in company's postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	_, companyName, err := s.authedCompany(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postings, err := s.jobs.ListByCompany(r.Context(), companyName)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  postings,
		"count": len(postings),
	})
}

// handleDeleteJob removes a posting.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if err := s.jobs.Remove(r.Context(), key); err != nil {
		s.failWith(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
