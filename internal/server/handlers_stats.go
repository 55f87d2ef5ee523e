package server

import (
	"net/http"
)

// handleStats returns the signed-in company's statistics snapshot.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_, companyName, err := s.authedCompany(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	snapshot, err := s.aggregator.ComputeStats(r.Context(), companyName)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleOverview returns stats plus the open-posting count.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	_, companyName, err := s.authedCompany(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	overview, err := s.aggregator.Overview(r.Context(), companyName)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, overview)
}
