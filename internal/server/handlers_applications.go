package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/mahmoud/recruitify/internal/types"
	"github.com/mahmoud/recruitify/internal/workflow"
)

// SubmitApplicationBody is the wire form of a submission; the resume
// travels base64-encoded.
type SubmitApplicationBody struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Job        string `json:"job"`
	ResumeData string `json:"resume_data"`
}

// SubmitApplicationResponse is returned after a successful submission.
// The resume payload is not echoed back.
type SubmitApplicationResponse struct {
	Key     string       `json:"key"`
	Status  types.Status `json:"status"`
	Rating  types.Rating `json:"rating"`
	Summary string       `json:"summary"`
}

// handleSubmitApplication accepts an applicant submission, runs the
// analysis pipeline, and creates the record.
func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var body SubmitApplicationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resume, err := base64.StdEncoding.DecodeString(body.ResumeData)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_data is not valid base64")
		return
	}

	key, record, err := s.workflow.Submit(r.Context(), types.SubmitApplicationRequest{
		FullName: body.FullName,
		Email:    body.Email,
		Company:  body.Company,
		Job:      body.Job,
		Resume:   resume,
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, SubmitApplicationResponse{
		Key:     key,
		Status:  record.Status,
		Rating:  record.Rating,
		Summary: record.Summary,
	})
}

// ApplicationSummary is a listing row without the resume payload.
type ApplicationSummary struct {
	Key      string       `json:"key"`
	FullName string       `json:"full_name"`
	Email    string       `json:"email"`
	Job      string       `json:"job"`
	Status   types.Status `json:"status"`
	Rating   types.Rating `json:"rating"`
	Summary  string       `json:"summary"`
}

// handleListApplications lists the signed-in company's applications.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	_, companyName, err := s.authedCompany(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	apps, err := s.workflow.ListByCompany(r.Context(), companyName)
	if err != nil {
		s.failWith(w, err)
		return
	}

	rows := make([]ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, ApplicationSummary{
			Key:      app.Key,
			FullName: app.Record.FullName,
			Email:    app.Record.Email,
			Job:      app.Record.Job,
			Status:   app.Record.Status,
			Rating:   app.Record.Rating,
			Summary:  app.Record.Summary,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": rows,
		"count":        len(rows),
	})
}

// handleGetApplication returns one full record, resume payload included.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	app, err := s.workflow.Get(r.Context(), key)
	if err != nil {
		s.failWith(w, err)
		return
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, "application not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// SetStatusRequest carries a review decision.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// handleSetStatus moves an application to a new review state.
func (s *Server) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	status, err := types.ParseStatus(req.Status)
	if err != nil {
		s.failWith(w, workflow.ErrInvalidStatus)
		return
	}

	if err := s.workflow.SetStatus(r.Context(), key, status); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"key": key, "status": status})
}

// handleDeleteApplication removes a record. Deleting an absent key
// succeeds, matching the store's idempotent delete.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	if err := s.workflow.Delete(r.Context(), key); err != nil {
		s.failWith(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
