// Package server provides the HTTP REST API for the recruitment backend.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mahmoud/recruitify/internal/ingestion"
	"github.com/mahmoud/recruitify/internal/stats"
	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/workflow"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrCompanyNotFound indicates the company record was not found.
type ErrCompanyNotFound struct {
	Key string
}

func (e *ErrCompanyNotFound) Error() string {
	return fmt.Sprintf("company not found: %s", e.Key)
}

// ErrValidation indicates a request rejected before any store call.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		fieldErrors validator.ValidationErrors
		pdfRejected *ingestion.ValidationError
		emailTaken  *ErrEmailAlreadyExists
		badLogin    *ErrInvalidCredentials
		companyGone *ErrCompanyNotFound
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &fieldErrors), errors.As(err, &pdfRejected),
		errors.Is(err, workflow.ErrInvalidStatus), errors.Is(err, workflow.ErrUnknownCompany),
		errors.Is(err, store.ErrInvalidRecord):
		return http.StatusBadRequest
	case errors.As(err, &badLogin):
		return http.StatusUnauthorized
	case errors.As(err, &companyGone), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &emailTaken):
		return http.StatusConflict
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, stats.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
