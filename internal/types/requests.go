package types

import (
	"github.com/go-playground/validator/v10"
)

// SubmitApplicationRequest carries one applicant submission into the
// workflow. Resume holds the raw PDF bytes; encoding happens later.
type SubmitApplicationRequest struct {
	FullName string `json:"full_name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Company  string `json:"company" validate:"required,min=1"`
	Job      string `json:"job" validate:"required,min=1"`
	Resume   []byte `json:"resume_data" validate:"required"`
}

// SignupRequest registers a new company.
type SignupRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=1"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

// LoginRequest authenticates a company by email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateJobRequest adds a job posting for the owning company.
type CreateJobRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Value       string `json:"value" validate:"required,min=1"`
	CompanyName string `json:"company_name" validate:"required,min=1"`
}

// Validate validates the SubmitApplicationRequest using the validator.
func (r *SubmitApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SignupRequest using the validator.
func (r *SignupRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
