package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mahmoud/recruitify/internal/config"
	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/types"
)

// RegisteredCompany pairs a company record with its store key.
type RegisteredCompany struct {
	Key     string
	Company types.Company
}

// CompanyService handles company signup and authentication against the
// record store. Email uniqueness is enforced with a pre-write scan;
// company_name uniqueness is deliberately not checked.
type CompanyService struct {
	store     store.Store
	passwords *config.PasswordConfig
}

// NewCompanyService creates a company service.
func NewCompanyService(st store.Store, passwords *config.PasswordConfig) *CompanyService {
	return &CompanyService{store: st, passwords: passwords}
}

// Signup registers a new company with a hashed password and returns its
// store key.
func (s *CompanyService) Signup(ctx context.Context, req types.SignupRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", &ErrValidation{Message: err.Error()}
	}

	existing, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return "", err
	}

	return s.store.Create(ctx, store.CompaniesPath, types.Company{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    hash,
	})
}

// Login authenticates a company by email and password.
func (s *CompanyService) Login(ctx context.Context, req types.LoginRequest) (*RegisteredCompany, error) {
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Message: err.Error()}
	}

	company, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if company == nil || !s.passwords.Verify(company.Company.Password, req.Password) {
		return nil, &ErrInvalidCredentials{}
	}
	return company, nil
}

// UpdatePassword replaces the stored hash after verifying the current
// password.
func (s *CompanyService) UpdatePassword(ctx context.Context, key, current, next string) error {
	if len(next) < 6 {
		return &ErrValidation{Message: "password must be at least 6 characters"}
	}

	raw, err := s.store.FetchOne(ctx, store.ChildPath(store.CompaniesPath, key))
	if err != nil {
		return err
	}
	if raw == nil {
		return &ErrCompanyNotFound{Key: key}
	}

	var company types.Company
	if err := json.Unmarshal(raw, &company); err != nil {
		return fmt.Errorf("malformed company record %s: %w", key, err)
	}
	if !s.passwords.Verify(company.Password, current) {
		return &ErrInvalidCredentials{}
	}

	hash, err := s.passwords.Hash(next)
	if err != nil {
		return err
	}
	return s.store.Update(ctx, store.ChildPath(store.CompaniesPath, key), map[string]any{
		"password": hash,
	})
}

// findByEmail scans companies for an exact email match.
func (s *CompanyService) findByEmail(ctx context.Context, email string) (*RegisteredCompany, error) {
	companies, err := s.store.FetchAll(ctx, store.CompaniesPath)
	if err != nil {
		return nil, err
	}
	for key, raw := range companies {
		var company types.Company
		if err := json.Unmarshal(raw, &company); err != nil {
			continue
		}
		if company.Email == email {
			return &RegisteredCompany{Key: key, Company: company}, nil
		}
	}
	return nil, nil
}
