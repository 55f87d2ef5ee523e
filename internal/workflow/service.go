// Package workflow implements the application lifecycle: submission,
// review-state changes, and deletion. All store access goes through the
// injected gateway; all AI access goes through the injected analyzer.
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mahmoud/recruitify/internal/analysis"
	"github.com/mahmoud/recruitify/internal/ingestion"
	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/types"
)

// ErrInvalidStatus indicates a status value outside the three-valued enum.
// It is raised before any gateway write.
var ErrInvalidStatus = errors.New("invalid application status")

// ErrUnknownCompany indicates a submission naming a company that is not
// registered. Rejected before the resume is sent anywhere.
var ErrUnknownCompany = errors.New("unknown company")

// Application pairs a record with its store key.
type Application struct {
	Key    string                  `json:"key"`
	Record types.ApplicationRecord `json:"record"`
}

// Service coordinates the application workflow against the record store.
type Service struct {
	store    store.Store
	analyzer analysis.Analyzer
}

// NewService creates a workflow service.
func NewService(st store.Store, analyzer analysis.Analyzer) *Service {
	return &Service{store: st, analyzer: analyzer}
}

// Submit runs the whole submission flow: validate the request and the PDF,
// analyze the resume against the posting's keywords, extract the review,
// and create the record with status forced to Pending. It returns the
// store-assigned key and the created record.
func (s *Service) Submit(ctx context.Context, req types.SubmitApplicationRequest) (string, *types.ApplicationRecord, error) {
	if err := req.Validate(); err != nil {
		return "", nil, fmt.Errorf("invalid submission: %w", err)
	}
	if err := ingestion.ValidatePDF(req.Resume); err != nil {
		return "", nil, err
	}

	if err := s.companyExists(ctx, req.Company); err != nil {
		return "", nil, err
	}

	keywords, err := s.postingKeywords(ctx, req.Company, req.Job)
	if err != nil {
		return "", nil, err
	}

	response, err := s.analyzer.AnalyzeResume(ctx, req.Resume, keywords)
	if err != nil {
		return "", nil, fmt.Errorf("resume analysis failed: %w", err)
	}
	review := analysis.ExtractReview(response)

	record := types.ApplicationRecord{
		FullName:   req.FullName,
		Email:      req.Email,
		Company:    req.Company,
		Job:        req.Job,
		Status:     types.StatusPending,
		Rating:     types.NewRating(float64(review.Rating)),
		Summary:    review.Summary,
		ResumeData: ingestion.Encode(req.Resume),
	}

	key, err := s.store.Create(ctx, store.ApplicantsPath, record)
	if err != nil {
		return "", nil, err
	}
	return key, &record, nil
}

// SetStatus moves the record to newStatus. The value is validated before
// any gateway call; an illegal value performs no write. Any legal state
// may move to any other, and the change is immediately visible to other
// readers (last write wins).
func (s *Service) SetStatus(ctx context.Context, key string, newStatus types.Status) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	return s.store.Update(ctx, store.ChildPath(store.ApplicantsPath, key), map[string]any{
		"status": newStatus,
	})
}

// Delete removes the application. Deleting an absent key is not an error.
func (s *Service) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, store.ChildPath(store.ApplicantsPath, key))
}

// Get fetches one application, or nil when absent.
func (s *Service) Get(ctx context.Context, key string) (*Application, error) {
	raw, err := s.store.FetchOne(ctx, store.ChildPath(store.ApplicantsPath, key))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var record types.ApplicationRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("malformed application record %s: %w", key, err)
	}
	return &Application{Key: key, Record: record}, nil
}

// ListByCompany returns every application whose company field matches
// companyName exactly (case-sensitive). Records that fail to decode are
// skipped rather than failing the listing.
func (s *Service) ListByCompany(ctx context.Context, companyName string) ([]Application, error) {
	all, err := s.store.FetchAll(ctx, store.ApplicantsPath)
	if err != nil {
		return nil, err
	}

	var apps []Application
	for key, raw := range all {
		var record types.ApplicationRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			log.Printf("skipping malformed application record %s: %v", key, err)
			continue
		}
		if record.Company != companyName {
			continue
		}
		apps = append(apps, Application{Key: key, Record: record})
	}
	return apps, nil
}

// companyExists scans the registered companies for an exact name match.
func (s *Service) companyExists(ctx context.Context, companyName string) error {
	companies, err := s.store.FetchAll(ctx, store.CompaniesPath)
	if err != nil {
		return err
	}
	for _, raw := range companies {
		var company types.Company
		if err := json.Unmarshal(raw, &company); err != nil {
			continue
		}
		if company.CompanyName == companyName {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownCompany, companyName)
}

// postingKeywords looks up the scoring keywords for the named posting.
// The job field is free text, so a posting may not exist; the analysis
// then falls back to generic criteria instead of rejecting the applicant.
func (s *Service) postingKeywords(ctx context.Context, companyName, jobName string) (string, error) {
	postings, err := s.store.FetchAll(ctx, store.JobsPath)
	if err != nil {
		return "", err
	}
	for _, raw := range postings {
		var posting types.JobPosting
		if err := json.Unmarshal(raw, &posting); err != nil {
			continue
		}
		if posting.CompanyName == companyName && posting.Name == jobName {
			return posting.Value, nil
		}
	}
	log.Printf("no posting %q for company %q, scoring with generic criteria", jobName, companyName)
	return "general professional experience and skills", nil
}
