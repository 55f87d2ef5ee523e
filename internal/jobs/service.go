// Package jobs manages a company's job postings. Postings are only ever
// added or removed, never mutated in place.
package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/types"
)

// Posting pairs a job posting with its store key.
type Posting struct {
	Key     string           `json:"key"`
	Posting types.JobPosting `json:"posting"`
}

// Service provides job-posting operations against the record store.
type Service struct {
	store store.Store
}

// NewService creates a job-posting service.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Add creates a posting and returns its store key.
func (s *Service) Add(ctx context.Context, req types.CreateJobRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.store.Create(ctx, store.JobsPath, types.JobPosting{
		Name:        req.Name,
		Value:       req.Value,
		CompanyName: req.CompanyName,
	})
}

// Remove deletes a posting. Removing an absent key is not an error.
func (s *Service) Remove(ctx context.Context, key string) error {
	return s.store.Delete(ctx, store.ChildPath(store.JobsPath, key))
}

// ListByCompany returns all postings owned by companyName.
func (s *Service) ListByCompany(ctx context.Context, companyName string) ([]Posting, error) {
	all, err := s.store.FetchAll(ctx, store.JobsPath)
	if err != nil {
		return nil, err
	}

	var postings []Posting
	for key, raw := range all {
		var posting types.JobPosting
		if err := json.Unmarshal(raw, &posting); err != nil {
			log.Printf("skipping malformed job posting %s: %v", key, err)
			continue
		}
		if posting.CompanyName != companyName {
			continue
		}
		postings = append(postings, Posting{Key: key, Posting: posting})
	}
	return postings, nil
}
