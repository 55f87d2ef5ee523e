// Package stats derives per-company snapshots from the raw applicant set.
// Every computation is a fresh scan through the gateway; nothing is cached.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/types"
)

// ErrUnavailable indicates the aggregator's fetch failed. No partial or
// stale result is ever returned alongside it.
var ErrUnavailable = errors.New("statistics unavailable")

// Overview extends the stats snapshot with the company's open postings.
type Overview struct {
	Stats    types.CompanyStats `json:"stats"`
	OpenJobs int                `json:"open_jobs"`
}

// Aggregator computes company statistics through the record store gateway.
type Aggregator struct {
	store store.Store
}

// NewAggregator creates an aggregator.
func NewAggregator(st store.Store) *Aggregator {
	return &Aggregator{store: st}
}

// ComputeStats scans all applicants and tallies those whose company field
// equals companyName exactly. Unknown status strings count toward no
// bucket, and total is the sum of the three known buckets. The average
// covers only records whose rating is present and parseable; a record
// without a rating is excluded from the mean, not counted as zero.
func (a *Aggregator) ComputeStats(ctx context.Context, companyName string) (*types.CompanyStats, error) {
	all, err := a.store.FetchAll(ctx, store.ApplicantsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return tally(all, companyName), nil
}

// Overview fetches the stats snapshot and the open-posting count
// concurrently. Either fetch failing fails the whole overview.
func (a *Aggregator) Overview(ctx context.Context, companyName string) (*Overview, error) {
	var (
		applicants map[string]json.RawMessage
		postings   map[string]json.RawMessage
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		applicants, err = a.store.FetchAll(ctx, store.ApplicantsPath)
		return err
	})
	g.Go(func() error {
		var err error
		postings, err = a.store.FetchAll(ctx, store.JobsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	openJobs := 0
	for _, raw := range postings {
		var posting types.JobPosting
		if err := json.Unmarshal(raw, &posting); err != nil {
			continue
		}
		if posting.CompanyName == companyName {
			openJobs++
		}
	}

	return &Overview{Stats: *tally(applicants, companyName), OpenJobs: openJobs}, nil
}

func tally(records map[string]json.RawMessage, companyName string) *types.CompanyStats {
	stats := &types.CompanyStats{}
	ratingSum, ratingCount := 0.0, 0

	for _, raw := range records {
		var record types.ApplicationRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		if record.Company != companyName {
			continue
		}

		switch record.Status {
		case types.StatusPending:
			stats.Pending++
		case types.StatusApproved:
			stats.Approved++
		case types.StatusRejected:
			stats.Rejected++
		}

		if record.Rating.Valid {
			ratingSum += record.Rating.Value
			ratingCount++
		}
	}

	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	if ratingCount > 0 {
		stats.AvgRating = ratingSum / float64(ratingCount)
	}
	return stats
}
