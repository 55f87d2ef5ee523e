package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoud/recruitify/internal/store"
	"github.com/mahmoud/recruitify/internal/types"
)

func seedApplicant(m *store.Memory, key string, record map[string]any) {
	m.Seed(store.ApplicantsPath, key, record)
}

func TestComputeStatsEmpty(t *testing.T) {
	agg := NewAggregator(store.NewMemory())

	snapshot, err := agg.ComputeStats(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, &types.CompanyStats{}, snapshot)
	assert.Equal(t, 0.0, snapshot.AvgRating)
}

func TestComputeStatsNoMatchingCompany(t *testing.T) {
	m := store.NewMemory()
	seedApplicant(m, "k1", map[string]any{"company": "Globex", "status": "Pending", "rating": 50})

	snapshot, err := NewAggregator(m).ComputeStats(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, &types.CompanyStats{}, snapshot)
}

func TestComputeStatsCountsAndAverage(t *testing.T) {
	m := store.NewMemory()
	seedApplicant(m, "k1", map[string]any{"company": "Acme", "status": "Approved", "rating": 80})
	seedApplicant(m, "k2", map[string]any{"company": "Acme", "status": "Pending", "rating": 60})
	// No rating at all: excluded from the average, not counted as zero.
	seedApplicant(m, "k3", map[string]any{"company": "Acme", "status": "Rejected"})
	// Different company: ignored entirely.
	seedApplicant(m, "k4", map[string]any{"company": "Globex", "status": "Approved", "rating": 99})

	snapshot, err := NewAggregator(m).ComputeStats(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 1, snapshot.Pending)
	assert.Equal(t, 1, snapshot.Approved)
	assert.Equal(t, 1, snapshot.Rejected)
	assert.Equal(t, 70.0, snapshot.AvgRating)
}

func TestComputeStatsMalformedRecords(t *testing.T) {
	m := store.NewMemory()
	// Unknown status: in no bucket, and not in total.
	seedApplicant(m, "k1", map[string]any{"company": "Acme", "status": "In Review", "rating": 90})
	// Non-numeric rating: excluded from the average without an error.
	seedApplicant(m, "k2", map[string]any{"company": "Acme", "status": "Approved", "rating": "excellent"})
	// Numeric string rating parses.
	seedApplicant(m, "k3", map[string]any{"company": "Acme", "status": "Pending", "rating": "40"})

	snapshot, err := NewAggregator(m).ComputeStats(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.Total)
	assert.Equal(t, 1, snapshot.Pending)
	assert.Equal(t, 1, snapshot.Approved)
	assert.Equal(t, 0, snapshot.Rejected)
	// Average covers the malformed-status record's valid rating too:
	// company filtering, not status filtering, scopes the mean.
	assert.Equal(t, 65.0, snapshot.AvgRating)
}

func TestComputeStatsCaseSensitiveCompanyMatch(t *testing.T) {
	m := store.NewMemory()
	seedApplicant(m, "k1", map[string]any{"company": "acme", "status": "Pending"})

	snapshot, err := NewAggregator(m).ComputeStats(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.Total)
}

func TestComputeStatsUnavailable(t *testing.T) {
	m := store.NewMemory()
	m.FailWith(errors.New("network down"))

	snapshot, err := NewAggregator(m).ComputeStats(context.Background(), "Acme")
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOverview(t *testing.T) {
	m := store.NewMemory()
	seedApplicant(m, "k1", map[string]any{"company": "Acme", "status": "Pending", "rating": 75})
	m.Seed(store.JobsPath, "j1", map[string]any{"name": "Backend Engineer", "value": "go", "company_name": "Acme"})
	m.Seed(store.JobsPath, "j2", map[string]any{"name": "Designer", "value": "figma", "company_name": "Globex"})

	overview, err := NewAggregator(m).Overview(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, 1, overview.Stats.Total)
	assert.Equal(t, 75.0, overview.Stats.AvgRating)
	assert.Equal(t, 1, overview.OpenJobs)
}

func TestOverviewUnavailable(t *testing.T) {
	m := store.NewMemory()
	m.FailWith(errors.New("network down"))

	overview, err := NewAggregator(m).Overview(context.Background(), "Acme")
	assert.Nil(t, overview)
	assert.ErrorIs(t, err, ErrUnavailable)
}
