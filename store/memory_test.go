package store_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conmates/models"
	"conmates/store"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	result := models.LeaseAnalysisResult{
		Analysis:  "Summary: the lease is mostly standard.",
		ModelName: "gemini-2.0-flash",
		Summary: &models.LeaseSummary{
			Rent:     "$1200/month",
			Deposit:  "$1200",
			Term:     "12 months",
			RedFlags: []string{"automatic renewal clause"},
		},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(result)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, models.SnapshotKeyLeaseAnalysis, raw))

	got, ok, err := s.Get(ctx, models.SnapshotKeyLeaseAnalysis)
	require.NoError(t, err)
	require.True(t, ok)

	var loaded models.LeaseAnalysisResult
	require.NoError(t, json.Unmarshal(got, &loaded))
	assert.Equal(t, result, loaded)
}

func TestMemoryMissIsNotAnError(t *testing.T) {
	s := store.NewMemory()
	_, ok, err := s.Get(context.Background(), "never-written")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryLastWriteWins(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, models.SnapshotKeyLeaseAnalysis, []byte(`{"analysis":"first"}`)))
	require.NoError(t, s.Set(ctx, models.SnapshotKeyLeaseAnalysis, []byte(`{"analysis":"second"}`)))

	got, ok, err := s.Get(ctx, models.SnapshotKeyLeaseAnalysis)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"analysis":"second"}`, string(got))
}

func TestMemoryToleratesPartialSnapshots(t *testing.T) {
	// A snapshot written by an older schema version may be missing any
	// field; loading it must still produce a usable value.
	s := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, models.SnapshotKeyLeaseAnalysis, []byte(`{"summary":{"rent":"$900"}}`)))

	got, ok, err := s.Get(ctx, models.SnapshotKeyLeaseAnalysis)
	require.NoError(t, err)
	require.True(t, ok)

	var loaded models.LeaseAnalysisResult
	require.NoError(t, json.Unmarshal(got, &loaded))
	assert.Empty(t, loaded.Analysis)
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, "$900", loaded.Summary.Rent)
	assert.Empty(t, loaded.Summary.RedFlags)
}
