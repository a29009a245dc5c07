package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAttempts(t *testing.T, repo AttemptRepo, dominants ...string) []string {
	t.Helper()
	var ids []string
	for i, d := range dominants {
		id, err := repo.AppendAttempt(context.Background(), AttemptEventData{
			BankID:     "dosha-skin",
			Answers:    []string{d, d, "pitta"},
			VataPct:    10 * i,
			PittaPct:   20,
			KaphaPct:   30,
			Dominant:   d,
			DurationMs: int64(1000 * (i + 1)),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	ids := seedAttempts(t, repo, "vata", "pitta", "balanced")
	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])

	recs, err := repo.QueryAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Newest first.
	assert.Equal(t, ids[2], recs[0].AttemptID)
	assert.Equal(t, "balanced", recs[0].Dominant)
	assert.Equal(t, []string{"balanced", "balanced", "pitta"}, recs[0].Answers)
	assert.Equal(t, 20, recs[0].VataPct)
	assert.Equal(t, int64(3000), recs[0].DurationMs)
	assert.Equal(t, "dosha-skin", recs[0].BankID)
}

func TestQueryAttempts_Filters(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	seedAttempts(t, repo, "vata", "pitta", "kapha", "vata")

	all, err := repo.QueryAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)

	limited, err := repo.QueryAttempts(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, all[0].Sequence, limited[0].Sequence)

	older, err := repo.QueryAttempts(ctx, QueryOpts{Before: all[1].Sequence})
	require.NoError(t, err)
	require.Len(t, older, 2)
	assert.Equal(t, all[2].Sequence, older[0].Sequence)

	newer, err := repo.QueryAttempts(ctx, QueryOpts{After: all[2].Sequence})
	require.NoError(t, err)
	assert.Len(t, newer, 2)

	future, err := repo.QueryAttempts(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	past, err := repo.QueryAttempts(ctx, QueryOpts{To: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	empty, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)
	assert.Empty(t, empty.ByDominant)

	seedAttempts(t, repo, "vata", "vata", "kapha")

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"vata": 2, "kapha": 1}, stats.ByDominant)
	assert.InDelta(t, 10.0, stats.AvgVata, 1e-9) // 0, 10, 20
	assert.InDelta(t, 20.0, stats.AvgPitta, 1e-9)
	assert.InDelta(t, 30.0, stats.AvgKapha, 1e-9)
	assert.False(t, stats.First.After(stats.Last))
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	seedAttempts(t, repo, "vata", "pitta")

	n, err := repo.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	recs, err := repo.QueryAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, recs)

	n, err = repo.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
