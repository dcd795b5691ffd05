package bench

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewStore(db)
	require.NoError(t, s.EnsureSchema(context.Background()))
	// EnsureSchema must be idempotent.
	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func TestSaveReportRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	report := &Report{
		Guesses:    map[string]int{"drink": 2, "prink": 3, "print": 3, "crane": 1},
		WordLength: 5,
	}
	runID, err := s.SaveReport(ctx, RunMeta{
		Words: 4, WordLength: 5, Policy: "expected", Depth: 2,
	}, report)
	require.NoError(t, err)
	assert.Positive(t, runID)

	dist, err := s.Distribution(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 2}, dist)

	worst, err := s.Worst(ctx, runID, 2)
	require.NoError(t, err)
	require.Len(t, worst, 2)
	assert.Equal(t, AnswerResult{Answer: "prink", Guesses: 3}, worst[0])
	assert.Equal(t, AnswerResult{Answer: "print", Guesses: 3}, worst[1])
}

func TestDistributionEmptyRun(t *testing.T) {
	s := testStore(t)
	dist, err := s.Distribution(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, dist)
}
