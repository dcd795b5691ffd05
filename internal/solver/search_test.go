package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestGuessSingleton(t *testing.T) {
	s := NewSearcher(testDict, PolicyExpected)
	res, err := s.BestGuess(context.Background(), []string{"drink"}, 2)
	require.NoError(t, err)
	assert.Equal(t, Result{Guess: "drink", Score: 0}, res)
}

func TestBestGuessEmpty(t *testing.T) {
	s := NewSearcher(testDict, PolicyExpected)
	_, err := s.BestGuess(context.Background(), nil, 2)
	assert.ErrorIs(t, err, ErrNoPossibilities)
}

// The worked scenario: after bacon:RRRRY and grues:RGRRR the dictionary
// narrows to {drink, prink, print}, and drink is the best guess with an
// expected 5/3 ≈ 1.67 total further guesses.
func TestBestGuessEndToEnd(t *testing.T) {
	history, err := ParseHistory("bacon:RRRRY,grues:RGRRR", 5)
	require.NoError(t, err)

	poss := Filter(testDict, history)
	assert.ElementsMatch(t, []string{"drink", "prink", "print"}, poss)

	s := NewSearcher(testDict, PolicyExpected)
	res, err := s.BestGuess(context.Background(), poss, 2)
	require.NoError(t, err)
	assert.Equal(t, "drink", res.Guess)
	assert.InDelta(t, 5.0/3.0, res.Score, 1e-9)
}

func TestBestGuessMinimax(t *testing.T) {
	poss := []string{"drink", "prink", "print"}
	s := NewSearcher(testDict, PolicyMinimax)
	res, err := s.BestGuess(context.Background(), poss, 2)
	require.NoError(t, err)
	assert.Equal(t, "drink", res.Guess)
	assert.Equal(t, 1.0, res.Score)
}

// Two possibilities cost 1.5 expected guesses, and the lexicographic
// tie-break picks the smaller member.
func TestBestGuessPair(t *testing.T) {
	dict := []string{"crane", "stare", "store"}
	s := NewSearcher(dict, PolicyExpected)
	res, err := s.BestGuess(context.Background(), []string{"stare", "store"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "stare", res.Guess)
	assert.InDelta(t, 1.5, res.Score, 1e-9)
}

func TestBestGuessDeterministic(t *testing.T) {
	history, err := ParseHistory("bacon:RRRRY", 5)
	require.NoError(t, err)
	poss := Filter(testDict, history)
	require.NotEmpty(t, poss)

	var first Result
	for run := 0; run < 3; run++ {
		for _, workers := range []int{1, 4} {
			s := NewSearcher(testDict, PolicyExpected)
			s.Workers = workers
			res, err := s.BestGuess(context.Background(), poss, 2)
			require.NoError(t, err)
			if run == 0 && workers == 1 {
				first = res
				continue
			}
			assert.Equal(t, first, res, "run %d workers %d", run, workers)
		}
	}
}

func TestBestGuessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSearcher(testDict, PolicyExpected)
	res, err := s.BestGuess(ctx, []string{"drink", "prink", "print"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Guess)
}

func TestBestGuessProgressTrace(t *testing.T) {
	var updates []Update
	s := NewSearcher(testDict, PolicyExpected)
	s.Progress = func(u Update) { updates = append(updates, u) }

	res, err := s.BestGuess(context.Background(), []string{"drink", "prink", "print"}, 2)
	require.NoError(t, err)
	require.NotEmpty(t, updates)

	assert.True(t, updates[0].Improved, "first candidate always takes the lead")
	lastBest := updates[0].BestScore
	for _, u := range updates[1:] {
		if u.Improved {
			assert.Less(t, u.BestScore, lastBest, "improvements must lower the best score")
			lastBest = u.BestScore
		}
	}
	final := updates[len(updates)-1]
	assert.Equal(t, res.Guess, final.Best)
	assert.Equal(t, res.Score, final.BestScore)
}
