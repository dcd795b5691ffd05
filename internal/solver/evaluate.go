// internal/solver/evaluate.go
//
// Guess evaluation: partition a possibility set by the feedback a
// candidate guess would receive, and score the candidate from the
// partition shape (recursing through the Searcher for deep scores).

package solver

import (
	"context"
	"sort"

	"wordlesolver/internal/feedback"
)

// Cell is one partition bucket: the possibility-set members that would
// yield Pattern if the candidate were guessed.
type Cell struct {
	Pattern feedback.Pattern
	Words   []string
}

// Partition groups possibilities by the pattern candidate would
// receive against each of them. Cells are disjoint, cover the input
// exactly, and are returned in ascending pattern order so that
// downstream float accumulation is deterministic. The all-green cell,
// when present, holds exactly the candidate itself.
func Partition(possibilities []string, candidate string) []Cell {
	buckets := make(map[feedback.Pattern][]string)
	for _, w := range possibilities {
		p, err := feedback.Compute(candidate, w)
		if err != nil {
			continue
		}
		buckets[p] = append(buckets[p], w)
	}

	cells := make([]Cell, 0, len(buckets))
	for p, ws := range buckets {
		cells = append(cells, Cell{Pattern: p, Words: ws})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Pattern < cells[j].Pattern })
	return cells
}

// Evaluate partitions possibilities by candidate and returns the
// partition together with the candidate's score under the searcher's
// policy, recursing up to depth levels. Evaluation is referentially
// transparent: identical inputs always produce identical output.
func (s *Searcher) Evaluate(ctx context.Context, possibilities []string, candidate string, depth int) ([]Cell, float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	cells := Partition(possibilities, candidate)
	score, _, err := s.scoreCells(ctx, cells, candidate, len(possibilities), depth, noBound)
	return cells, score, err
}
