// internal/solver/types.go
//
// Core type definitions for the solver.
// Defines:
//   - Entry/History: the guesses made so far and their feedback.
//   - Policy: scoring policy for candidate guesses.
//   - Result: the outcome of a best-guess search.
//   - Update: one progress event emitted during a search.

package solver

import (
	"errors"

	"wordlesolver/internal/feedback"
)

// Entry is one completed turn: a guess and the feedback it received.
type Entry struct {
	Guess   string
	Pattern feedback.Pattern
}

// History is the ordered, append-only record of all turns so far.
type History []Entry

// Policy selects how a candidate guess is scored. Lower is better
// under either policy.
type Policy int

const (
	// PolicyExpected scores a guess by the expected number of total
	// further guesses needed, assuming the answer is uniform over the
	// possibility set.
	PolicyExpected Policy = iota
	// PolicyMinimax scores a guess by the size of its largest
	// partition cell (worst-case remaining possibilities).
	PolicyMinimax
)

func (p Policy) String() string {
	if p == PolicyMinimax {
		return "minimax"
	}
	return "expected"
}

// ParsePolicy maps a flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "expected":
		return PolicyExpected, nil
	case "minimax":
		return PolicyMinimax, nil
	}
	return 0, errors.New("solver: unknown policy " + s)
}

// Result is the outcome of a best-guess search.
// Score is 0 only for a single-word possibility set, where Guess is
// that word and one further guess finishes the game.
type Result struct {
	Guess string  `json:"guess"`
	Score float64 `json:"score"`
}

// Update is one progress event: candidate number Index out of Total
// has been scored, and Best/BestScore track the leader so far.
// Improved is set when this candidate took the lead.
type Update struct {
	Index     int
	Total     int
	Candidate string
	Score     float64
	Best      string
	BestScore float64
	Improved  bool
}

// ErrNoPossibilities is returned when a search is asked to pick a
// guess from an empty possibility set (a contradictory history).
var ErrNoPossibilities = errors.New("solver: no possibilities remain")
