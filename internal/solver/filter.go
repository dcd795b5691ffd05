// internal/solver/filter.go
//
// Possibility filtering: narrow a word list to the subset consistent
// with every (guess, feedback) pair seen so far.

package solver

import "wordlesolver/internal/feedback"

// Filter returns the words of dict that would have produced exactly
// the recorded feedback for every entry in history. The input is never
// mutated and order is preserved. An empty result signals a
// contradictory history; the caller decides how to report it.
func Filter(dict []string, history History) []string {
	out := make([]string, 0, len(dict))
	for _, w := range dict {
		if Consistent(w, history) {
			out = append(out, w)
		}
	}
	return out
}

// Consistent reports whether w could be the answer given history.
// A word whose length does not match a recorded guess is simply not a
// candidate.
func Consistent(w string, history History) bool {
	for _, e := range history {
		p, err := feedback.Compute(e.Guess, w)
		if err != nil || p != e.Pattern {
			return false
		}
	}
	return true
}
