// internal/bench/report.go
//
// Aggregation of self-play results: guess-count distribution, average,
// and the words the solver struggled with most.

package bench

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Report holds per-answer guess counts for one evaluation run.
type Report struct {
	Guesses    map[string]int
	WordLength int
}

// Distribution maps guess count to how many answers needed it.
func (r *Report) Distribution() map[int]int {
	dist := make(map[int]int)
	for _, g := range r.Guesses {
		dist[g]++
	}
	return dist
}

// Average is the mean guess count across all answers.
func (r *Report) Average() float64 {
	if len(r.Guesses) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Guesses {
		total += g
	}
	return float64(total) / float64(len(r.Guesses))
}

// Worst returns the highest guess count and the answers that hit it,
// sorted for stable output.
func (r *Report) Worst() (int, []string) {
	if len(r.Guesses) == 0 {
		return 0, nil
	}
	counts := make([]int, 0, len(r.Guesses))
	for _, g := range r.Guesses {
		counts = append(counts, g)
	}
	worst := maxOf(counts)

	var answers []string
	for w, g := range r.Guesses {
		if g == worst {
			answers = append(answers, w)
		}
	}
	sort.Strings(answers)
	return worst, answers
}

// maxOf returns the largest value in a non-empty slice.
func maxOf[T constraints.Ordered](vals []T) T {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
