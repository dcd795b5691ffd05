// internal/solver/search.go
//
// Optimal guess search.
//
// BestGuess scans every allowed guess word (the full dictionary, not
// just the remaining possibilities: an outside word can still split
// the set better), scores each candidate under the configured policy,
// and keeps the minimum. Ties prefer a candidate that is itself a
// possibility, then the lexicographically smaller word, so results are
// deterministic even under parallel evaluation.
//
// Cost control:
//   - depth budget: true recursion only depth levels down, then a
//     partition-shape estimate;
//   - pruning: candidates whose shape lower bound is strictly worse
//     than the best score so far are skipped;
//   - memoization: subproblems are keyed by the sorted possibility set
//     and remaining depth in a bounded LRU cache. Recomputing an entry
//     is wasteful but never wrong, so last-writer-wins is safe.

package solver

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultDepth bounds true recursion; beyond it the evaluator falls
	// back to the partition-shape estimate.
	DefaultDepth = 2

	memoEntries = 1 << 16

	noBound = math.MaxFloat64
)

// Searcher holds the read-only allowed-guess list and the shared memo
// cache. Safe for concurrent use.
type Searcher struct {
	// Workers > 1 spreads top-level candidate evaluation across that
	// many goroutines.
	Workers int

	// Progress, when set, receives one Update per candidate evaluated
	// at the top level of BestGuess.
	Progress func(Update)

	allowed []string
	policy  Policy
	memo    *lru.Cache[string, Result]
}

// NewSearcher builds a Searcher over allowed guess words. The list is
// copied and sorted; the input is not retained.
func NewSearcher(allowed []string, policy Policy) *Searcher {
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	memo, _ := lru.New[string, Result](memoEntries)
	return &Searcher{allowed: sorted, policy: policy, memo: memo}
}

// BestGuess returns the allowed word minimizing the policy score for
// the given possibility set, recursing at most depth levels.
//
// A single possibility is terminal: that word is returned with score 0
// (guess it and the game is over). An empty set is a contradictory
// history and returns ErrNoPossibilities.
//
// Cancelling ctx stops the scan between candidates; the best result
// found so far is returned alongside the context error.
func (s *Searcher) BestGuess(ctx context.Context, possibilities []string, depth int) (Result, error) {
	switch len(possibilities) {
	case 0:
		return Result{}, ErrNoPossibilities
	case 1:
		return Result{Guess: possibilities[0], Score: 0}, nil
	}
	if len(s.allowed) == 0 {
		return Result{}, errors.New("solver: no allowed guesses")
	}
	if s.Workers > 1 {
		return s.searchParallel(ctx, possibilities, depth)
	}
	return s.search(ctx, possibilities, depth, true)
}

// search is the sequential scan. report gates progress events so that
// recursive sub-searches stay quiet.
func (s *Searcher) search(ctx context.Context, poss []string, depth int, report bool) (Result, error) {
	key := memoKey(poss, depth)
	if r, ok := s.memo.Get(key); ok {
		return r, nil
	}

	inPoss := memberSet(poss)
	best := Result{Score: noBound}
	bestIn := false
	perfect := s.perfectScore(len(poss))

	for i, cand := range s.allowed {
		if err := ctx.Err(); err != nil {
			return sanitize(best), err
		}
		cells := Partition(poss, cand)
		score, pruned, err := s.scoreCells(ctx, cells, cand, len(poss), depth, best.Score)
		if err != nil {
			return sanitize(best), err
		}
		improved := false
		if !pruned && better(score, inPoss[cand], best.Score, bestIn, cand, best.Guess) {
			best = Result{Guess: cand, Score: score}
			bestIn = inPoss[cand]
			improved = true
		}
		if report && s.Progress != nil {
			s.Progress(Update{
				Index: i + 1, Total: len(s.allowed),
				Candidate: cand, Score: score,
				Best: best.Guess, BestScore: best.Score,
				Improved: improved,
			})
		}
		// A possibility-set member at the theoretical minimum cannot
		// lose any remaining tie-break: stop scanning.
		if bestIn && best.Score <= perfect {
			break
		}
	}

	s.memo.Add(key, best)
	return best, nil
}

// searchParallel fans top-level candidate evaluation out across
// Workers goroutines. Scoring is referentially transparent, so the
// shared best tracker and memo cache only need mutual exclusion; the
// total-order tie-break makes the final pick independent of
// evaluation order.
func (s *Searcher) searchParallel(ctx context.Context, poss []string, depth int) (Result, error) {
	key := memoKey(poss, depth)
	if r, ok := s.memo.Get(key); ok {
		return r, nil
	}

	inPoss := memberSet(poss)

	var (
		mu     sync.Mutex
		best   = Result{Score: noBound}
		bestIn bool
		done   int
	)

	var g errgroup.Group
	chunk := (len(s.allowed) + s.Workers - 1) / s.Workers
	for w := 0; w < s.Workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(s.allowed))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for _, cand := range s.allowed[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				mu.Lock()
				bound := best.Score
				mu.Unlock()

				cells := Partition(poss, cand)
				score, pruned, err := s.scoreCells(ctx, cells, cand, len(poss), depth, bound)
				if err != nil {
					return err
				}

				mu.Lock()
				done++
				improved := false
				if !pruned && better(score, inPoss[cand], best.Score, bestIn, cand, best.Guess) {
					best = Result{Guess: cand, Score: score}
					bestIn = inPoss[cand]
					improved = true
				}
				if s.Progress != nil {
					s.Progress(Update{
						Index: done, Total: len(s.allowed),
						Candidate: cand, Score: score,
						Best: best.Guess, BestScore: best.Score,
						Improved: improved,
					})
				}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sanitize(best), err
	}

	s.memo.Add(key, best)
	return best, nil
}

// scoreCells scores a candidate from its partition.
//
// Expected policy: 1 for this guess plus, per cell weighted by its
// probability, the expected further guesses from that cell: 0 for the
// candidate's own all-green cell, 1 for other singletons, a recursive
// sub-search while depth remains, and a sequential-probing estimate
// (k+1)/2 once the budget is spent.
//
// Minimax policy: the largest cell size, no recursion.
//
// bound is the best score found so far; a candidate whose shape lower
// bound is strictly worse is pruned before any recursion (strict, so
// equal-scoring candidates still reach the tie-break). A pruned return
// carries the lower bound, not a true score.
func (s *Searcher) scoreCells(ctx context.Context, cells []Cell, candidate string, n, depth int, bound float64) (score float64, pruned bool, err error) {
	if s.policy == PolicyMinimax {
		worst := 0
		for _, c := range cells {
			if len(c.Words) > worst {
				worst = len(c.Words)
			}
		}
		return float64(worst), false, nil
	}

	nf := float64(n)

	// Shape lower bound: no cell can cost less than 0 for the
	// candidate's own cell, 1 for another singleton, 2-1/k for k words.
	lb := 1.0
	for _, c := range cells {
		k := len(c.Words)
		switch {
		case k == 1 && c.Words[0] == candidate:
		case k == 1:
			lb += 1 / nf
		default:
			lb += float64(k) / nf * (2 - 1/float64(k))
		}
	}
	if lb > bound {
		return lb, true, nil
	}

	score = 1
	for _, c := range cells {
		k := len(c.Words)
		var remaining float64
		switch {
		case k == 1 && c.Words[0] == candidate:
			remaining = 0
		case k == 1:
			remaining = 1
		case depth <= 0:
			remaining = float64(k+1) / 2
		default:
			sub, serr := s.search(ctx, c.Words, depth-1, false)
			if serr != nil {
				return 0, false, serr
			}
			remaining = sub.Score
		}
		score += float64(k) / nf * remaining
	}
	return score, false, nil
}

// perfectScore is the lowest score any candidate can reach for an
// n-word set: a member guess that isolates every other word.
func (s *Searcher) perfectScore(n int) float64 {
	if s.policy == PolicyMinimax {
		return 1
	}
	return 2 - 1/float64(n)
}

// better is the total order over candidates: lower score, then
// possibility-set members, then lexicographic.
func better(score float64, in bool, bestScore float64, bestIn bool, word, bestWord string) bool {
	if score != bestScore {
		return score < bestScore
	}
	if in != bestIn {
		return in
	}
	return word < bestWord
}

// sanitize clears the placeholder score when a scan ends before any
// candidate was accepted.
func sanitize(r Result) Result {
	if r.Guess == "" {
		return Result{}
	}
	return r
}

func memberSet(poss []string) map[string]bool {
	m := make(map[string]bool, len(poss))
	for _, w := range poss {
		m[w] = true
	}
	return m
}

// memoKey is the canonical signature of a subproblem: the sorted
// possibility set plus the remaining depth budget.
func memoKey(poss []string, depth int) string {
	sorted := append([]string(nil), poss...)
	sort.Strings(sorted)

	var b strings.Builder
	b.Grow(len(sorted)*6 + 4)
	for _, w := range sorted {
		b.WriteString(w)
		b.WriteByte(' ')
	}
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(depth))
	return b.String()
}
