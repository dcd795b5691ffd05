// internal/bench/runner.go
//
// Self-play evaluation harness: plays every dictionary word as the
// hidden answer, letting the solver pick each guess, and records how
// many guesses each game took. Games are independent pure
// computations, so they fan out across an errgroup with a shared
// searcher whose memo cache carries over between games.

package bench

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"wordlesolver/internal/feedback"
	"wordlesolver/internal/solver"
	"wordlesolver/internal/words"
)

// defaultMaxTurns is a safety net only: the search always shrinks the
// possibility set, so a healthy run never gets near it.
const defaultMaxTurns = 12

// Runner plays solver games against every word of a dictionary.
type Runner struct {
	// OnResult, when set, is called as each game finishes. Calls are
	// serialized: the callback never runs concurrently with itself.
	OnResult func(answer string, guesses int)

	dict     *words.Dictionary
	searcher *solver.Searcher
	depth    int
	maxTurns int
	workers  int
}

// NewRunner builds a Runner. workers bounds how many games run at
// once; the searcher itself stays sequential so parallelism is not
// nested.
func NewRunner(dict *words.Dictionary, policy solver.Policy, depth, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		dict:     dict,
		searcher: solver.NewSearcher(dict.Words(), policy),
		depth:    depth,
		maxTurns: defaultMaxTurns,
		workers:  workers,
	}
}

// PlayOne plays a single game with answer as the hidden word and
// returns the number of guesses needed, counting the winning guess.
func (r *Runner) PlayOne(ctx context.Context, answer string) (int, error) {
	allGreen := feedback.AllGreen(len(answer))
	poss := r.dict.Words()

	for turn := 1; turn <= r.maxTurns; turn++ {
		var guess string
		if len(poss) == 1 {
			guess = poss[0]
		} else {
			res, err := r.searcher.BestGuess(ctx, poss, r.depth)
			if err != nil {
				return 0, err
			}
			guess = res.Guess
		}

		pat, err := feedback.Compute(guess, answer)
		if err != nil {
			return 0, err
		}
		if pat == allGreen {
			return turn, nil
		}

		poss = solver.Filter(poss, solver.History{{Guess: guess, Pattern: pat}})
		if len(poss) == 0 {
			return 0, fmt.Errorf("bench: %q eliminated every possibility", answer)
		}
	}
	return 0, fmt.Errorf("bench: gave up on %q after %d guesses", answer, r.maxTurns)
}

// Run plays every dictionary word and returns the collected report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Guesses:    make(map[string]int, r.dict.Len()),
		WordLength: r.dict.Length(),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, answer := range r.dict.Words() {
		answer := answer
		g.Go(func() error {
			guesses, err := r.PlayOne(ctx, answer)
			if err != nil {
				return err
			}
			mu.Lock()
			report.Guesses[answer] = guesses
			if r.OnResult != nil {
				r.OnResult(answer, guesses)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
