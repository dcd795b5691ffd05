// output.go
//
// Console rendering for the CLI driver: colored hint tiles, the
// remaining possibility list, and the self-play report.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/colorstring"

	"wordlesolver/internal/bench"
	"wordlesolver/internal/solver"
)

// maxListed caps how many possibilities are printed in full.
const maxListed = 20

// printHistory echoes each hint as colored tiles.
func printHistory(history solver.History) {
	for _, e := range history {
		fmt.Println(e.Pattern.Colored(e.Guess))
	}
}

// printPossibilities lists the remaining words when the set is small.
func printPossibilities(poss []string) {
	if len(poss) == 0 || len(poss) > maxListed {
		return
	}
	colorstring.Println("[bold]remaining:[reset] " + strings.Join(poss, " "))
}

// printReport prints the guess-count histogram, average, and worst words.
func printReport(r *bench.Report) {
	dist := r.Distribution()
	counts := make([]int, 0, len(dist))
	for g := range dist {
		counts = append(counts, g)
	}
	sort.Ints(counts)

	fmt.Printf("played %d words\n", len(r.Guesses))
	for _, g := range counts {
		fmt.Printf("%2d guesses: %d\n", g, dist[g])
	}
	fmt.Printf("average: %.3f guesses\n", r.Average())

	worst, answers := r.Worst()
	if worst > 0 {
		colorstring.Printf("[red]worst (%d guesses):[reset] %s\n", worst, strings.Join(answers, " "))
	}
}
