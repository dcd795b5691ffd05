package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"wordlesolver/internal/bench"
	"wordlesolver/internal/httpserver"
	"wordlesolver/internal/solver"
	"wordlesolver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		dictPath  = flag.String("dictionary", "", "word list file, one word per line (default: WORDS_FILE env, then the embedded list)")
		hints     = flag.String("hints", "", `hints received so far, e.g. "bacon:RRRRY,grues:RGRRR" (G=green, Y=yellow, R=gray)`)
		length    = flag.Int("length", 5, "word length (1-20)")
		depth     = flag.Int("depth", solver.DefaultDepth, "search recursion depth budget")
		policyStr = flag.String("policy", "expected", "guess scoring policy: expected | minimax")
		workers   = flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
		serve     = flag.String("serve", "", "run the solve API on this address (e.g. :5175) instead of solving")
		evaluate  = flag.Bool("evaluate", false, "self-play every dictionary word and report guess counts")
		resultsDB = flag.String("results-db", "", "SQLite file to record -evaluate results in")
	)
	flag.Parse()

	policy, err := solver.ParsePolicy(*policyStr)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -policy value")
	}

	dict, err := words.Load(*dictPath, *length)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	fmt.Printf("%d words loaded\n", dict.Len())

	// SIGINT lands between candidate evaluations: the search stops and
	// still reports the best guess found so far.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *serve != "":
		runServe(dict, policy, *depth, *workers, *serve)
	case *evaluate:
		runEvaluate(ctx, dict, policy, *depth, *workers, *resultsDB)
	default:
		runSolve(ctx, dict, *hints, policy, *depth, *workers)
	}
}

// runSolve is the default mode: filter by hints, then search.
func runSolve(ctx context.Context, dict *words.Dictionary, hints string, policy solver.Policy, depth, workers int) {
	history, err := solver.ParseHistory(hints, dict.Length())
	if err != nil {
		log.Fatal().Err(err).Msg("bad -hints value")
	}
	printHistory(history)

	poss := solver.Filter(dict.Words(), history)
	fmt.Printf("%d possibilities remain\n", len(poss))
	if len(poss) == 0 {
		fmt.Println("the hints contradict each other, or the answer is not in the dictionary")
		os.Exit(1)
	}
	printPossibilities(poss)
	if len(poss) == 1 {
		fmt.Printf("the answer is %s\n", poss[0])
		return
	}

	searcher := solver.NewSearcher(dict.Words(), policy)
	searcher.Workers = workers

	bar := progressbar.Default(int64(dict.Len()), "searching")
	searcher.Progress = func(u solver.Update) {
		_ = bar.Add(1)
		if u.Improved {
			bar.Describe(fmt.Sprintf("best: %s (%.2f)", u.Best, u.BestScore))
		}
	}

	best, err := searcher.BestGuess(ctx, poss, depth)
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		if best.Guess == "" {
			log.Fatal().Err(err).Msg("search failed")
		}
		log.Warn().Err(err).Msg("search interrupted; reporting best guess so far")
	}
	if policy == solver.PolicyMinimax {
		fmt.Printf("best guess: %s (worst case %.0f possibilities remain)\n", best.Guess, best.Score)
		return
	}
	fmt.Printf("best guess: %s (expected guesses %.2f)\n", best.Guess, best.Score)
}

// runServe exposes the solver as a JSON API.
func runServe(dict *words.Dictionary, policy solver.Policy, depth, workers int, addr string) {
	srv := httpserver.New(httpserver.Config{
		Dict:    dict,
		Policy:  policy,
		Depth:   depth,
		Workers: workers,
	})
	log.Info().Str("addr", addr).Int("words", dict.Len()).Msg("starting solve API")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// runEvaluate self-plays the whole dictionary and prints (and
// optionally stores) the guess-count report.
func runEvaluate(ctx context.Context, dict *words.Dictionary, policy solver.Policy, depth, workers int, dbPath string) {
	runner := bench.NewRunner(dict, policy, depth, workers)

	bar := progressbar.Default(int64(dict.Len()), "self-play")
	runner.OnResult = func(answer string, guesses int) { _ = bar.Add(1) }

	report, err := runner.Run(ctx)
	_ = bar.Finish()
	fmt.Println()
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}
	printReport(report)

	if dbPath == "" {
		return
	}
	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", dbPath).Msg("failed to open results database")
	}
	defer db.Close()

	store := bench.NewStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to prepare results schema")
	}
	runID, err := store.SaveReport(ctx, bench.RunMeta{
		Words:      dict.Len(),
		WordLength: dict.Length(),
		Policy:     policy.String(),
		Depth:      depth,
	}, report)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to save results")
	}
	log.Info().Int64("run", runID).Str("db", dbPath).Msg("evaluation results saved")
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
