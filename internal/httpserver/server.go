// internal/httpserver/server.go
//
// HTTP wiring for the solver's API mode.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery,
//     timeouts, JSON content type, env-configured CORS).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints: POST /solve, POST /filter.
//
// The solver never contacts the puzzle service; this server only
// answers queries about a local dictionary. There are no accounts and
// no auth: every request is stateless and the dictionary is read-only,
// so requests share one Searcher (and its memo cache) safely.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"wordlesolver/internal/solver"
	"wordlesolver/internal/words"
)

// maxListed caps how many remaining possibilities are echoed back in
// JSON responses.
const maxListed = 50

// Config carries the solver setup shared by all requests.
type Config struct {
	Dict    *words.Dictionary
	Policy  solver.Policy
	Depth   int
	Workers int
}

// Server bundles the router, dictionary and shared searcher.
type Server struct {
	r        *chi.Mux
	dict     *words.Dictionary
	searcher *solver.Searcher
	depth    int
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg Config) *Server {
	searcher := solver.NewSearcher(cfg.Dict.Words(), cfg.Policy)
	searcher.Workers = cfg.Workers

	s := &Server{
		r:        chi.NewRouter(),
		dict:     cfg.Dict,
		searcher: searcher,
		depth:    cfg.Depth,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(60 * time.Second)) // searches can be slow; bound them
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve","POST /filter","/debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"words":  s.dict.Len(),
			"length": s.dict.Length(),
		})
	})

	s.r.Post("/solve", s.handleSolve)
	s.r.Post("/filter", s.handleFilter)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin from CLIENT_ORIGIN.
// Defaults to * since the API is anonymous and read-only.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ handlers ------------------------------------

// solveReq is the payload for POST /solve and POST /filter.
type solveReq struct {
	// Hints is the same syntax the CLI takes: "word:pattern,..." with
	// G/Y/R pattern symbols.
	Hints string `json:"hints"`
	// Depth overrides the server's default recursion budget when > 0.
	Depth int `json:"depth,omitempty"`
}

type solveRes struct {
	Possibilities int      `json:"possibilities"`
	Words         []string `json:"words,omitempty"`
	Guess         string   `json:"guess,omitempty"`
	// Score is never omitted: 0 is a real answer (one possibility
	// left), not an absent field.
	Score float64 `json:"score"`
	// Partial is set when the search hit the request deadline and the
	// best guess found so far was returned.
	Partial bool `json:"partial,omitempty"`
}

// handleSolve filters the dictionary by the supplied hints and runs
// the best-guess search over what remains.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	req, poss, ok := s.filterFromRequest(w, r)
	if !ok {
		return
	}
	res := solveRes{Possibilities: len(poss)}
	if len(poss) <= maxListed {
		res.Words = poss
	}
	if len(poss) == 0 {
		_ = json.NewEncoder(w).Encode(res)
		return
	}

	depth := s.depth
	if req.Depth > 0 {
		depth = req.Depth
	}
	best, err := s.searcher.BestGuess(r.Context(), poss, depth)
	switch {
	case err == nil:
	case errors.Is(err, r.Context().Err()) && best.Guess != "":
		res.Partial = true
	default:
		log.Error().Err(err).Int("possibilities", len(poss)).Msg("solve failed")
		http.Error(w, `{"error":"search_failed"}`, http.StatusInternalServerError)
		return
	}
	res.Guess = best.Guess
	res.Score = best.Score

	log.Info().
		Str("hints", req.Hints).
		Int("possibilities", len(poss)).
		Str("guess", best.Guess).
		Float64("score", best.Score).
		Msg("solve")
	_ = json.NewEncoder(w).Encode(res)
}

// handleFilter returns the remaining possibilities without searching.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	_, poss, ok := s.filterFromRequest(w, r)
	if !ok {
		return
	}
	res := solveRes{Possibilities: len(poss)}
	if len(poss) <= maxListed {
		res.Words = poss
	}
	_ = json.NewEncoder(w).Encode(res)
}

// filterFromRequest decodes the request, parses hints, and filters the
// dictionary. On failure it writes the error response and returns
// ok=false.
func (s *Server) filterFromRequest(w http.ResponseWriter, r *http.Request) (solveReq, []string, bool) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return req, nil, false
	}
	history, err := solver.ParseHistory(req.Hints, s.dict.Length())
	if err != nil {
		http.Error(w, `{"error":`+jsonQuote(err.Error())+`}`, http.StatusBadRequest)
		return req, nil, false
	}
	return req, solver.Filter(s.dict.Words(), history), true
}

func jsonQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
