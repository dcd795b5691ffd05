// internal/bench/store.go
//
// SQLite persistence for evaluation runs. Each run gets a row of
// metadata plus one row per answer played; the distribution and
// worst-answer queries drive the console summary and make runs
// comparable across solver changes. Only benchmark output lives here;
// the solver itself keeps no state between runs.

package bench

import (
	"context"
	"database/sql"
	"time"
)

// Store wraps the results database.
type Store struct{ db *sql.DB }

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// EnsureSchema creates the results tables if missing. Idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS runs (
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  started_at  TEXT    NOT NULL,
  finished_at TEXT,
  words       INTEGER NOT NULL,
  word_length INTEGER NOT NULL,
  policy      TEXT    NOT NULL,
  depth       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_results (
  run_id  INTEGER NOT NULL REFERENCES runs(id),
  answer  TEXT    NOT NULL,
  guesses INTEGER NOT NULL,
  PRIMARY KEY (run_id, answer)
);
CREATE INDEX IF NOT EXISTS idx_run_results_guesses
  ON run_results(run_id, guesses);`)
	return err
}

// RunMeta describes the solver configuration of one run.
type RunMeta struct {
	Words      int
	WordLength int
	Policy     string
	Depth      int
}

// SaveReport stores a finished run and all its per-answer results in
// one transaction, returning the new run id.
func (s *Store) SaveReport(ctx context.Context, meta RunMeta, report *Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, finished_at, words, word_length, policy, depth)
		 VALUES (?,?,?,?,?,?)`,
		now, now, meta.Words, meta.WordLength, meta.Policy, meta.Depth)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_results (run_id, answer, guesses) VALUES (?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for answer, guesses := range report.Guesses {
		if _, err := stmt.ExecContext(ctx, runID, answer, guesses); err != nil {
			return 0, err
		}
	}

	return runID, tx.Commit()
}

// Distribution returns answers-per-guess-count for a stored run.
func (s *Store) Distribution(ctx context.Context, runID int64) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guesses, COUNT(*) FROM run_results WHERE run_id=? GROUP BY guesses`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dist := make(map[int]int)
	for rows.Next() {
		var guesses, n int
		if err := rows.Scan(&guesses, &n); err != nil {
			return nil, err
		}
		dist[guesses] = n
	}
	return dist, rows.Err()
}

// AnswerResult is one stored per-answer outcome.
type AnswerResult struct {
	Answer  string
	Guesses int
}

// Worst returns the stored answers that needed the most guesses.
func (s *Store) Worst(ctx context.Context, runID int64, limit int) ([]AnswerResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT answer, guesses FROM run_results
		 WHERE run_id=? ORDER BY guesses DESC, answer ASC LIMIT ?`, runID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnswerResult
	for rows.Next() {
		var ar AnswerResult
		if err := rows.Scan(&ar.Answer, &ar.Guesses); err != nil {
			return nil, err
		}
		out = append(out, ar)
	}
	return out, rows.Err()
}
