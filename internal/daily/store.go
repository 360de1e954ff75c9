// apps/go-solver/internal/daily/store.go
//
// SQLite persistence for daily challenge results: one row per (date, strategy).

package daily

import (
	"context"
	"database/sql"
	"strings"
)

// Result is one strategy's run against a day's answer.
type Result struct {
	Date      string   `json:"date"`
	Strategy  string   `json:"strategy"`
	WordIndex int      `json:"wordIndex"`
	Answer    string   `json:"answer"`
	Guesses   int      `json:"guesses"`
	Solved    bool     `json:"solved"`
	Path      []string `json:"path"`
	ElapsedMs int      `json:"elapsedMs"`
}

// LBRow is one leaderboard line.
type LBRow struct {
	Strategy  string `json:"strategy"`
	Guesses   int    `json:"guesses"`
	Solved    bool   `json:"solved"`
	ElapsedMs int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether any result exists for date.
func (s *Store) AlreadyPlayed(ctx context.Context, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE date=?", date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult stores r; a second row for the same (date, strategy) is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(date, strategy, word_index, answer, guesses, solved, path, elapsed_ms)
		VALUES(?,?,?,?,?,?,?,?)`,
		r.Date, r.Strategy, r.WordIndex, r.Answer, r.Guesses, r.Solved, strings.Join(r.Path, " "), r.ElapsedMs,
	)
	return err
}

// Results returns every stored result for date, ordered by strategy.
func (s *Store) Results(ctx context.Context, date string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, strategy, word_index, answer, guesses, solved, path, elapsed_ms
		FROM daily_results
		WHERE date=?
		ORDER BY strategy ASC`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		var r Result
		var path string
		if err := rows.Scan(&r.Date, &r.Strategy, &r.WordIndex, &r.Answer, &r.Guesses, &r.Solved, &path, &r.ElapsedMs); err != nil {
			return nil, err
		}
		r.Path = strings.Fields(path)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Leaderboard ranks strategies for date: solved first, then fewer guesses,
// then faster, then by name.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT strategy, guesses, solved, elapsed_ms
		FROM daily_results
		WHERE date=?
		ORDER BY solved DESC, guesses ASC, elapsed_ms ASC, strategy ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Strategy, &r.Guesses, &r.Solved, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
