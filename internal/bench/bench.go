// apps/go-solver/internal/bench/bench.go
//
// Full-dictionary benchmark.
// Responsibilities:
//   - Play every answer with every strategy, each play on its own set copy.
//   - Compute each strategy's opening guess once and reuse it for every answer.
//   - Bound concurrency with an errgroup limit.
//   - Summarise results and optionally persist them to SQLite.

package bench

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

// Config selects what to play.
type Config struct {
	Dictionary *candidates.Set
	Answers    []string
	Strategies []string // empty means all
	Limit      int      // N for "not in N"; <= 0 means 6
	Workers    int      // <= 0 means GOMAXPROCS
	Options    solver.Options

	// OnGame, if set, is called after every play. It may run concurrently.
	OnGame func(solver.Outcome)
}

// Report is a whole benchmark run.
type Report struct {
	RunID   string        `json:"runId"`
	Started time.Time     `json:"started"`
	Elapsed time.Duration `json:"elapsed"`
	Limit   int           `json:"limit"`
	Metrics []Metrics     `json:"metrics"`
}

// Games is the number of plays Run will make for cfg.
func (cfg Config) Games() int {
	n := len(cfg.Strategies)
	if n == 0 {
		n = len(solver.StrategyNames())
	}
	return n * len(cfg.Answers)
}

// Run plays every answer with every selected strategy.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Dictionary == nil || len(cfg.Answers) == 0 {
		return nil, fmt.Errorf("%w: bench needs a dictionary and answers", solvererr.ErrInvalidArgument)
	}
	names := cfg.Strategies
	if len(names) == 0 {
		names = solver.StrategyNames()
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 6
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rep := &Report{RunID: newRunID(), Started: time.Now().UTC(), Limit: limit}

	openings := make([]string, len(names))
	for i, name := range names {
		best, err := solver.Opening(name, cfg.Dictionary, cfg.Options)
		if err != nil {
			return nil, err
		}
		openings[i] = best.Word
		log.Debug().Str("strategy", name).Str("opening", best.Word).Float64("score", best.Score).Msg("opening computed")
	}

	outs := make([][]solver.Outcome, len(names))
	for i := range outs {
		outs[i] = make([]solver.Outcome, len(cfg.Answers))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for s := range names {
		for a := range cfg.Answers {
			s, a := s, a
			g.Go(func() error {
				out, err := solver.Play(gctx, cfg.Dictionary, names[s], cfg.Answers[a], solver.PlayOptions{
					Options: cfg.Options,
					Opening: openings[s],
				})
				if err != nil {
					return fmt.Errorf("%s/%s: %w", names[s], cfg.Answers[a], err)
				}
				outs[s][a] = out
				if cfg.OnGame != nil {
					cfg.OnGame(out)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for s, name := range names {
		rep.Metrics = append(rep.Metrics, Summarise(name, openings[s], outs[s], limit))
	}
	rep.Elapsed = time.Since(rep.Started)
	log.Info().Str("runId", rep.RunID).Int("games", cfg.Games()).Dur("elapsed", rep.Elapsed).Msg("bench finished")
	return rep, nil
}

// Save writes one bench_runs row per strategy.
func Save(ctx context.Context, db *sql.DB, rep *Report) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range rep.Metrics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bench_runs(run_id, started_at, strategy, games, solved, best, worst, average, turn_limit, not_in_n, elapsed_ms)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			rep.RunID, rep.Started.Format(time.RFC3339), m.Strategy, m.Games, m.Solved, m.Best, m.Worst, m.Average,
			rep.Limit, m.NotInN, rep.Elapsed.Milliseconds(),
		); err != nil {
			return fmt.Errorf("save %s: %w", m.Strategy, err)
		}
	}
	return tx.Commit()
}

func newRunID() string {
	var b [6]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
