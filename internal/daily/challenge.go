// apps/go-solver/internal/daily/challenge.go
//
// The daily challenge: every strategy solves the day's answer once, and the
// results are stored so later calls the same day return the stored rows.

package daily

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Challenge plays and records daily runs.
type Challenge struct {
	Store      *Store
	Lists      *words.Lists
	Salt       string
	MaxGuesses int
	Options    solver.Options

	mu sync.Mutex // serialises Solve so a date is played once
}

// Today returns the date key, word index and answer for t.
func (c *Challenge) Today(t time.Time) (date string, idx int, answer string) {
	answers := c.Lists.Answers()
	date = DateKey(t)
	idx = WordIndex(t, c.Salt, len(answers))
	return date, idx, c.Lists.AnswerAt(idx)
}

// Solve returns the results for t's date, playing every strategy first if the
// date has no stored results. fresh reports whether this call played them.
func (c *Challenge) Solve(ctx context.Context, t time.Time) (results []Result, fresh bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	date, idx, answer := c.Today(t)
	played, err := c.Store.AlreadyPlayed(ctx, date)
	if err != nil {
		return nil, false, err
	}
	if played {
		results, err = c.Store.Results(ctx, date)
		return results, false, err
	}

	dict := c.Lists.Dictionary()
	names := solver.StrategyNames()
	results = make([]Result, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			start := time.Now()
			out, err := solver.Play(gctx, dict, name, answer, solver.PlayOptions{Options: c.Options})
			if err != nil {
				return err
			}
			results[i] = Result{
				Date:      date,
				Strategy:  name,
				WordIndex: idx,
				Answer:    answer,
				Guesses:   out.Turns(),
				Solved:    out.Solved && (c.MaxGuesses <= 0 || out.Turns() <= c.MaxGuesses),
				Path:      out.Guesses,
				ElapsedMs: int(time.Since(start).Milliseconds()),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	for _, r := range results {
		if err := c.Store.InsertResult(ctx, r); err != nil {
			return nil, false, err
		}
	}
	log.Info().Str("date", date).Int("wordIndex", idx).Int("strategies", len(results)).Msg("daily challenge solved")
	return results, true, nil
}
