// apps/go-solver/internal/solver/play.go
//
// Playing a simulated puzzle with one strategy.
// Each play owns a private copy of the dictionary; guesses are graded by the
// game engine and the resulting rules are fed back until the answer is hit,
// the candidates run out, or the turn limit is reached.

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
)

// NewStrategy builds the named strategy over set.
func NewStrategy(name string, set *candidates.Set, opts Options) (strategy.Strategy, error) {
	switch name {
	case strategy.NameDistinctLetters:
		return strategy.NewDistinctLetters(set), nil
	case strategy.NameRetryMisplacedLetters:
		return strategy.NewRetryMisplacedLetters(set), nil
	case strategy.NamePerLetterEliminations:
		return strategy.NewPerLetterElimination(set), nil
	case strategy.NameLetterFrequency:
		return strategy.NewLetterFrequency(set, opts.NormalizeLetterFrequency), nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", solvererr.ErrInvalidArgument, name)
}

// StrategyNames lists every strategy in the solver's order.
func StrategyNames() []string {
	return []string{
		strategy.NameDistinctLetters,
		strategy.NameRetryMisplacedLetters,
		strategy.NamePerLetterEliminations,
		strategy.NameLetterFrequency,
	}
}

// PlayOptions tune a single simulated play.
type PlayOptions struct {
	Options
	MaxTurns int    // <= 0 plays until solved or exhausted
	Opening  string // precomputed first guess; empty asks the strategy
}

// Outcome is the record of one simulated play.
type Outcome struct {
	Strategy string   `json:"strategy"`
	Answer   string   `json:"answer"`
	Guesses  []string `json:"guesses"`
	Marks    []string `json:"marks"` // G/Y/. patterns, one per guess
	Solved   bool     `json:"solved"`
}

// Turns is the number of guesses made.
func (o Outcome) Turns() int { return len(o.Guesses) }

// Opening computes the first guess a strategy makes on a fresh dictionary.
func Opening(name string, dict *candidates.Set, opts Options) (strategy.Scored, error) {
	st, err := NewStrategy(name, dict.Copy(), opts)
	if err != nil {
		return strategy.Scored{}, err
	}
	return st.GuessNextWordAndScore()
}

// Play lets the named strategy solve answer over a copy of dict.
// Running out of candidates ends the play unsolved without an error.
func Play(ctx context.Context, dict *candidates.Set, name, answer string, opts PlayOptions) (Outcome, error) {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	out := Outcome{Strategy: name, Answer: answer}

	st, err := NewStrategy(name, dict.Copy(), opts.Options)
	if err != nil {
		return out, err
	}

	for turn := 0; opts.MaxTurns <= 0 || turn < opts.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		guess := ""
		if turn == 0 && opts.Opening != "" {
			guess = strings.ToUpper(opts.Opening)
		} else {
			best, err := st.GuessNextWordAndScore()
			if errors.Is(err, solvererr.ErrNoMoreGuesses) {
				log.Debug().Str("strategy", name).Str("answer", answer).Msg("candidates exhausted")
				return out, nil
			}
			if err != nil {
				return out, err
			}
			guess = best.Word
		}

		marks := game.Score(answer, guess)
		out.Guesses = append(out.Guesses, guess)
		out.Marks = append(out.Marks, game.Pattern(marks))
		if game.AllHit(marks) && len(guess) == len(answer) {
			out.Solved = true
			return out, nil
		}

		result, err := game.Feedback(guess, marks)
		if err != nil {
			return out, err
		}
		if err := st.WithPreviousGuess(strategy.Guess{Word: guess, Result: result}); err != nil {
			return out, err
		}
	}
	return out, nil
}
