// apps/go-solver/internal/strategy/base.go
//
// Behaviour shared by all strategies: guess history, feedback application,
// and picking the top-scoring word. Each variant supplies only its score.

package strategy

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

// Base implements everything in Strategy except Name and ScoreForGuess.
type Base struct {
	name     string
	set      *candidates.Set
	previous []Guess
	score    func(guess string) float64
}

func newBase(name string, set *candidates.Set, score func(string) float64) *Base {
	return &Base{name: name, set: set, score: score}
}

// Name identifies the strategy.
func (b *Base) Name() string { return b.name }

// Candidates returns the shared candidate set.
func (b *Base) Candidates() *candidates.Set { return b.set }

// PreviousGuesses returns a copy of this strategy's guess history.
func (b *Base) PreviousGuesses() []Guess {
	out := make([]Guess, len(b.previous))
	copy(out, b.previous)
	return out
}

// WithPreviousGuess applies the guess feedback to the shared set and records
// the guess. Nothing is recorded if the feedback is rejected.
func (b *Base) WithPreviousGuess(g Guess) error {
	if err := b.set.Apply(g.Result); err != nil {
		return err
	}
	b.RecordGuess(g)
	log.Debug().Str("strategy", b.name).Str("word", g.Word).Int("remaining", b.set.Len()).Msg("previous guess applied")
	return nil
}

// RecordGuess appends g to the history without touching the set.
func (b *Base) RecordGuess(g Guess) {
	g.Word = strings.ToUpper(strings.TrimSpace(g.Word))
	b.previous = append(b.previous, g)
}

// GuessNextWordAndScore scores every surviving word and returns the first maximum.
func (b *Base) GuessNextWordAndScore() (Scored, error) {
	words := b.set.Words()
	if len(words) == 0 {
		return Scored{}, fmt.Errorf("%w: %s has no candidates", solvererr.ErrNoMoreGuesses, b.name)
	}
	best := Scored{Word: words[0], Score: b.score(words[0])}
	for _, w := range words[1:] {
		if sc := b.score(w); sc > best.Score {
			best = Scored{Word: w, Score: sc}
		}
	}
	return best, nil
}

// AlreadyGuessedLetters lists the distinct letters of all previous guesses,
// in first-seen order.
func (b *Base) AlreadyGuessedLetters() []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	var out []string
	for _, g := range b.previous {
		for _, c := range g.Word {
			l := string(c)
			if seen.Add(l) {
				out = append(out, l)
			}
		}
	}
	return out
}

// IsSolved reports whether exactly one candidate remains.
func (b *Base) IsSolved() bool { return b.set.IsSolved() }

// HasSolution reports whether any candidate remains.
func (b *Base) HasSolution() bool { return b.set.HasSolution() }
