// apps/go-solver/internal/strategy/types.go
//
// Type definitions for guess scoring strategies.
// Defines:
//   - Guess:    a submitted word paired with the feedback rules it produced.
//   - Scored:   a candidate word and its strategy score.
//   - Strategy: the capability set shared by every scoring heuristic.

package strategy

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
)

// Strategy names, as reported by Name() and keyed by the solver.
const (
	NameDistinctLetters       = "distinctLetters"
	NameLetterFrequency       = "letterFrequency"
	NamePerLetterEliminations = "perLetterEliminations"
	NameRetryMisplacedLetters = "retryMisplacedLetters"
)

// Guess pairs a submitted word with its feedback.
type Guess struct {
	Word   string       `json:"word"`
	Result []rules.Rule `json:"result"`
}

// Scored is a candidate word and its desirability under one strategy.
type Scored struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Strategy ranks candidate guesses against a candidate set.
//
// The set is shared: a Strategy holds a pointer to it, and so do its siblings
// inside a solver. WithPreviousGuess narrows that shared set; RecordGuess only
// appends to this strategy's own history, for callers that already applied the
// feedback to the set.
type Strategy interface {
	Name() string

	// ScoreForGuess scores a word against the current state. Higher is better.
	ScoreForGuess(guess string) float64

	WithPreviousGuess(g Guess) error
	RecordGuess(g Guess)

	// GuessNextWordAndScore returns the best-scoring surviving word; ties go to
	// the alphabetically first word.
	GuessNextWordAndScore() (Scored, error)

	AlreadyGuessedLetters() []string
	PreviousGuesses() []Guess
	Candidates() *candidates.Set
	IsSolved() bool
	HasSolution() bool
}
