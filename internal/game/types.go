// apps/go-solver/internal/game/types.go
//
// Core type definitions for the simulated puzzle.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Game: state for a single in-progress or finished puzzle.

package game

import (
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter is not (or no longer) accounted for in the answer.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Coarse game states reported by ApplyGuess.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

var (
	ErrGameFinished  = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
)

// Game holds the state of a single simulated puzzle.
type Game struct {
	ID       string   // Unique game identifier (random hex string).
	Answer   string   // The solution word (always uppercase).
	Rows     int      // Maximum number of guesses allowed.
	Cols     int      // Number of letters per word (len(Answer)).
	Guesses  []string // Guesses made so far (uppercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.

	lists *words.Lists
}
