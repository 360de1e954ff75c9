// apps/go-solver/internal/game/engine.go
//
// Engine for a simulated puzzle that feeds the solver.
// Responsibilities:
//   - Create games with a hidden answer and a guess limit.
//   - Validate and apply guesses (length, alphabetic, allowed list).
//   - Score guesses using the classic two-pass algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Answers/allowed lists are provided by the words package.
//   - Score is exported so the benchmark can grade guesses without a Game.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const defaultRows = 6

// New constructs a new game instance. Guesses are checked against lists.
// If withAnswer is empty, a random answer is chosen from lists.
// rows <= 0 selects the default of six guesses.
func New(lists *words.Lists, withAnswer string, rows int) *Game {
	ans := withAnswer
	if ans == "" {
		ans = lists.RandomAnswer()
	}
	if rows <= 0 {
		rows = defaultRows
	}
	ans = strings.ToUpper(strings.TrimSpace(ans))
	return &Game{
		ID:      randomID(),
		Answer:  ans,
		Rows:    rows,
		Cols:    len(ans),
		Guesses: []string{},
		lists:   lists,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the per-letter marks, the new state, or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters A–Z (case-insensitive).
//   - Guess must be present in the allowed list.
func (g *Game) ApplyGuess(guess string) ([]Mark, string, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if !g.lists.IsAllowed(guess) && guess != g.Answer {
		return nil, g.State(), ErrNotInWordList
	}

	marks := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if AllHit(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Score implements the standard two-pass scoring algorithm over uppercase
// A–Z words of equal length.
//
// Pass 1 marks exact matches as hits and counts the remaining answer letters.
// Pass 2 marks a non-hit guess letter present while unmatched copies of it
// remain in the answer, otherwise miss.
func Score(answer, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if i < len(answer) && guess[i] == answer[i] {
			res[i] = MarkHit
		} else if i < len(answer) {
			if j := idx(answer[i]); j >= 0 {
				counts[j]++
			}
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// AllHit returns true if all marks are MarkHit.
func AllHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return len(m) > 0
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
