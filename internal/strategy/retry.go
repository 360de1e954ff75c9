package strategy

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
)

// RetryMisplacedLetters prefers guesses that move known-present letters into new slots.
type RetryMisplacedLetters struct {
	*Base
}

// NewRetryMisplacedLetters builds the strategy over a shared set.
func NewRetryMisplacedLetters(set *candidates.Set) *RetryMisplacedLetters {
	s := &RetryMisplacedLetters{}
	s.Base = newBase(NameRetryMisplacedLetters, set, s.ScoreForGuess)
	return s
}

// ScoreForGuess counts guess positions holding a letter that some recorded
// Misplaced rule placed at a different position.
func (s *RetryMisplacedLetters) ScoreForGuess(guess string) float64 {
	var misplaced []rules.Rule
	for _, r := range s.set.LetterRules() {
		if r.Required == rules.Misplaced {
			misplaced = append(misplaced, r)
		}
	}
	if len(misplaced) == 0 {
		return 0
	}

	guess = strings.ToUpper(guess)
	score := 0
	for p := 0; p < len(guess); p++ {
		for _, r := range misplaced {
			if r.Letter == guess[p:p+1] && r.Pos() != p {
				score++
				break
			}
		}
	}
	return float64(score)
}
