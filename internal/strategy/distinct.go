package strategy

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
)

// DistinctLetters prefers guesses that test the most letters not guessed before.
type DistinctLetters struct {
	*Base
}

// NewDistinctLetters builds the strategy over a shared set.
func NewDistinctLetters(set *candidates.Set) *DistinctLetters {
	s := &DistinctLetters{}
	s.Base = newBase(NameDistinctLetters, set, s.ScoreForGuess)
	return s
}

// ScoreForGuess counts the distinct letters of guess that no previous guess used.
func (s *DistinctLetters) ScoreForGuess(guess string) float64 {
	guessed := mapset.NewThreadUnsafeSet(s.AlreadyGuessedLetters()...)
	fresh := mapset.NewThreadUnsafeSet[string]()
	for _, c := range strings.ToUpper(guess) {
		if l := string(c); !guessed.Contains(l) {
			fresh.Add(l)
		}
	}
	return float64(fresh.Cardinality())
}
