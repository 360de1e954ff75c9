package strategy

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
)

// PerLetterElimination prefers guesses that could remove the most
// letter/position possibilities. Every guess letter is treated as Misplaced at
// its position; this measures potential, not the real feedback.
type PerLetterElimination struct {
	*Base
}

// NewPerLetterElimination builds the strategy over a shared set.
func NewPerLetterElimination(set *candidates.Set) *PerLetterElimination {
	s := &PerLetterElimination{}
	s.Base = newBase(NamePerLetterEliminations, set, s.ScoreForGuess)
	return s
}

// TotalPossibleLetters sums the allowed letters over all positions.
func TotalPossibleLetters(set *candidates.Set) int {
	total := 0
	for p := 0; p < set.WordLength(); p++ {
		total += set.PossibleCount(p)
	}
	return total
}

// MisplacedRulesFor marks each letter of guess Misplaced at its own position.
// Letters past wordLength are ignored.
func MisplacedRulesFor(guess string, wordLength int) []rules.Rule {
	out := make([]rules.Rule, 0, len(guess))
	for p := 0; p < len(guess) && p < wordLength; p++ {
		out = append(out, rules.At(guess[p:p+1], rules.Misplaced, p))
	}
	return out
}

// ScoreForGuess is the drop in total possible letters after the what-if rules.
func (s *PerLetterElimination) ScoreForGuess(guess string) float64 {
	what, err := s.set.WithRules(MisplacedRulesFor(guess, s.set.WordLength()))
	if err != nil {
		return 0
	}
	return float64(TotalPossibleLetters(s.set) - TotalPossibleLetters(what))
}
