package candidates

import (
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
)

// Words returns a copy of the surviving words, sorted.
func (s *Set) Words() []string { return slices.Clone(s.words) }

// Len is the number of surviving words.
func (s *Set) Len() int { return len(s.words) }

// WordLength is the fixed word length the set constrains.
func (s *Set) WordLength() int { return s.wordLength }

// Alphabet returns the sorted distinct letters across surviving words.
func (s *Set) Alphabet() string { return s.alphabet }

// Version changes every time Apply commits a batch.
func (s *Set) Version() uint64 { return s.version }

// PossibleLetters returns, per position, the sorted letters still allowed.
func (s *Set) PossibleLetters() []string {
	out := make([]string, len(s.possible))
	for p, b := range s.possible {
		out[p] = lettersOf(b)
	}
	return out
}

// PossibleCount is the number of letters still allowed at position p
// (0 when p is outside the word).
func (s *Set) PossibleCount(p int) int {
	if p < 0 || p >= len(s.possible) {
		return 0
	}
	return int(s.possible[p].Count())
}

// LetterRules returns the applied rule history in submission order.
func (s *Set) LetterRules() []rules.Rule {
	out := make([]rules.Rule, len(s.history))
	for i, r := range s.history {
		out[i] = r.Clone()
	}
	return out
}

// IsSolved reports whether exactly one word survives.
func (s *Set) IsSolved() bool { return len(s.words) == 1 }

// HasSolution reports whether any word survives.
func (s *Set) HasSolution() bool { return len(s.words) > 0 }
