package strategy

import (
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
)

// LetterFrequency prefers guesses built from the letters most common at each
// position among surviving words, weighted by how open each position still is.
type LetterFrequency struct {
	*Base
	normalize bool

	// per-position counts, valid while the set version is unchanged
	counts    []map[byte]int
	countsFor uint64
	hasCounts bool
}

// NewLetterFrequency builds the strategy over a shared set. With normalize,
// scores are divided by the word length.
func NewLetterFrequency(set *candidates.Set, normalize bool) *LetterFrequency {
	s := &LetterFrequency{normalize: normalize}
	s.Base = newBase(NameLetterFrequency, set, s.ScoreForGuess)
	return s
}

// ScoreForGuess sums, per position p, count(words with guess[p] at p) / |letters allowed at p|.
func (s *LetterFrequency) ScoreForGuess(guess string) float64 {
	counts := s.letterCounts()
	if counts == nil {
		return 0
	}
	guess = strings.ToUpper(guess)
	n := s.set.WordLength()

	var sum float64
	for p := 0; p < len(guess) && p < n && p < len(counts); p++ {
		allowed := s.set.PossibleCount(p)
		if allowed == 0 {
			continue
		}
		sum += float64(counts[p][guess[p]]) / float64(allowed)
	}
	if s.normalize {
		sum /= float64(n)
	}
	return sum
}

func (s *LetterFrequency) letterCounts() []map[byte]int {
	v := s.set.Version()
	if s.hasCounts && s.countsFor == v {
		return s.counts
	}
	counts, err := s.set.CountLettersByPosition()
	if err != nil {
		return nil
	}
	s.counts, s.countsFor, s.hasCounts = counts, v, true
	return counts
}
