// apps/go-solver/internal/candidates/set.go
//
// Candidate set: the narrowing dictionary behind every scoring strategy.
// Responsibilities:
//   - Normalize (trim, uppercase, sort) the raw dictionary.
//   - Track, per position, the letters still allowed there.
//   - Apply feedback rules in batches and filter the surviving words.
//   - Keep the full rule history and the alphabet of surviving words.
//
// Notes:
//   - Feasible letters are stored as bitsets indexed by the letter byte.
//   - A batch is validated before any state changes, so Apply is all-or-nothing.
//   - Copy/WithRules give independent sets for what-if scoring.

package candidates

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

// DefaultWordLength is the classic Wordle word length.
const DefaultWordLength = 5

// letterBits is the bitset width: one bit per possible byte value.
const letterBits = 256

// Set holds the surviving words and the per-position letter constraints.
// It is not safe for concurrent use.
type Set struct {
	wordLength int
	words      []string         // sorted, uppercase
	possible   []*bitset.BitSet // len == wordLength
	history    []rules.Rule     // every applied rule, in submission order
	alphabet   string           // sorted distinct letters of words
	version    uint64           // bumped on every Apply
}

// New builds a Set of DefaultWordLength from raw words.
func New(words []string) *Set {
	s, _ := NewWithLength(words, DefaultWordLength)
	return s
}

// NewWithLength builds a Set for words of the given length.
// Words are trimmed, upper-cased and sorted. Position p starts with exactly the
// letters seen at p across all words.
func NewWithLength(words []string, wordLength int) (*Set, error) {
	if wordLength <= 0 {
		return nil, fmt.Errorf("%w: word length %d", solvererr.ErrInvalidArgument, wordLength)
	}
	norm := make([]string, 0, len(words))
	for _, w := range words {
		norm = append(norm, strings.ToUpper(strings.TrimSpace(w)))
	}
	slices.Sort(norm)

	s := &Set{
		wordLength: wordLength,
		words:      norm,
		possible:   make([]*bitset.BitSet, wordLength),
	}
	for p := range s.possible {
		s.possible[p] = bitset.New(letterBits)
	}
	for _, w := range norm {
		for p := 0; p < len(w) && p < wordLength; p++ {
			s.possible[p].Set(uint(w[p]))
		}
	}
	s.alphabet = alphabetOf(norm)
	return s, nil
}

// Copy returns a deep copy sharing no mutable state with s.
func (s *Set) Copy() *Set {
	c := &Set{
		wordLength: s.wordLength,
		words:      slices.Clone(s.words),
		possible:   make([]*bitset.BitSet, len(s.possible)),
		history:    make([]rules.Rule, len(s.history)),
		alphabet:   s.alphabet,
		version:    s.version,
	}
	for p, b := range s.possible {
		c.possible[p] = b.Clone()
	}
	for i, r := range s.history {
		c.history[i] = r.Clone()
	}
	return c
}

// WithRules applies rs to a copy of s and returns the copy; s is untouched.
func (s *Set) WithRules(rs []rules.Rule) (*Set, error) {
	c := s.Copy()
	if err := c.Apply(rs); err != nil {
		return nil, err
	}
	return c, nil
}

// Matches reports whether word satisfies every position constraint and
// contains every letter recorded by a Misplaced rule.
func (s *Set) Matches(word string) bool {
	for p, allowed := range s.possible {
		if p >= len(word) || !allowed.Test(uint(word[p])) {
			return false
		}
	}
	for _, r := range s.history {
		if r.Required == rules.Misplaced && !strings.Contains(word, r.Letter) {
			return false
		}
	}
	return true
}

// Apply narrows the set in place with a batch of rules.
//
// Steps:
//  1. Validate the whole batch (missing/out-of-range positions fail here, before any change).
//  2. Apply rules with Mandatory last:
//     Impossible clears the letter at every position,
//     Mandatory pins the position to the letter,
//     Misplaced clears the letter at its position only.
//  3. Record the batch in submission order.
//  4. Keep only matching words and recompute the alphabet.
func (s *Set) Apply(rs []rules.Rule) error {
	batch, err := rules.ValidateAll(rs, s.wordLength)
	if err != nil {
		return err
	}

	for _, r := range rules.SortForApply(batch) {
		bit := uint(r.Letter[0])
		switch r.Required {
		case rules.Impossible:
			for _, allowed := range s.possible {
				allowed.Clear(bit)
			}
		case rules.Mandatory:
			s.possible[*r.Position].ClearAll().Set(bit)
		case rules.Misplaced:
			s.possible[*r.Position].Clear(bit)
		}
	}
	s.history = append(s.history, batch...)

	before := len(s.words)
	kept := make([]string, 0, before)
	for _, w := range s.words {
		if s.Matches(w) {
			kept = append(kept, w)
		}
	}
	s.words = kept
	s.alphabet = alphabetOf(kept)
	s.version++

	log.Trace().Int("rules", len(batch)).Int("before", before).Int("after", len(kept)).Msg("applied letter rules")
	return nil
}

// CountLettersByPosition tallies, per position up to the longest surviving
// word, how many words have each letter there. Shorter words are skipped at
// positions past their end.
func (s *Set) CountLettersByPosition() ([]map[byte]int, error) {
	if len(s.words) == 0 {
		return nil, fmt.Errorf("%w: empty word list", solvererr.ErrNoMoreGuesses)
	}
	longest := 0
	for _, w := range s.words {
		if len(w) > longest {
			longest = len(w)
		}
	}
	counts := make([]map[byte]int, longest)
	for p := range counts {
		counts[p] = make(map[byte]int)
	}
	for _, w := range s.words {
		for p := 0; p < len(w); p++ {
			counts[p][w[p]]++
		}
	}
	return counts, nil
}

// alphabetOf returns the sorted distinct letters of words.
func alphabetOf(words []string) string {
	seen := bitset.New(letterBits)
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			seen.Set(uint(w[i]))
		}
	}
	return lettersOf(seen)
}

// lettersOf renders a letter bitset as a sorted string.
func lettersOf(b *bitset.BitSet) string {
	var sb strings.Builder
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		sb.WriteByte(byte(i))
	}
	return sb.String()
}
