// apps/go-solver/internal/rules/rules.go
//
// Rule helpers: single-letter matching, the batch ordering comparator, and
// validation applied before a batch mutates any candidate set.

package rules

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

// Matches reports whether a single letter is compatible with the rule.
//
// Impossible always matches: exclusion is handled at the set level, not per comparison.
// Mandatory matches only its own letter. Anything else matches unconditionally.
func (r Rule) Matches(letter string) bool {
	switch r.Required {
	case Impossible:
		return true
	case Mandatory:
		return letter == r.Letter
	default:
		return true
	}
}

// Compare orders rules so Mandatory sorts after everything else.
// Returns +1 if only a is Mandatory, -1 if only b is, else 0.
func Compare(a, b Rule) int {
	if a.Required == Mandatory {
		if b.Required == Mandatory {
			return 0
		}
		return +1
	}
	if b.Required == Mandatory {
		return -1
	}
	return 0
}

// SortForApply returns a stably sorted copy of rs with Mandatory rules last.
// A letter excluded at one position (Misplaced) and confirmed at another
// (Mandatory) in the same batch must end up pinned where it was confirmed.
func SortForApply(rs []Rule) []Rule {
	out := slices.Clone(rs)
	slices.SortStableFunc(out, func(a, b Rule) bool { return Compare(a, b) < 0 })
	return out
}

// Validate normalizes and checks one rule against a word length.
//   - Letter must be exactly one character; it is upper-cased.
//   - Required must be a known requirement.
//   - Mandatory/Misplaced need a position in [0, wordLength).
func (r Rule) Validate(wordLength int) (Rule, error) {
	r.Letter = strings.ToUpper(strings.TrimSpace(r.Letter))
	if len(r.Letter) != 1 {
		return r, fmt.Errorf("%w: letter %q in rule %s", solvererr.ErrInvalidArgument, r.Letter, r)
	}
	if !r.Required.Valid() {
		return r, fmt.Errorf("%w: requirement %q in rule %s", solvererr.ErrInvalidArgument, r.Required, r)
	}
	if r.Required == Impossible {
		return r, nil
	}
	if !r.HasPosition() {
		return r, fmt.Errorf("%w: %s", solvererr.ErrMissingPosition, r)
	}
	if *r.Position < 0 || *r.Position >= wordLength {
		return r, fmt.Errorf("%w: %s (word length %d)", solvererr.ErrPositionOutOfRange, r, wordLength)
	}
	return r.Clone(), nil
}

// Clone returns a copy that does not share the position pointer.
func (r Rule) Clone() Rule {
	if r.HasPosition() {
		p := *r.Position
		r.Position = &p
	}
	return r
}

// ValidateAll validates every rule, returning the normalized batch or the first error.
// Nothing is returned on error, so callers can commit all-or-nothing.
func ValidateAll(rs []Rule, wordLength int) ([]Rule, error) {
	out := make([]Rule, 0, len(rs))
	for _, r := range rs {
		v, err := r.Validate(wordLength)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
