// apps/go-solver/internal/rules/types.go
//
// Letter rule model.
// Defines:
//   - Requirement: the three-valued requirement for a letter (Mandatory/Misplaced/Impossible).
//   - Rule: a requirement for one letter, optionally pinned to a position.

package rules

import (
	"fmt"
	"strconv"
)

// Requirement describes what feedback says about a letter.
// Possible values:
//   - "Mandatory":  letter is correct at this exact position.
//   - "Misplaced":  letter is in the word, but not at this position.
//   - "Impossible": letter does not occur anywhere in the word.
type Requirement string

const (
	Mandatory  Requirement = "Mandatory"
	Misplaced  Requirement = "Misplaced"
	Impossible Requirement = "Impossible"
)

// Valid reports whether q is one of the known requirements.
func (q Requirement) Valid() bool {
	switch q {
	case Mandatory, Misplaced, Impossible:
		return true
	}
	return false
}

// Rule is one piece of feedback about a letter.
// Position is required unless Required is Impossible, which applies to the whole word.
type Rule struct {
	Letter   string      `json:"letter"`             // single uppercase letter
	Required Requirement `json:"required"`           // Mandatory | Misplaced | Impossible
	Position *int        `json:"position,omitempty"` // 0-based; nil for Impossible
}

// At builds a positional rule.
func At(letter string, required Requirement, position int) Rule {
	p := position
	return Rule{Letter: letter, Required: required, Position: &p}
}

// Absent builds an Impossible rule.
func Absent(letter string) Rule {
	return Rule{Letter: letter, Required: Impossible}
}

// HasPosition reports whether the rule carries a position.
func (r Rule) HasPosition() bool { return r.Position != nil }

// Pos returns the position, or -1 when unset.
func (r Rule) Pos() int {
	if !r.HasPosition() {
		return -1
	}
	return *r.Position
}

// String renders the rule as e.g. "C@0 Mandatory" or "A Impossible".
func (r Rule) String() string {
	if !r.HasPosition() {
		return fmt.Sprintf("%s %s", r.Letter, r.Required)
	}
	return r.Letter + "@" + strconv.Itoa(*r.Position) + " " + string(r.Required)
}
