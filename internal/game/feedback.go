// apps/go-solver/internal/game/feedback.go
//
// Conversion between puzzle marks and solver rules.
// Responsibilities:
//   - Turn a scored guess into the letter rules the candidate set applies.
//   - Parse hand-typed mark patterns (e.g. "GY..B") for manual play.
//   - Render a scored guess as coloured tiles for terminal output.

package game

import (
	"fmt"
	"strings"

	"github.com/TwiN/go-color"

	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

// Feedback converts marks for guess into rules:
//   - hit → Mandatory at i
//   - present → Misplaced at i
//   - miss → Impossible, unless the same letter is hit or present elsewhere in
//     this guess; then Misplaced at i, since the answer holds the letter but
//     not here.
//
// The answer that produced the marks always satisfies the returned rules.
func Feedback(guess string, marks []Mark) ([]rules.Rule, error) {
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != len(marks) {
		return nil, fmt.Errorf("%w: %d marks for %q", solvererr.ErrInvalidArgument, len(marks), guess)
	}

	found := map[byte]bool{}
	for i, m := range marks {
		if m == MarkHit || m == MarkPresent {
			found[guess[i]] = true
		}
	}

	out := make([]rules.Rule, 0, len(marks))
	for i, m := range marks {
		letter := guess[i : i+1]
		switch m {
		case MarkHit:
			out = append(out, rules.At(letter, rules.Mandatory, i))
		case MarkPresent:
			out = append(out, rules.At(letter, rules.Misplaced, i))
		case MarkMiss:
			if found[guess[i]] {
				out = append(out, rules.At(letter, rules.Misplaced, i))
			} else {
				out = append(out, rules.Absent(letter))
			}
		default:
			return nil, fmt.Errorf("%w: unknown mark %q", solvererr.ErrInvalidArgument, m)
		}
	}
	return out, nil
}

// ParseMarks reads a pattern with one character per tile:
// G or 2 for hit, Y or 1 for present, and any of . _ - 0 B X for miss.
func ParseMarks(pattern string) ([]Mark, error) {
	pattern = strings.ToUpper(strings.TrimSpace(pattern))
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty mark pattern", solvererr.ErrInvalidArgument)
	}
	out := make([]Mark, 0, len(pattern))
	for _, c := range pattern {
		switch c {
		case 'G', '2':
			out = append(out, MarkHit)
		case 'Y', '1':
			out = append(out, MarkPresent)
		case '.', '_', '-', '0', 'B', 'X':
			out = append(out, MarkMiss)
		default:
			return nil, fmt.Errorf("%w: bad mark %q in %q", solvererr.ErrInvalidArgument, c, pattern)
		}
	}
	return out, nil
}

// Pattern is the inverse of ParseMarks using G, Y and '.'.
func Pattern(marks []Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case MarkHit:
			b.WriteByte('G')
		case MarkPresent:
			b.WriteByte('Y')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

var tileColors = map[Mark]string{
	MarkHit:     color.Green,
	MarkPresent: color.Yellow,
	MarkMiss:    color.Gray,
}

// Render colours each guess letter by its mark.
func Render(guess string, marks []Mark) string {
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		c := color.Gray
		if i < len(marks) {
			c = tileColors[marks[i]]
		}
		b.WriteString(color.Ize(c, guess[i:i+1]))
	}
	return b.String()
}
