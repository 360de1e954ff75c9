package rules

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		name   string
		rule   Rule
		letter string
		want   bool
	}{
		{"impossible always matches other letter", Absent("A"), "B", true},
		{"impossible always matches same letter", Absent("A"), "A", true},
		{"mandatory same letter", At("C", Mandatory, 0), "C", true},
		{"mandatory other letter", At("C", Mandatory, 0), "D", false},
		{"misplaced matches anything", At("E", Misplaced, 4), "E", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Matches(tc.letter); got != tc.want {
				t.Errorf("Matches(%q) = %v, want %v", tc.letter, got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	m := At("A", Mandatory, 0)
	p := At("B", Misplaced, 1)
	x := Absent("C")
	cases := []struct {
		a, b Rule
		want int
	}{
		{m, p, +1},
		{m, x, +1},
		{p, m, -1},
		{x, m, -1},
		{m, m, 0},
		{p, x, 0},
		{x, p, 0},
	}
	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSortForApplyPutsMandatoryLastAndIsStable(t *testing.T) {
	in := []Rule{
		At("A", Mandatory, 0),
		At("B", Misplaced, 0),
		Absent("C"),
		At("D", Mandatory, 1),
		Absent("E"),
	}
	got := SortForApply(in)
	want := []string{"B@0 Misplaced", "C Impossible", "E Impossible", "A@0 Mandatory", "D@1 Mandatory"}
	for i, r := range got {
		if r.String() != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, r, want[i])
		}
	}
	if in[0].Required != Mandatory {
		t.Fatalf("SortForApply reordered its input")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		rule    Rule
		wantErr error
	}{
		{"impossible without position", Absent("a"), nil},
		{"mandatory without position", Rule{Letter: "A", Required: Mandatory}, solvererr.ErrMissingPosition},
		{"misplaced without position", Rule{Letter: "A", Required: Misplaced}, solvererr.ErrMissingPosition},
		{"position too large", At("A", Mandatory, 5), solvererr.ErrPositionOutOfRange},
		{"negative position", At("A", Misplaced, -1), solvererr.ErrPositionOutOfRange},
		{"empty letter", At("", Misplaced, 1), solvererr.ErrInvalidArgument},
		{"two letters", Absent("AB"), solvererr.ErrInvalidArgument},
		{"unknown requirement", Rule{Letter: "A", Required: "Possible"}, solvererr.ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.rule.Validate(5)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestHasPosition(t *testing.T) {
	if !At("A", Misplaced, 0).HasPosition() {
		t.Error("At rule should carry a position")
	}
	r := Absent("A")
	if r.HasPosition() || r.Pos() != -1 || r.String() != "A Impossible" {
		t.Errorf("Absent rule = %s (pos %d)", r, r.Pos())
	}
}

func TestValidateUppercasesAndClones(t *testing.T) {
	in := At("c", Mandatory, 2)
	out, err := in.Validate(5)
	if err != nil {
		t.Fatal(err)
	}
	if out.Letter != "C" {
		t.Errorf("letter = %q, want C", out.Letter)
	}
	*in.Position = 4
	if out.Pos() != 2 {
		t.Errorf("validated rule shares position with input")
	}
}

func TestValidateAllStopsAtFirstError(t *testing.T) {
	batch := []Rule{Absent("A"), {Letter: "B", Required: Mandatory}, At("C", Misplaced, 9)}
	got, err := ValidateAll(batch, 5)
	if !errors.Is(err, solvererr.ErrMissingPosition) {
		t.Fatalf("got %v, want ErrMissingPosition", err)
	}
	if got != nil {
		t.Fatalf("expected nil batch on error, got %v", got)
	}
}
