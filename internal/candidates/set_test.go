package candidates

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
	"github.com/robalobadob/wordle/apps/go-solver/internal/wordgen"
)

var sampleWords = []string{
	"APPLE", "APPLY", "BLOOD", "BREAD", "BREED",
	"BROOD", "CLICK", "CLOUD", "CROWD", "CRUDE",
}

func mustApply(t *testing.T, s *Set, rs ...rules.Rule) {
	t.Helper()
	if err := s.Apply(rs); err != nil {
		t.Fatalf("Apply(%v): %v", rs, err)
	}
}

func TestNewNormalizesAndSorts(t *testing.T) {
	s := New([]string{"UNSORTED", "lowercase", " NOTTRIMMED "})
	want := []string{"LOWERCASE", "NOTTRIMMED", "UNSORTED"}
	if got := s.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	if len(s.LetterRules()) != 0 {
		t.Fatalf("new set has rules: %v", s.LetterRules())
	}
}

func TestNewEmpty(t *testing.T) {
	s := New(nil)
	if s.Len() != 0 || s.Alphabet() != "" {
		t.Fatalf("empty set has words %v alphabet %q", s.Words(), s.Alphabet())
	}
	if s.HasSolution() || s.IsSolved() {
		t.Fatal("empty set reports a solution")
	}
	if got := s.PossibleLetters(); len(got) != DefaultWordLength {
		t.Fatalf("possible letters has %d positions", len(got))
	}
}

func TestNewWithLengthRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewWithLength([]string{"ABC"}, n); !errors.Is(err, solvererr.ErrInvalidArgument) {
			t.Errorf("NewWithLength(n=%d) error = %v", n, err)
		}
	}
}

func TestAlphabetUsesEveryWordOnce(t *testing.T) {
	s := New([]string{"ABCDE", "FGHIJ", "ABCDK", "AABLL"})
	if got := s.Alphabet(); got != "ABCDEFGHIJKL" {
		t.Fatalf("Alphabet() = %q", got)
	}
}

func TestPossibleLettersStartFromObservedLetters(t *testing.T) {
	s := New(wordgen.MustAlphabetWords("ABC", DefaultWordLength))
	for p, letters := range s.PossibleLetters() {
		if letters != "ABC" {
			t.Errorf("position %d = %q, want ABC", p, letters)
		}
	}

	s = New([]string{"CRANE", "SLATE"})
	want := []string{"CS", "LR", "A", "NT", "E"}
	if got := s.PossibleLetters(); !reflect.DeepEqual(got, want) {
		t.Fatalf("PossibleLetters() = %v, want %v", got, want)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	orig := New([]string{"TESTS", "FROMS", "COPYS"})
	cp := orig.Copy()
	if !reflect.DeepEqual(cp.Words(), orig.Words()) || cp.Alphabet() != orig.Alphabet() {
		t.Fatal("copy differs from original")
	}
	mustApply(t, cp, rules.Absent("T"))
	if orig.Len() != 3 {
		t.Fatalf("original narrowed through copy: %v", orig.Words())
	}
	if !strings.Contains(orig.PossibleLetters()[0], "T") {
		t.Fatal("original lost T at position 0")
	}
	if len(orig.LetterRules()) != 0 {
		t.Fatal("original history changed")
	}
}

func TestWithRulesLeavesReceiverUntouched(t *testing.T) {
	s := New([]string{"AAAAA", "BBBBB"})
	out, err := s.WithRules([]rules.Rule{rules.Absent("B")})
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Words(); !reflect.DeepEqual(got, []string{"AAAAA"}) {
		t.Fatalf("WithRules words = %v", got)
	}
	if s.Len() != 2 || s.Version() != 0 {
		t.Fatalf("receiver mutated: %v (version %d)", s.Words(), s.Version())
	}

	if _, err := s.WithRules([]rules.Rule{{Letter: "A", Required: rules.Misplaced}}); !errors.Is(err, solvererr.ErrMissingPosition) {
		t.Fatalf("WithRules error = %v", err)
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name     string
		alphabet string
		rules    []rules.Rule
		words    map[string]bool
	}{
		{
			name:     "impossible excludes a letter everywhere",
			alphabet: "AB",
			rules:    []rules.Rule{rules.Absent("A")},
			words: map[string]bool{
				"AAAAA": false, "ABBBB": false, "BBABB": false, "BBBBA": false, "BBBBB": true,
			},
		},
		{
			name:     "mandatory at every position",
			alphabet: "AB",
			rules: []rules.Rule{
				rules.At("B", rules.Mandatory, 0), rules.At("B", rules.Mandatory, 1),
				rules.At("B", rules.Mandatory, 2), rules.At("B", rules.Mandatory, 3),
				rules.At("B", rules.Mandatory, 4),
			},
			words: map[string]bool{"AAAAA": false, "BABBB": false, "BBBBA": false, "BBBBB": true},
		},
		{
			name:     "misplaced needs the letter elsewhere",
			alphabet: "ABC",
			rules:    []rules.Rule{rules.At("C", rules.Misplaced, 0)},
			words:    map[string]bool{"CCCCC": false, "BBBBB": false, "BCCCC": true, "ABBBC": true},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(wordgen.MustAlphabetWords(tc.alphabet, DefaultWordLength))
			mustApply(t, s, tc.rules...)
			for w, want := range tc.words {
				if got := s.Matches(w); got != want {
					t.Errorf("Matches(%s) = %v, want %v", w, got, want)
				}
			}
		})
	}
}

func TestMatchesRejectsShortWords(t *testing.T) {
	s := New([]string{"ABCDE"})
	if s.Matches("ABC") {
		t.Fatal("short word matched")
	}
}

func TestApplyPossibleLetters(t *testing.T) {
	cases := []struct {
		name  string
		rules []rules.Rule
		want  []string
	}{
		{
			name:  "mandatory pins a single letter",
			rules: []rules.Rule{rules.At("A", rules.Mandatory, 0)},
			want:  []string{"A", "ABC", "ABC", "ABC", "ABC"},
		},
		{
			name:  "misplaced removes the letter at its position",
			rules: []rules.Rule{rules.At("A", rules.Misplaced, 0), rules.At("B", rules.Misplaced, 1)},
			want:  []string{"BC", "AC", "ABC", "ABC", "ABC"},
		},
		{
			name:  "impossible removes the letter from every position",
			rules: []rules.Rule{rules.Absent("A")},
			want:  []string{"BC", "BC", "BC", "BC", "BC"},
		},
		{
			name: "misplaced letter later found: mandatory there, impossible elsewhere",
			rules: []rules.Rule{
				rules.At("A", rules.Misplaced, 1),
				rules.At("A", rules.Mandatory, 0),
				rules.Absent("A"),
			},
			want: []string{"A", "BC", "BC", "BC", "BC"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(wordgen.MustAlphabetWords("ABC", DefaultWordLength))
			mustApply(t, s, tc.rules...)
			if got := s.PossibleLetters(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("PossibleLetters() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApplyRecordsRulesInSubmissionOrder(t *testing.T) {
	s := New(wordgen.MustAlphabetWords("ABC", DefaultWordLength))
	batch := []rules.Rule{rules.At("A", rules.Mandatory, 0), rules.At("b", rules.Misplaced, 0), rules.Absent("C")}
	mustApply(t, s, batch...)
	got := s.LetterRules()
	want := []string{"A@0 Mandatory", "B@0 Misplaced", "C Impossible"}
	for i := range want {
		if got[i].String() != want[i] {
			t.Fatalf("history = %v, want %v", got, want)
		}
	}
}

func TestApplyMandatoryWinsOverMisplacedElsewhere(t *testing.T) {
	s := New(wordgen.MustAlphabetWords("ABC", DefaultWordLength))
	mustApply(t, s, rules.At("A", rules.Mandatory, 3), rules.At("A", rules.Misplaced, 1))
	pl := s.PossibleLetters()
	if pl[3] != "A" {
		t.Errorf("position 3 = %q, want A", pl[3])
	}
	if strings.Contains(pl[1], "A") {
		t.Errorf("position 1 still allows A: %q", pl[1])
	}
}

func TestApplyMissingPositionIsAtomic(t *testing.T) {
	s := New(sampleWords)
	before := s.Words()
	beforeLetters := s.PossibleLetters()

	err := s.Apply([]rules.Rule{rules.Absent("B"), {Letter: "A", Required: rules.Mandatory}})
	if !errors.Is(err, solvererr.ErrMissingPosition) || !errors.Is(err, solvererr.ErrSolver) {
		t.Fatalf("Apply error = %v, want ErrMissingPosition", err)
	}
	if !reflect.DeepEqual(s.Words(), before) || !reflect.DeepEqual(s.PossibleLetters(), beforeLetters) {
		t.Fatal("failed batch partially committed")
	}
	if len(s.LetterRules()) != 0 || s.Version() != 0 {
		t.Fatal("failed batch recorded history")
	}

	if err := s.Apply([]rules.Rule{{Letter: "A", Required: rules.Misplaced}}); !errors.Is(err, solvererr.ErrMissingPosition) {
		t.Fatalf("misplaced without position: %v", err)
	}
	if err := s.Apply([]rules.Rule{{Letter: "A", Required: rules.Impossible}}); err != nil {
		t.Fatalf("impossible without position: %v", err)
	}
	if err := s.Apply([]rules.Rule{rules.At("A", rules.Misplaced, 7)}); !errors.Is(err, solvererr.ErrPositionOutOfRange) {
		t.Fatalf("out of range position: %v", err)
	}
}

func TestApplyImpossibleIsIdempotent(t *testing.T) {
	once := New(sampleWords)
	mustApply(t, once, rules.Absent("A"))

	twice := New(sampleWords)
	mustApply(t, twice, rules.Absent("A"))
	mustApply(t, twice, rules.Absent("A"))

	if !reflect.DeepEqual(once.Words(), twice.Words()) {
		t.Fatalf("words differ: %v vs %v", once.Words(), twice.Words())
	}
	if !reflect.DeepEqual(once.PossibleLetters(), twice.PossibleLetters()) {
		t.Fatalf("possible letters differ")
	}
	if once.Alphabet() != twice.Alphabet() {
		t.Fatalf("alphabet differs")
	}
}

func TestApplyNarrowsMonotonically(t *testing.T) {
	batches := [][]rules.Rule{
		{rules.Absent("P")},
		{rules.At("R", rules.Mandatory, 1), rules.Absent("Y")},
		{rules.At("O", rules.Misplaced, 3), rules.At("D", rules.Mandatory, 4)},
		{rules.Absent("B")},
	}
	s := New(sampleWords)
	for i, b := range batches {
		beforeWords := s.Len()
		beforeLetters := s.PossibleLetters()
		mustApply(t, s, b...)
		if s.Len() > beforeWords {
			t.Fatalf("batch %d grew words %d -> %d", i, beforeWords, s.Len())
		}
		for p, letters := range s.PossibleLetters() {
			for _, c := range letters {
				if !strings.ContainsRune(beforeLetters[p], c) {
					t.Fatalf("batch %d added %c at position %d", i, c, p)
				}
			}
		}
		for _, w := range s.Words() {
			for _, c := range w {
				if !strings.ContainsRune(s.Alphabet(), c) {
					t.Fatalf("alphabet %q misses %c from %s", s.Alphabet(), c, w)
				}
			}
		}
	}
	if got := s.Words(); !reflect.DeepEqual(got, []string{"CROWD"}) {
		t.Fatalf("final words = %v", got)
	}
}

func TestApplyScenarioNarrowsToCrowd(t *testing.T) {
	s := New(sampleWords)

	mustApply(t, s, rules.Absent("A"))
	want := []string{"BLOOD", "BREED", "BROOD", "CLICK", "CLOUD", "CROWD", "CRUDE"}
	if got := s.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after A impossible: %v", got)
	}

	mustApply(t, s, rules.At("C", rules.Mandatory, 0))
	want = []string{"CLICK", "CLOUD", "CROWD", "CRUDE"}
	if got := s.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after C@0 mandatory: %v", got)
	}

	mustApply(t, s, rules.Absent("K"), rules.At("D", rules.Mandatory, 4))
	want = []string{"CLOUD", "CROWD"}
	if got := s.Words(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after K impossible, D@4 mandatory: %v", got)
	}

	mustApply(t, s, rules.At("O", rules.Mandatory, 2), rules.Absent("L"))
	if got := s.Words(); !reflect.DeepEqual(got, []string{"CROWD"}) {
		t.Fatalf("final: %v", got)
	}
	if !s.IsSolved() || s.Alphabet() != "CDORW" {
		t.Fatalf("solved=%v alphabet=%q", s.IsSolved(), s.Alphabet())
	}
}

func TestApplyRelocatedLetter(t *testing.T) {
	start := []string{"AAAAA", "BAAAA", "ABAAA", "AABAA", "AAABA", "AAAAB", "BBBBB"}
	cases := []struct {
		name  string
		rules []rules.Rule
		want  []string
	}{
		{
			name:  "misplaced at 0",
			rules: []rules.Rule{rules.At("B", rules.Misplaced, 0)},
			want:  []string{"AAAAB", "AAABA", "AABAA", "ABAAA"},
		},
		{
			name: "found at 1 after misplaced at 0",
			rules: []rules.Rule{
				rules.At("B", rules.Misplaced, 0),
				rules.At("B", rules.Mandatory, 1),
				rules.Absent("B"),
			},
			want: []string{"ABAAA"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := New(start).WithRules(tc.rules)
			if err != nil {
				t.Fatal(err)
			}
			if got := out.Words(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("words = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVersionBumpsOnCommit(t *testing.T) {
	s := New(sampleWords)
	mustApply(t, s, rules.Absent("Z"))
	mustApply(t, s, rules.Absent("Q"))
	if s.Version() != 2 {
		t.Fatalf("Version() = %d, want 2", s.Version())
	}
}

func TestCountLettersByPosition(t *testing.T) {
	if _, err := New(nil).CountLettersByPosition(); !errors.Is(err, solvererr.ErrNoMoreGuesses) {
		t.Fatalf("empty set error = %v", err)
	}

	s, err := NewWithLength([]string{"AAA", "BBA", "ACA"}, 3)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.CountLettersByPosition()
	if err != nil {
		t.Fatal(err)
	}
	want := []map[byte]int{{'A': 2, 'B': 1}, {'A': 1, 'B': 1, 'C': 1}, {'A': 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("counts = %v, want %v", got, want)
	}

	uneven := New([]string{"A", "AA", "AB", "ABC"})
	got, err = uneven.CountLettersByPosition()
	if err != nil {
		t.Fatal(err)
	}
	want = []map[byte]int{{'A': 4}, {'A': 1, 'B': 2}, {'C': 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uneven counts = %v, want %v", got, want)
	}
}
