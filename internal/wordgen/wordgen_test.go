package wordgen

import (
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

func TestAlphabetOfLength(t *testing.T) {
	for n, want := range map[int]string{0: "", 1: "A", 3: "ABC", 26: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"} {
		got, err := AlphabetOfLength(n)
		if err != nil {
			t.Fatalf("AlphabetOfLength(%d): %v", n, err)
		}
		if got != want {
			t.Errorf("AlphabetOfLength(%d) = %q, want %q", n, got, want)
		}
	}
	for _, n := range []int{-1, 27, 100} {
		if _, err := AlphabetOfLength(n); !errors.Is(err, solvererr.ErrInvalidArgument) {
			t.Errorf("AlphabetOfLength(%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}

func TestAlphabetWords(t *testing.T) {
	got, err := AlphabetWords("AB", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"AA", "AB", "BA", "BB"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	five := MustAlphabetWords("ABC", 5)
	if len(five) != 243 {
		t.Errorf("len = %d, want 3^5", len(five))
	}

	for _, n := range []int{0, -3} {
		if _, err := AlphabetWords("AB", n); !errors.Is(err, solvererr.ErrInvalidArgument) {
			t.Errorf("AlphabetWords(n=%d) error = %v, want ErrInvalidArgument", n, err)
		}
	}
}
