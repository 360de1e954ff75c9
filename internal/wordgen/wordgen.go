// Package wordgen builds synthetic dictionaries for tests and benchmarks:
// the first n letters of A–Z, and every word of a given length over an alphabet.
package wordgen

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
)

// AlphabetOfLength returns the first n uppercase letters ("ABC" for 3).
func AlphabetOfLength(n int) (string, error) {
	if n < 0 || n > 26 {
		return "", fmt.Errorf("%w: alphabet length %d not in [0, 26]", solvererr.ErrInvalidArgument, n)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = 'A' + byte(i)
	}
	return string(b), nil
}

// AlphabetWords returns every word of wordLength letters drawn from alphabet,
// in lexicographic order of alphabet's letters.
func AlphabetWords(alphabet string, wordLength int) ([]string, error) {
	if wordLength <= 0 {
		return nil, fmt.Errorf("%w: word length %d", solvererr.ErrInvalidArgument, wordLength)
	}
	words := []string{""}
	for i := 0; i < wordLength; i++ {
		next := make([]string, 0, len(words)*len(alphabet))
		for _, prefix := range words {
			for j := 0; j < len(alphabet); j++ {
				next = append(next, prefix+alphabet[j:j+1])
			}
		}
		words = next
	}
	return words, nil
}

// MustAlphabetWords is AlphabetWords for fixed, known-good arguments.
func MustAlphabetWords(alphabet string, wordLength int) []string {
	w, err := AlphabetWords(alphabet, wordLength)
	if err != nil {
		panic(err)
	}
	return w
}
