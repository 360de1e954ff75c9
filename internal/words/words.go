// apps/go-solver/internal/words/words.go
//
// Word list management for the solver, the simulated puzzle and the daily
// challenge.
//
// Responsibilities:
//   - Load answer and allowed guess lists from configured files or URLs, or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply RandomAnswer, IsAllowed, IsAnswer and Stats per Lists value.
//
// Word Lists:
//   - "answers": canonical solutions; also the solver's default dictionary.
//   - "allowed": valid guesses (always includes answers).
//
// Initialization behavior (Init):
//   1. If AnswersFile and AllowedFile are both set, load each.
//   2. If only AllowedFile is set, use it for both lists.
//   3. Otherwise use the embedded defaults.
//
// Constraints:
//   • Words are normalized to uppercase and must be WordLength letters A–Z.
//   • Initialization is run once (sync.Once); the first caller wins.

package words

import (
	"context"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
)

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// Options select the list sources. A source starting with http:// or https://
// is fetched; anything else is a file path.
type Options struct {
	AnswersFile string
	AllowedFile string
	WordLength  int // <= 0 means candidates.DefaultWordLength
}

// Lists is one loaded pair of answer/allowed lists.
type Lists struct {
	wordLength int
	answers    []string // sorted
	answersSet mapset.Set[string]
	allowedSet mapset.Set[string] // answers ∪ guesses
}

var (
	initOnce   sync.Once
	current    *Lists
	initialErr error
)

// Init loads the process-wide word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init(ctx context.Context, opts Options) error {
	initOnce.Do(func() {
		current, initialErr = Load(ctx, opts)
		if initialErr == nil {
			a, b := current.Stats()
			log.Info().Int("answers", a).Int("allowed", b).Int("wordLength", current.wordLength).Msg("word lists loaded")
		}
	})
	return initialErr
}

// Default returns the process-wide lists, loading the embedded defaults when
// Init was never called. It never returns nil.
func Default() *Lists {
	_ = Init(context.Background(), Options{})
	if current == nil {
		return &Lists{wordLength: candidates.DefaultWordLength, answersSet: mapset.NewThreadUnsafeSet[string](), allowedSet: mapset.NewThreadUnsafeSet[string]()}
	}
	return current
}

// Load reads lists according to opts without touching the process-wide state.
func Load(ctx context.Context, opts Options) (*Lists, error) {
	n := opts.WordLength
	if n <= 0 {
		n = candidates.DefaultWordLength
	}

	var ansList, allowList []string
	switch {
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		var err error
		if ansList, err = readWordSource(ctx, opts.AnswersFile, n); err != nil {
			return nil, err
		}
		if allowList, err = readWordSource(ctx, opts.AllowedFile, n); err != nil {
			return nil, err
		}
	case opts.AllowedFile != "":
		var err error
		if allowList, err = readWordSource(ctx, opts.AllowedFile, n); err != nil {
			return nil, err
		}
		ansList = allowList
	default:
		if n != candidates.DefaultWordLength {
			return nil, fmt.Errorf("words: embedded lists hold %d-letter words, not %d", candidates.DefaultWordLength, n)
		}
		ansList = normalizeLines(embeddedAnswers, n)
		allowList = normalizeLines(embeddedAllowed, n)
	}
	return newLists(ansList, allowList, n)
}

// FromWords builds lists directly; used by tests and custom dictionaries.
func FromWords(answers, allowed []string, wordLength int) (*Lists, error) {
	return newLists(normalize(answers, wordLength), normalize(allowed, wordLength), wordLength)
}

func newLists(ansList, allowList []string, n int) (*Lists, error) {
	l := &Lists{
		wordLength: n,
		answersSet: mapset.NewThreadUnsafeSet[string](ansList...),
	}
	l.answers = l.answersSet.ToSlice()
	slices.Sort(l.answers)

	l.allowedSet = l.answersSet.Clone()
	for _, w := range allowList {
		l.allowedSet.Add(w)
	}
	if len(l.answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return l, nil
}

// readWordSource loads one word per line from a file or URL, keeping only
// valid words of length n.
func readWordSource(ctx context.Context, src string, n int) ([]string, error) {
	var (
		set *candidates.Set
		err error
	)
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		set, err = candidates.LoadURL(ctx, nil, src, n)
	} else {
		set, err = candidates.LoadFile(ctx, src, n)
	}
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	return normalize(set.Words(), n), nil
}

func normalizeLines(s string, n int) []string {
	return normalize(candidates.ParseLines(s, n), n)
}

func normalize(list []string, n int) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) == n && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// WordLength is the length of every listed word.
func (l *Lists) WordLength() int { return l.wordLength }

// Answers returns a copy of the sorted answer list.
func (l *Lists) Answers() []string { return slices.Clone(l.answers) }

// Allowed returns every allowed guess, sorted.
func (l *Lists) Allowed() []string {
	out := l.allowedSet.ToSlice()
	slices.Sort(out)
	return out
}

// Dictionary builds a fresh candidate set over the answers.
func (l *Lists) Dictionary() *candidates.Set {
	s, _ := candidates.NewWithLength(l.answers, l.wordLength)
	return s
}

// LoadDictionary builds a candidate set from a custom word list, falling back
// to the answers when list is empty.
func (l *Lists) LoadDictionary(ctx context.Context, list []string) (*candidates.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return l.Dictionary(), nil
	}
	return candidates.NewWithLength(normalize(list, l.wordLength), l.wordLength)
}

// RandomAnswer returns a cryptographically random answer.
func (l *Lists) RandomAnswer() string {
	if len(l.answers) == 0 {
		return "CRANE"
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	return l.answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) IsAllowed(w string) bool {
	return l.allowedSet.Contains(strings.ToUpper(strings.TrimSpace(w)))
}

// IsAnswer reports whether w is an answer word.
func (l *Lists) IsAnswer(w string) bool {
	return l.answersSet.Contains(strings.ToUpper(strings.TrimSpace(w)))
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), l.allowedSet.Cardinality()
}

