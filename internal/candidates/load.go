// apps/go-solver/internal/candidates/load.go
//
// Dictionary loading: one word per line from a reader, a file, or a URL.
// Lines are split on "\n", trimmed, blank lines dropped, and (when
// wordLength > 0) filtered to that exact length.

package candidates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseLines splits a newline-delimited blob into words.
// wordLength <= 0 disables the length filter.
func ParseLines(data string, wordLength int) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		if wordLength > 0 && len(w) != wordLength {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Load reads a whole dictionary from r and builds a Set.
// The set's word length is wordLength, or DefaultWordLength when wordLength <= 0.
func Load(ctx context.Context, r io.Reader, wordLength int) (*Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := wordLength
	if n <= 0 {
		n = DefaultWordLength
	}
	return NewWithLength(ParseLines(string(data), wordLength), n)
}

// LoadFile loads a dictionary from a text file.
func LoadFile(ctx context.Context, path string, wordLength int) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(ctx, f, wordLength)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", s.Len()).Msg("loaded dictionary file")
	return s, nil
}

// LoadURL fetches a dictionary over HTTP(S). A nil client uses http.DefaultClient.
func LoadURL(ctx context.Context, client *http.Client, url string, wordLength int) (*Set, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dictionary %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dictionary %s: status %d", url, res.StatusCode)
	}

	s, err := Load(ctx, res.Body, wordLength)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("url", url).Int("words", s.Len()).Msg("loaded dictionary url")
	return s, nil
}
