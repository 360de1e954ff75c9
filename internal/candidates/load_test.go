package candidates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const fileWords = "ABC\nDEF\nGHI\nJK\nLMNO"

func TestParseLines(t *testing.T) {
	if got := ParseLines(fileWords, 0); !reflect.DeepEqual(got, []string{"ABC", "DEF", "GHI", "JK", "LMNO"}) {
		t.Fatalf("unfiltered = %v", got)
	}
	if got := ParseLines(fileWords, 3); !reflect.DeepEqual(got, []string{"ABC", "DEF", "GHI"}) {
		t.Fatalf("filtered = %v", got)
	}
	if got := ParseLines("crane\r\n\r\n  slate \n", 5); !reflect.DeepEqual(got, []string{"crane", "slate"}) {
		t.Fatalf("crlf = %v", got)
	}
}

func TestLoadFiltersByLength(t *testing.T) {
	s, err := Load(context.Background(), strings.NewReader(fileWords), 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Words(); !reflect.DeepEqual(got, []string{"ABC", "DEF", "GHI"}) {
		t.Fatalf("Words() = %v", got)
	}
	if s.WordLength() != 3 {
		t.Fatalf("WordLength() = %d", s.WordLength())
	}

	s, err = Load(context.Background(), strings.NewReader(fileWords), 0)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 5 || s.WordLength() != DefaultWordLength {
		t.Fatalf("unfiltered load: %v (length %d)", s.Words(), s.WordLength())
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, strings.NewReader(fileWords), 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("crane\nslate\nbad\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(context.Background(), path, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Words(); !reflect.DeepEqual(got, []string{"CRANE", "SLATE"}) {
		t.Fatalf("Words() = %v", got)
	}

	if _, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), 5); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/words.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("crown\ncrowd\n"))
	}))
	defer srv.Close()

	s, err := LoadURL(context.Background(), srv.Client(), srv.URL+"/words.txt", 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Words(); !reflect.DeepEqual(got, []string{"CROWD", "CROWN"}) {
		t.Fatalf("Words() = %v", got)
	}

	if _, err := LoadURL(context.Background(), srv.Client(), srv.URL+"/nope", 5); err == nil {
		t.Fatal("expected error for 404")
	}
}
