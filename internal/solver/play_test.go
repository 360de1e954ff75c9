package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
)

func TestNewStrategy(t *testing.T) {
	set := candidates.New(sampleWords)
	for _, name := range StrategyNames() {
		st, err := NewStrategy(name, set, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if st.Name() != name {
			t.Errorf("NewStrategy(%s).Name() = %s", name, st.Name())
		}
	}
	if _, err := NewStrategy("coinFlip", set, Options{}); !errors.Is(err, solvererr.ErrInvalidArgument) {
		t.Fatalf("unknown strategy err = %v", err)
	}
}

func TestPlaySolvesEveryAnswer(t *testing.T) {
	dict := candidates.New(sampleWords)
	for _, name := range StrategyNames() {
		for _, answer := range sampleWords {
			out, err := Play(context.Background(), dict, name, answer, PlayOptions{})
			if err != nil {
				t.Fatalf("%s/%s: %v", name, answer, err)
			}
			if !out.Solved || out.Guesses[len(out.Guesses)-1] != answer {
				t.Fatalf("%s/%s: unsolved %+v", name, answer, out)
			}
			if out.Turns() > len(sampleWords) || len(out.Marks) != out.Turns() {
				t.Fatalf("%s/%s: bad outcome %+v", name, answer, out)
			}
		}
	}
	if dict.Len() != len(sampleWords) {
		t.Fatal("Play mutated the shared dictionary")
	}
}

func TestPlayUsesOpening(t *testing.T) {
	dict := candidates.New(sampleWords)
	out, err := Play(context.Background(), dict, strategy.NameDistinctLetters, "crowd", PlayOptions{Opening: "cloud"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Guesses[0] != "CLOUD" || out.Marks[0] != "G.G.G" {
		t.Fatalf("opening not used: %+v", out)
	}
	if !out.Solved {
		t.Fatalf("unsolved: %+v", out)
	}
}

func TestPlayTurnLimitAndExhaustion(t *testing.T) {
	dict := candidates.New(sampleWords)
	out, err := Play(context.Background(), dict, strategy.NameLetterFrequency, "CRUDE", PlayOptions{MaxTurns: 1, Opening: "APPLE"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Solved || out.Turns() != 1 {
		t.Fatalf("turn limit ignored: %+v", out)
	}

	// An answer outside the dictionary exhausts the candidates.
	out, err = Play(context.Background(), dict, strategy.NameDistinctLetters, "ZESTY", PlayOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Solved {
		t.Fatalf("solved an answer outside the dictionary: %+v", out)
	}
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Play(ctx, candidates.New(sampleWords), strategy.NameDistinctLetters, "CRUDE", PlayOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestOpening(t *testing.T) {
	dict := candidates.New(sampleWords)
	best, err := Opening(strategy.NameDistinctLetters, dict, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if best.Word != "BREAD" {
		t.Fatalf("Opening = %+v", best)
	}
}
