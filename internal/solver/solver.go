// apps/go-solver/internal/solver/solver.go
//
// Solver orchestrator.
// Responsibilities:
//   - Own one candidate set and one instance of each scoring strategy.
//   - Apply feedback once to the shared set and record it in every strategy.
//   - Report every strategy's top recommendation side by side.
//
// Notes:
//   - The solver never picks among strategies; callers compare the results.
//   - Not safe for concurrent use: feedback mutates the shared set.

package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solvererr"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
)

// Options tune strategy construction.
type Options struct {
	NormalizeLetterFrequency bool
}

// Solver runs all strategies over one shared candidate set.
type Solver struct {
	set        *candidates.Set
	strategies []strategy.Strategy
}

// New builds a solver that takes ownership of set.
func New(set *candidates.Set, opts Options) *Solver {
	return &Solver{
		set: set,
		strategies: []strategy.Strategy{
			strategy.NewDistinctLetters(set),
			strategy.NewRetryMisplacedLetters(set),
			strategy.NewPerLetterElimination(set),
			strategy.NewLetterFrequency(set, opts.NormalizeLetterFrequency),
		},
	}
}

// Candidates returns the shared candidate set.
func (s *Solver) Candidates() *candidates.Set { return s.set }

// Strategies returns the strategies in a fixed order.
func (s *Solver) Strategies() []strategy.Strategy {
	return slices.Clone(s.strategies)
}

// Strategy looks up a strategy by name.
func (s *Solver) Strategy(name string) (strategy.Strategy, bool) {
	for _, st := range s.strategies {
		if st.Name() == name {
			return st, true
		}
	}
	return nil, false
}

// Names lists the strategy names in a fixed order.
func (s *Solver) Names() []string {
	out := make([]string, len(s.strategies))
	for i, st := range s.strategies {
		out[i] = st.Name()
	}
	return out
}

// WithPreviousGuess narrows the shared set with g's feedback and records g in
// every strategy. If the feedback is rejected nothing changes.
func (s *Solver) WithPreviousGuess(g strategy.Guess) error {
	before := s.set.Len()
	if err := s.set.Apply(g.Result); err != nil {
		return err
	}
	for _, st := range s.strategies {
		st.RecordGuess(g)
	}
	log.Debug().Str("word", g.Word).Int("before", before).Int("after", s.set.Len()).Msg("solver narrowed candidates")
	return nil
}

// GuessNextWord asks every strategy for its best word.
func (s *Solver) GuessNextWord() (map[string]strategy.Scored, error) {
	if !s.set.HasSolution() {
		return nil, fmt.Errorf("%w: candidate set is empty", solvererr.ErrNoMoreGuesses)
	}
	out := make(map[string]strategy.Scored, len(s.strategies))
	for _, st := range s.strategies {
		best, err := st.GuessNextWordAndScore()
		if err != nil {
			return nil, err
		}
		out[st.Name()] = best
	}
	names := maps.Keys(out)
	slices.Sort(names)
	log.Debug().Strs("strategies", names).Int("candidates", s.set.Len()).Msg("next guesses computed")
	return out, nil
}

// IsSolved reports whether any strategy sees exactly one candidate.
func (s *Solver) IsSolved() bool {
	for _, st := range s.strategies {
		if st.IsSolved() {
			return true
		}
	}
	return false
}

// HasSolution reports whether every strategy still has a candidate.
func (s *Solver) HasSolution() bool {
	for _, st := range s.strategies {
		if !st.HasSolution() {
			return false
		}
	}
	return true
}
