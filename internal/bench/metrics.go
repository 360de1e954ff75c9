// apps/go-solver/internal/bench/metrics.go
//
// Aggregation of simulated plays into per-strategy metrics.

package bench

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

type number interface {
	constraints.Integer | constraints.Float
}

func maxOf[T constraints.Ordered](xs []T) (m T) {
	for i, x := range xs {
		if i == 0 || x > m {
			m = x
		}
	}
	return m
}

func minOf[T constraints.Ordered](xs []T) (m T) {
	for i, x := range xs {
		if i == 0 || x < m {
			m = x
		}
	}
	return m
}

func mean[T number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// Metrics summarise one strategy over every answer.
type Metrics struct {
	Strategy string      `json:"strategy"`
	Opening  string      `json:"opening"`
	Games    int         `json:"games"`
	Solved   int         `json:"solved"`
	Best     int         `json:"best"`
	Worst    int         `json:"worst"`
	Average  float64     `json:"average"`
	NotInN   int         `json:"notInN"` // unsolved, or solved in more than the turn limit
	Hist     map[int]int `json:"histogram"`
	Hardest  []string    `json:"hardest"` // answers that needed Worst guesses
}

// Summarise computes metrics from a strategy's outcomes. limit is the N of
// "not in N". Best/Worst/Average cover solved games only.
func Summarise(name, opening string, outs []solver.Outcome, limit int) Metrics {
	m := Metrics{Strategy: name, Opening: opening, Games: len(outs), Hist: map[int]int{}}
	var turns []int
	for _, o := range outs {
		if !o.Solved {
			m.NotInN++
			continue
		}
		m.Solved++
		turns = append(turns, o.Turns())
		m.Hist[o.Turns()]++
		if o.Turns() > limit {
			m.NotInN++
		}
	}
	m.Best, m.Worst, m.Average = minOf(turns), maxOf(turns), mean(turns)
	for _, o := range outs {
		if o.Solved && o.Turns() == m.Worst {
			m.Hardest = append(m.Hardest, o.Answer)
		}
	}
	slices.Sort(m.Hardest)
	return m
}

// HistKeys returns the histogram's turn counts in ascending order.
func (m Metrics) HistKeys() []int {
	ks := maps.Keys(m.Hist)
	slices.Sort(ks)
	return ks
}
