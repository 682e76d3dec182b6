package factory

import (
	"log/slog"
	"math"
	"sort"

	"golang.org/x/exp/slices"
)

// Entry pairs a constructor with its relative weight.
type Entry[T any] struct {
	Produce Func[T]
	Weight  float64
}

// Weighted creates values by choosing a constructor with probability proportional to its weight.
//
// The cumulative distribution is computed once by NewWeighted. cumulative[i] is
// the sum of the normalized weights of entries 0..i, and the last value is exactly 1,
// so a draw r in [0, 1) always lands in the bin of the first entry with r < cumulative[i].
type Weighted[T any] struct {
	constructors  []Func[T]
	probabilities []float64
	cumulative    []float64
	source        Source
}

var _ Factory[int] = (*Weighted[int])(nil)

// NewWeighted returns a Weighted over entries. Weights are relative and need not sum to 1.
// It returns a *ConfigurationError if entries is empty, a constructor is nil, or
// a weight is not a positive finite number.
func NewWeighted[T any](entries []Entry[T], opts ...Option) (*Weighted[T], error) {
	o := new(options).apply(opts...).correct()
	if len(entries) == 0 {
		return nil, newEmptyError()
	}
	var total float64
	for i, entry := range entries {
		if entry.Produce == nil {
			return nil, newNilConstructorError(i)
		}
		switch {
		case math.IsNaN(entry.Weight), math.IsInf(entry.Weight, 0):
			return nil, newNonFiniteWeightError(i, entry.Weight)
		case entry.Weight <= 0:
			return nil, newNonPositiveWeightError(i, entry.Weight)
		}
		total += entry.Weight
		if math.IsInf(total, 0) {
			return nil, newOverflowError(i, entry.Weight)
		}
	}

	f := &Weighted[T]{
		constructors:  make([]Func[T], len(entries)),
		probabilities: make([]float64, len(entries)),
		cumulative:    make([]float64, len(entries)),
		source:        o.Source,
	}
	var acc float64
	for i, entry := range entries {
		p := entry.Weight / total
		acc += p
		f.constructors[i] = entry.Produce
		f.probabilities[i] = p
		f.cumulative[i] = acc
	}
	// rounding may leave the sum a few ulps away from 1
	f.cumulative[len(f.cumulative)-1] = 1

	o.Logger.Debug("weighted factory configured",
		slog.Int("entries", len(entries)),
		slog.Float64("total", total),
		slog.Any("probabilities", f.probabilities),
	)
	return f, nil
}

// Create draws one value from the source and returns the product of the selected entry.
func (f *Weighted[T]) Create() T {
	return f.Pick(f.source.Float64())
}

// Pick returns the product of the first entry whose cumulative probability exceeds r.
// r <= 0 selects the first entry and r >= 1 selects the last one.
func (f *Weighted[T]) Pick(r float64) T {
	return f.constructors[f.index(r)]()
}

func (f *Weighted[T]) index(r float64) int {
	if math.IsNaN(r) {
		return 0
	}
	i := sort.Search(len(f.cumulative), func(i int) bool {
		return r < f.cumulative[i]
	})
	if i == len(f.cumulative) {
		return i - 1
	}
	return i
}

// Probabilities returns the normalized weights in entry order.
func (f *Weighted[T]) Probabilities() []float64 {
	return slices.Clone(f.probabilities)
}

// Len returns the number of entries.
func (f *Weighted[T]) Len() int {
	return len(f.constructors)
}
