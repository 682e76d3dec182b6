package factory

import (
	"log/slog"

	"golang.org/x/exp/slices"
)

// Uniform creates values by choosing one of its constructors with equal probability.
type Uniform[T any] struct {
	constructors []Func[T]
	source       Source
}

var _ Factory[int] = (*Uniform[int])(nil)

// NewUniform returns a Uniform over constructors. [0, 1) is split into
// len(constructors) bins of equal width, the i-th bin belonging to constructors[i].
func NewUniform[T any](constructors []Func[T], opts ...Option) (*Uniform[T], error) {
	o := new(options).apply(opts...).correct()
	if len(constructors) == 0 {
		return nil, newEmptyError()
	}
	for i, c := range constructors {
		if c == nil {
			return nil, newNilConstructorError(i)
		}
	}
	o.Logger.Debug("uniform factory configured", slog.Int("constructors", len(constructors)))
	return &Uniform[T]{constructors: slices.Clone(constructors), source: o.Source}, nil
}

// Create draws one value from the source and returns the product of the owning constructor.
func (f *Uniform[T]) Create() T {
	return f.Pick(f.source.Float64())
}

// Pick returns the product of the constructor owning r.
// Values outside [0, 1) are clamped to the first or last bin.
func (f *Uniform[T]) Pick(r float64) T {
	return f.constructors[f.index(r)]()
}

func (f *Uniform[T]) index(r float64) int {
	n := len(f.constructors)
	if !(r > 0) {
		return 0
	}
	if r >= 1 {
		return n - 1
	}
	i := int(r * float64(n))
	if i >= n {
		return n - 1
	}
	return i
}

// Len returns the number of constructors.
func (f *Uniform[T]) Len() int {
	return len(f.constructors)
}
