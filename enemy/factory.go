package enemy

import (
	"github.com/go-leo/enemy-factory/factory"
)

// Factory creates enemies.
type Factory = factory.Factory[Enemy]

// NewBasicFactory creates enemies with evenly distributed probabilities between Boo,
// Koopa and Goomba: draws in [0, 1/3) give a Boo, [1/3, 2/3) a Koopa and [2/3, 1) a Goomba.
func NewBasicFactory(opts ...factory.Option) *factory.Uniform[Enemy] {
	f, err := factory.NewUniform([]factory.Func[Enemy]{NewBoo, NewKoopa, NewGoomba}, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewSpecificFactory creates enemies with probabilities proportional to the entry weights.
func NewSpecificFactory(entries []factory.Entry[Enemy], opts ...factory.Option) (*factory.Weighted[Enemy], error) {
	return factory.NewWeighted(entries, opts...)
}

// Ratio is the relative weight of an enemy kind.
type Ratio struct {
	Kind   Kind
	Weight float64
}

// NewRatioFactory is NewSpecificFactory keyed by kind instead of constructor.
func NewRatioFactory(ratios []Ratio, opts ...factory.Option) (*factory.Weighted[Enemy], error) {
	entries := make([]factory.Entry[Enemy], 0, len(ratios))
	for _, ratio := range ratios {
		produce, err := Constructor(ratio.Kind)
		if err != nil {
			return nil, err
		}
		entries = append(entries, factory.Entry[Enemy]{Produce: produce, Weight: ratio.Weight})
	}
	return NewSpecificFactory(entries, opts...)
}

// DefaultRatios are Boo:1, Goomba:2, Koopa:2.
func DefaultRatios() []Ratio {
	return []Ratio{
		{Kind: KindBoo, Weight: 1},
		{Kind: KindGoomba, Weight: 2},
		{Kind: KindKoopa, Weight: 2},
	}
}

// KindOf is the key function for counting enemies by kind.
func KindOf(e Enemy) Kind {
	return e.Kind()
}
