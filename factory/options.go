package factory

import (
	"log/slog"
	"math/rand"

	"github.com/go-leo/gox/mathx/randx"
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// The SourceFunc type is an adapter to allow the use of ordinary functions as Source.
type SourceFunc func() float64

// Float64 calls f().
func (f SourceFunc) Float64() float64 {
	return f()
}

type options struct {
	Source Source
	Logger *slog.Logger
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) correct() *options {
	if o.Source == nil {
		o.Source = SourceFunc(randx.Float64)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

type Option func(o *options)

// WithSource draws from src instead of the shared process generator.
// src must be safe for concurrent use if the factory is shared between goroutines.
func WithSource(src Source) Option {
	return func(o *options) {
		o.Source = src
	}
}

// Seed draws from a private generator seeded with seed, so that two factories
// with the same configuration and seed produce the same sequence.
// The generator is safe for concurrent use.
func Seed(seed uint64) Option {
	return func(o *options) {
		o.Source = rand.New(randx.NewSyncSource(int64(seed)))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}
