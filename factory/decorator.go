package factory

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/exp/maps"
)

// Decorator wraps a Factory, doing something before or after each Create.
type Decorator[T any] interface {
	// Decorate wraps the underlying factory, adding some functionality.
	Decorate(f Factory[T]) Factory[T]
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any] func(f Factory[T]) Factory[T]

// Decorate calls d(f).
func (d DecoratorFunc[T]) Decorate(f Factory[T]) Factory[T] {
	return d(f)
}

// Chain decorates f with all decorators. The first decorator is the outermost.
func Chain[T any](f Factory[T], decorators ...Decorator[T]) Factory[T] {
	for i := len(decorators) - 1; i >= 0; i-- {
		f = decorators[i].Decorate(f)
	}
	return f
}

// Counter tallies the values produced by the factories it decorates, grouped by key.
type Counter[T any, K comparable] struct {
	key    func(T) K
	mu     sync.Mutex
	counts map[K]int
	total  int
}

var _ Decorator[int] = (*Counter[int, int])(nil)

func NewCounter[T any, K comparable](key func(T) K) *Counter[T, K] {
	return &Counter[T, K]{key: key, counts: make(map[K]int)}
}

func (c *Counter[T, K]) Decorate(f Factory[T]) Factory[T] {
	return Func[T](func() T {
		v := f.Create()
		k := c.key(v)
		c.mu.Lock()
		c.counts[k]++
		c.total++
		c.mu.Unlock()
		return v
	})
}

// Counts returns a snapshot of the tally.
func (c *Counter[T, K]) Counts() map[K]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.counts)
}

// Total returns the number of values counted.
func (c *Counter[T, K]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Logging logs every produced value at debug level. attr is only called when
// debug logging is enabled.
func Logging[T any](logger *slog.Logger, attr func(T) slog.Attr) Decorator[T] {
	return DecoratorFunc[T](func(f Factory[T]) Factory[T] {
		return Func[T](func() T {
			v := f.Create()
			if logger.Enabled(context.Background(), slog.LevelDebug) {
				logger.Debug("created", attr(v))
			}
			return v
		})
	})
}
