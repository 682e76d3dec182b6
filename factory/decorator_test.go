package factory_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-leo/enemy-factory/factory"
)

func TestChain(t *testing.T) {
	var trace []string
	record := func(name string) factory.Decorator[int] {
		return factory.DecoratorFunc[int](func(f factory.Factory[int]) factory.Factory[int] {
			return factory.Func[int](func() int {
				trace = append(trace, name+" before")
				v := f.Create()
				trace = append(trace, name+" after")
				return v
			})
		})
	}
	f := factory.Chain[int](constant(7), record("outer"), record("inner"))
	assert.Equal(t, 7, f.Create())
	assert.Equal(t, []string{"outer before", "inner before", "inner after", "outer after"}, trace)
}

func TestChainNoDecorators(t *testing.T) {
	f := factory.Chain[int](constant(7))
	assert.Equal(t, 7, f.Create())
}

func TestCounter(t *testing.T) {
	counter := factory.NewCounter(func(s string) int { return len(s) })
	values := []string{"Boo", "Koopa", "Goomba", "Boo", "Boo"}
	var i int
	f := factory.Chain[string](factory.Func[string](func() string {
		v := values[i]
		i++
		return v
	}), counter)
	for range values {
		f.Create()
	}
	assert.Equal(t, 5, counter.Total())
	counts := counter.Counts()
	assert.Equal(t, map[int]int{3: 3, 5: 1, 6: 1}, counts)

	counts[3] = 100
	assert.Equal(t, 3, counter.Counts()[3])
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := factory.Chain[string](constant("Koopa"), factory.Logging(logger, func(s string) slog.Attr {
		return slog.String("kind", s)
	}))
	assert.Equal(t, "Koopa", f.Create())
	assert.Contains(t, buf.String(), "msg=created")
	assert.Contains(t, buf.String(), "kind=Koopa")
}

func TestLoggingDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	var calls int
	f := factory.Chain[string](constant("Goomba"), factory.Logging(logger, func(s string) slog.Attr {
		calls++
		return slog.String("kind", s)
	}))
	assert.Equal(t, "Goomba", f.Create())
	assert.Zero(t, calls)
	assert.Empty(t, buf.String())
}
