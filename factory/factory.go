package factory

// Factory creates values of type T.
type Factory[T any] interface {
	// Create returns a freshly constructed value.
	Create() T
}

// The Func type is an adapter to allow the use of ordinary functions as Factory.
// If f is a function with the appropriate signature, Func(f) is a Factory that calls f.
type Func[T any] func() T

// Create calls f().
func (f Func[T]) Create() T {
	return f()
}
