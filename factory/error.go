package factory

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("factory: invalid configuration")

type Code int

const (
	EmptyConfiguration Code = iota + 1
	NilConstructor
	NonPositiveWeight
	NonFiniteWeight
	WeightOverflow
)

// ConfigurationError reports a factory configuration that can never produce a value
// with the requested distribution.
type ConfigurationError struct {
	Code   Code
	Index  int
	Weight float64
}

func (e *ConfigurationError) Error() string {
	switch e.Code {
	case EmptyConfiguration:
		return "factory: configuration error, no constructors"
	case NilConstructor:
		return fmt.Sprintf("factory: configuration error, entry(%d) has a nil constructor", e.Index)
	case NonPositiveWeight:
		return fmt.Sprintf("factory: configuration error, entry(%d) weight(%g) is not positive", e.Index, e.Weight)
	case NonFiniteWeight:
		return fmt.Sprintf("factory: configuration error, entry(%d) weight(%g) is not finite", e.Index, e.Weight)
	case WeightOverflow:
		return fmt.Sprintf("factory: configuration error, total weight overflows at entry(%d)", e.Index)
	default:
		return ErrConfiguration.Error()
	}
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func newEmptyError() error {
	return &ConfigurationError{Code: EmptyConfiguration, Index: -1}
}

func newNilConstructorError(index int) error {
	return &ConfigurationError{Code: NilConstructor, Index: index}
}

func newNonPositiveWeightError(index int, weight float64) error {
	return &ConfigurationError{Code: NonPositiveWeight, Index: index, Weight: weight}
}

func newNonFiniteWeightError(index int, weight float64) error {
	return &ConfigurationError{Code: NonFiniteWeight, Index: index, Weight: weight}
}

func newOverflowError(index int, weight float64) error {
	return &ConfigurationError{Code: WeightOverflow, Index: index, Weight: weight}
}
