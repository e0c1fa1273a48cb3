// -*- tab-width:2 -*-

package dist

import (
	"github.com/pkg/errors"
)

// Error kinds reported by the distributions. All validation happens
// at the call boundary before any state mutation or computation;
// callers match kinds with errors.Is.
var (
	// ErrOutOfRange is a numeric argument outside its domain: a
	// non-positive sigma, a negative moment order, a probability
	// outside [0, 1].
	ErrOutOfRange = errors.New("argument out of range")

	// ErrNullArgument is a missing required argument: a nil random
	// source or a nil parameter vector.
	ErrNullArgument = errors.New("required argument is missing")

	// ErrDimensionMismatch is a parameter vector of the wrong length.
	ErrDimensionMismatch = errors.New("parameter dimension mismatch")
)
