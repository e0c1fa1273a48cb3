// -*- tab-width:2 -*-

// Package dist provides parametric continuous probability
// distributions exposing density, cumulative probability, quantile,
// moment, and random-sampling operations
package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// Both distributions here are two-parameter families.
const expectedParams = 2

// Continuous is the operation contract shared by the continuous
// distributions here. Implementations are logically immutable after
// construction except for explicit parameter replacement, so
// concurrent reads are safe; the caller serializes parameter
// replacement against reads.
type Continuous interface {
	// Density returns the probability density at x.
	Density(x float64) float64

	// LeftProbability returns P(X <= x), the CDF at x.
	LeftProbability(x float64) float64

	// RightProbability returns P(X > x), the survival function at x.
	RightProbability(x float64) float64

	// InverseLeftProbability returns the x with LeftProbability(x) = p.
	// p outside [0, 1] is ErrOutOfRange.
	InverseLeftProbability(p float64) (float64, error)

	// InverseRightProbability returns the x with RightProbability(x) = q.
	// q outside [0, 1] is ErrOutOfRange.
	InverseRightProbability(q float64) (float64, error)

	// Mean returns the first moment about the origin.
	Mean() float64

	// Variance returns the second moment about the mean.
	Variance() float64

	// Support returns the interval of non-zero density.
	Support() Interval

	// Rand draws one variate using the supplied source. The caller
	// owns the source; a nil source is ErrNullArgument.
	Rand(src rand.Source) (float64, error)
}

// Parameterized is the capability generic fitting and estimation
// code needs: a flat parameter vector and a likelihood. Any
// distribution implementing it can be driven by such code without
// knowledge of the concrete type.
type Parameterized interface {
	// GetParameters returns the ordered parameter vector.
	GetParameters() []float64

	// SetParameters replaces the whole parameter vector, rebuilding
	// any internal state so later queries stay consistent.
	SetParameters(params []float64) error

	// Likelihood returns the likelihood of observing x, an alias for
	// the density.
	Likelihood(x float64) float64
}

// LogLikelihood sums the log likelihood of the observations xs under
// d. Observations outside the support contribute -Inf.
func LogLikelihood(d Parameterized, xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += math.Log(d.Likelihood(x))
	}

	return sum
}
