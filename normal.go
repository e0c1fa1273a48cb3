// -*- tab-width:2 -*-

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	_ Continuous    = (*Normal)(nil)
	_ Parameterized = (*Normal)(nil)
)

// Normal is a normal (Gaussian) distribution with mean mu and
// standard deviation sigma. The error-function math lives in gonum's
// distuv; this type adds the validated, error-returning contract and
// the inverse survival function.
type Normal struct {
	mu    float64
	sigma float64
	norm  distuv.Normal
}

// NewNormal returns a normal distribution with the given mean and
// standard deviation. sigma <= 0 is ErrOutOfRange.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if sigma <= 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "sigma must be positive, got %g", sigma)
	}

	return &Normal{
		mu:    mu,
		sigma: sigma,
		norm:  distuv.Normal{Mu: mu, Sigma: sigma},
	}, nil
}

// NewStandardNormal returns the normal distribution with mean 0 and
// standard deviation 1.
func NewStandardNormal() *Normal {
	n, _ := NewNormal(0, 1)
	return n
}

// Density returns the probability density at x.
func (d *Normal) Density(x float64) float64 {
	return d.norm.Prob(x)
}

// Likelihood is an alias for Density used by generic fitting code.
func (d *Normal) Likelihood(x float64) float64 {
	return d.Density(x)
}

// LeftProbability returns P(X <= x).
func (d *Normal) LeftProbability(x float64) float64 {
	return d.norm.CDF(x)
}

// RightProbability returns P(X > x).
func (d *Normal) RightProbability(x float64) float64 {
	return d.norm.Survival(x)
}

// InverseLeftProbability returns the x with P(X <= x) = p.
func (d *Normal) InverseLeftProbability(p float64) (float64, error) {
	if p < 0 || p > 1 {
		return 0, errors.Wrapf(ErrOutOfRange, "probability must be in [0, 1], got %g", p)
	}

	return d.norm.Quantile(p), nil
}

// InverseRightProbability returns the x with P(X > x) = q. The
// normal is symmetric about mu, so the inverse survival function is
// the quantile reflected through mu; that keeps precision for small
// q where 1-q would round.
func (d *Normal) InverseRightProbability(q float64) (float64, error) {
	if q < 0 || q > 1 {
		return 0, errors.Wrapf(ErrOutOfRange, "probability must be in [0, 1], got %g", q)
	}

	return 2*d.mu - d.norm.Quantile(q), nil
}

// Mean returns mu.
func (d *Normal) Mean() float64 {
	return d.mu
}

// Median returns mu.
func (d *Normal) Median() float64 {
	return d.mu
}

// StdDev returns sigma.
func (d *Normal) StdDev() float64 {
	return d.sigma
}

// Variance returns sigma squared.
func (d *Normal) Variance() float64 {
	return d.sigma * d.sigma
}

// Skewness returns 0.
func (d *Normal) Skewness() float64 {
	return 0
}

// Moment returns the nth moment about the origin, E[X^n], via the
// recurrence m_k = mu*m_{k-1} + (k-1)*sigma^2*m_{k-2}. n < 0 is
// ErrOutOfRange.
func (d *Normal) Moment(n int) (float64, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "moment order must be non-negative, got %d", n)
	}

	prev, cur := 1.0, d.mu
	if n == 0 {
		return prev, nil
	}

	s2 := d.sigma * d.sigma
	for k := 2; k <= n; k++ {
		prev, cur = cur, d.mu*cur+float64(k-1)*s2*prev
	}

	return cur, nil
}

// Support returns the whole real line, open at both ends.
func (d *Normal) Support() Interval {
	return Interval{Lower: math.Inf(-1), Upper: math.Inf(1)}
}

// Rand draws one variate using the supplied source. The caller owns
// the source; nil is ErrNullArgument.
func (d *Normal) Rand(src rand.Source) (float64, error) {
	if src == nil {
		return 0, errors.Wrap(ErrNullArgument, "a random source must be supplied")
	}

	n := d.norm
	n.Src = src

	return n.Rand(), nil
}

// GetParameters returns the ordered pair (mu, sigma).
func (d *Normal) GetParameters() []float64 {
	return []float64{d.mu, d.sigma}
}

// SetParameters replaces (mu, sigma) in bulk. A nil vector is
// ErrNullArgument, a length other than 2 is ErrDimensionMismatch,
// and a non-positive sigma is ErrOutOfRange. Nothing changes unless
// the whole vector validates.
func (d *Normal) SetParameters(params []float64) error {
	if params == nil {
		return errors.Wrap(ErrNullArgument, "a parameter vector must be supplied")
	}

	if len(params) != expectedParams {
		return errors.Wrapf(ErrDimensionMismatch, "want %d parameters, got %d", expectedParams, len(params))
	}

	if params[1] <= 0 {
		return errors.Wrapf(ErrOutOfRange, "sigma must be positive, got %g", params[1])
	}

	d.mu = params[0]
	d.sigma = params[1]
	d.norm = distuv.Normal{Mu: d.mu, Sigma: d.sigma}

	return nil
}
