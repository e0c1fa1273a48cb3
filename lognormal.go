// -*- tab-width:2 -*-

package dist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/combin"
)

var (
	_ Continuous    = (*Lognormal)(nil)
	_ Parameterized = (*Lognormal)(nil)
)

// Lognormal is the distribution of a variable whose natural
// logarithm is normal(mu, sigma). mu and sigma locate and scale the
// logarithm, not the variable itself. Cumulative, quantile, and
// sampling operations delegate to a composed Normal with the same
// parameters after a log/exp transform.
type Lognormal struct {
	mu    float64
	sigma float64
	norm  *Normal
}

// NewLognormal returns a log-normal distribution whose logarithm has
// mean mu and standard deviation sigma. sigma <= 0 is ErrOutOfRange.
func NewLognormal(mu, sigma float64) (*Lognormal, error) {
	norm, err := NewNormal(mu, sigma)
	if err != nil {
		return nil, err
	}

	return &Lognormal{mu: mu, sigma: sigma, norm: norm}, nil
}

// NewStandardLognormal returns the log-normal distribution with
// mu 0 and sigma 1.
func NewStandardLognormal() *Lognormal {
	d, _ := NewLognormal(0, 1)
	return d
}

// Density returns the probability density at x. The support is
// (0, +Inf), so x <= 0 yields 0.
func (d *Lognormal) Density(x float64) float64 {
	if x <= 0 {
		return 0
	}

	z := (math.Log(x) - d.mu) / d.sigma

	return math.Exp(-z*z/2) / (x * math.Sqrt(2*math.Pi) * d.sigma)
}

// Likelihood is an alias for Density used by generic fitting code.
func (d *Lognormal) Likelihood(x float64) float64 {
	return d.Density(x)
}

// Mean returns exp(mu + sigma^2/2).
func (d *Lognormal) Mean() float64 {
	return math.Exp(d.mu + d.sigma*d.sigma/2)
}

// Median returns exp(mu).
func (d *Lognormal) Median() float64 {
	return math.Exp(d.mu)
}

// Variance returns (exp(sigma^2) - 1) * exp(2*mu + sigma^2). Expm1
// keeps the first factor from cancelling to zero for small sigma.
func (d *Lognormal) Variance() float64 {
	s2 := d.sigma * d.sigma
	return math.Expm1(s2) * math.Exp(2*d.mu+s2)
}

// StdDev returns the square root of the variance.
func (d *Lognormal) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns sqrt(exp(sigma^2) - 1) * (exp(sigma^2) + 2).
func (d *Lognormal) Skewness() float64 {
	s2 := d.sigma * d.sigma
	return math.Sqrt(math.Expm1(s2)) * (math.Exp(s2) + 2)
}

// Moment returns the nth moment about the origin,
// exp(n*mu + (n*sigma)^2/2). n < 0 is ErrOutOfRange.
func (d *Lognormal) Moment(n int) (float64, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "moment order must be non-negative, got %d", n)
	}

	ns := float64(n) * d.sigma

	return math.Exp(float64(n)*d.mu + ns*ns/2), nil
}

// CentralMoment returns the nth moment about the mean, E[(X-mean)^n].
// n < 0 is ErrOutOfRange. For n >= 3 it expands (X-mean)^n in raw
// moments:
//
//	exp(n*mu) * sum_{i=0..n} (-1)^i * C(n,i) * exp(((n-i)^2+i) * sigma^2/2)
//
// The terms alternate in sign with comparable magnitudes, so the sum
// loses precision for large n or large sigma.
func (d *Lognormal) CentralMoment(n int) (float64, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "moment order must be non-negative, got %d", n)
	}

	switch n {
	case 0:
		return 1, nil
	case 1:
		return 0, nil
	case 2:
		return d.Variance(), nil
	}

	s2 := d.sigma * d.sigma
	sum := 0.0

	for i := 0; i <= n; i++ {
		k := float64(n - i)
		term := float64(combin.Binomial(n, i)) *
			math.Exp((k*k+float64(i))*s2/2)

		if i%2 == 1 {
			sum -= term
		} else {
			sum += term
		}
	}

	return math.Exp(float64(n)*d.mu) * sum, nil
}

// LeftProbability returns P(X <= x): 0 for x <= 0, else the normal
// CDF at ln(x).
func (d *Lognormal) LeftProbability(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return d.norm.LeftProbability(math.Log(x))
}

// RightProbability returns P(X > x): 1 for x <= 0, else the normal
// survival function at ln(x).
func (d *Lognormal) RightProbability(x float64) float64 {
	if x <= 0 {
		return 1
	}

	return d.norm.RightProbability(math.Log(x))
}

// InverseLeftProbability returns the x with P(X <= x) = p, the
// exponential of the normal quantile. p outside [0, 1] is
// ErrOutOfRange; p of 0 and 1 map to 0 and +Inf.
func (d *Lognormal) InverseLeftProbability(p float64) (float64, error) {
	z, err := d.norm.InverseLeftProbability(p)
	if err != nil {
		return 0, err
	}

	return math.Exp(z), nil
}

// InverseRightProbability returns the x with P(X > x) = q, the
// exponential of the normal inverse survival function.
func (d *Lognormal) InverseRightProbability(q float64) (float64, error) {
	z, err := d.norm.InverseRightProbability(q)
	if err != nil {
		return 0, err
	}

	return math.Exp(z), nil
}

// Support returns [0, +Inf).
func (d *Lognormal) Support() Interval {
	return Interval{Lower: 0, Upper: math.Inf(1), LowerClosed: true}
}

// Rand draws one variate: the exponential of a normal(mu, sigma)
// draw taken from the supplied source. The caller owns the source;
// nil is ErrNullArgument.
func (d *Lognormal) Rand(src rand.Source) (float64, error) {
	z, err := d.norm.Rand(src)
	if err != nil {
		return 0, err
	}

	return math.Exp(z), nil
}

// GetParameters returns the ordered pair (mu, sigma).
func (d *Lognormal) GetParameters() []float64 {
	return []float64{d.mu, d.sigma}
}

// SetParameters replaces (mu, sigma) in bulk and rebuilds the normal
// delegate so later queries stay consistent. A nil vector is
// ErrNullArgument, a length other than 2 is ErrDimensionMismatch,
// and a non-positive sigma is ErrOutOfRange. Nothing changes unless
// the whole vector validates.
func (d *Lognormal) SetParameters(params []float64) error {
	if params == nil {
		return errors.Wrap(ErrNullArgument, "a parameter vector must be supplied")
	}

	if len(params) != expectedParams {
		return errors.Wrapf(ErrDimensionMismatch, "want %d parameters, got %d", expectedParams, len(params))
	}

	norm, err := NewNormal(params[0], params[1])
	if err != nil {
		return err
	}

	d.mu = params[0]
	d.sigma = params[1]
	d.norm = norm

	return nil
}
