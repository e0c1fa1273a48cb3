// -*- tab-width:2 -*-

// Package dist provides parametric continuous probability
// distributions exposing density, cumulative probability, quantile,
// moment, and random-sampling operations
package dist

import (
	count "github.com/jayalane/go-counter"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// SamplerConf configures a sampling run.
type SamplerConf struct {
	Name string
	N    int
	Dist Continuous
	Src  rand.Source
}

// Sampler draws variates from a distribution with a caller-owned
// random source, marking per-draw stats as it goes. Init and
// count.InitCounters must be called before Run.
type Sampler struct {
	name string
	n    int
	dist Continuous
	src  rand.Source
}

// MakeSampler turns a sampler configuration into the sampler.
func MakeSampler(conf *SamplerConf) *Sampler {
	return &Sampler{
		name: conf.Name,
		n:    conf.N,
		dist: conf.Dist,
		src:  conf.Src,
	}
}

// Run draws the configured number of variates and returns them.
func (s *Sampler) Run() ([]float64, error) {
	if s.dist == nil {
		return nil, errors.Wrap(ErrNullArgument, "a distribution must be supplied")
	}

	if s.src == nil {
		return nil, errors.Wrap(ErrNullArgument, "a random source must be supplied")
	}

	xs := make([]float64, 0, s.n)

	for i := 0; i < s.n; i++ {
		x, err := s.dist.Rand(s.src)
		if err != nil {
			return nil, err
		}

		count.Incr("sampler_draws")
		count.MarkDistribution(s.name, x)

		xs = append(xs, x)
	}

	ml.La(s.name+": drew", s.n, "variates")

	return xs, nil
}
