// -*- tab-width:2 -*-

// Package main samples a configured distribution and prints its
// closed-form moments next to the empirical ones.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"

	count "github.com/jayalane/go-counter"
	ll "github.com/jayalane/go-lll"
	dist "github.com/roeynissim/metanumerics"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

var percentiles = []float64{0.01, 0.05, 0.25, 0.50, 0.75, 0.95, 0.99}

func main() {
	var (
		name  = flag.String("dist", "lognormal", "distribution to sample: lognormal or normal")
		mu    = flag.Float64("mu", 0, "location parameter (of the logarithm for lognormal)")
		sigma = flag.Float64("sigma", 1, "scale parameter, must be > 0")
		n     = flag.Int("n", 100_000, "number of variates to draw")
		seed  = flag.Uint64("seed", 42, "random source seed")
	)

	flag.Parse()

	ll.SetWriter(os.Stdout)
	count.InitCounters()
	count.SetResolution(count.HighRes)
	dist.Init()

	d, err := makeDist(*name, *mu, *sigma)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sampler := dist.MakeSampler(&dist.SamplerConf{
		Name: *name,
		N:    *n,
		Dist: d,
		Src:  rand.NewSource(*seed),
	})

	xs, err := sampler.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sort.Float64s(xs)

	fmt.Printf("%s(mu=%g, sigma=%g), %d draws, support %s\n",
		*name, *mu, *sigma, *n, d.Support())
	fmt.Printf("closed form: mean %.6g  std dev %.6g\n",
		d.Mean(), math.Sqrt(d.Variance()))
	fmt.Printf("empirical:   mean %.6g  std dev %.6g\n",
		stat.Mean(xs, nil), stat.StdDev(xs, nil))

	for _, p := range percentiles {
		empirical := stat.Quantile(p, stat.Empirical, xs, nil)
		exact, err := d.InverseLeftProbability(p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("%5.0f%%ile  %.6g (exact %.6g)\n", p*100, empirical, exact)
	}

	count.LogCounters()
}

// makeDist builds the requested distribution.
func makeDist(name string, mu, sigma float64) (dist.Continuous, error) {
	switch name {
	case "lognormal":
		d, err := dist.NewLognormal(mu, sigma)
		if err != nil {
			return nil, err
		}

		return d, nil
	case "normal":
		d, err := dist.NewNormal(mu, sigma)
		if err != nil {
			return nil, err
		}

		return d, nil
	}

	return nil, fmt.Errorf("unknown distribution %q", name)
}
