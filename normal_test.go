// -*- tab-width:2 -*-
package dist

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"
)

func TestNormalConstruction(t *testing.T) {
	if _, err := NewNormal(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("sigma=0 should be out of range, got %v", err)
	}

	d := NewStandardNormal()
	if d.Mean() != 0 || d.StdDev() != 1 {
		t.Errorf("standard normal is (%g, %g)", d.Mean(), d.StdDev())
	}
}

func TestNormalComplement(t *testing.T) {
	d, err := NewNormal(2, 1.5)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	for _, x := range []float64{-10, -1, 0, 2, 3.5, 20} {
		sum := d.LeftProbability(x) + d.RightProbability(x)
		if !almost(sum, 1, 1e-12) {
			t.Errorf("x=%g: left+right = %g, want 1", x, sum)
		}
	}
}

func TestNormalQuantiles(t *testing.T) {
	d, err := NewNormal(-1, 0.5)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	for _, p := range []float64{0.001, 0.25, 0.5, 0.75, 0.999} {
		x, err := d.InverseLeftProbability(p)
		if err != nil {
			t.Fatalf("quantile(%g) failed: %v", p, err)
		}

		if got := d.LeftProbability(x); !almost(got, p, 1e-9) {
			t.Errorf("leftProbability(quantile(%g)) = %g", p, got)
		}

		y, err := d.InverseRightProbability(p)
		if err != nil {
			t.Fatalf("inverse survival(%g) failed: %v", p, err)
		}

		if got := d.RightProbability(y); !almost(got, p, 1e-9) {
			t.Errorf("rightProbability(inverse survival(%g)) = %g", p, got)
		}
	}

	if _, err := d.InverseLeftProbability(1.5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("quantile(1.5) should be out of range, got %v", err)
	}
}

func TestNormalMoments(t *testing.T) {
	d, err := NewNormal(1.5, 2)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	// E[X] = mu, E[X^2] = mu^2 + sigma^2, E[X^3] = mu^3 + 3 mu sigma^2.
	wants := []float64{1, 1.5, 6.25, 21.375}
	for n, want := range wants {
		got, err := d.Moment(n)
		if err != nil {
			t.Fatalf("moment(%d) failed: %v", n, err)
		}

		if !almost(got, want, 1e-12) {
			t.Errorf("moment(%d) = %g, want %g", n, got, want)
		}
	}

	if _, err := d.Moment(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("moment(-1) should be out of range, got %v", err)
	}

	if d.Variance() != 4 || d.Skewness() != 0 || d.Median() != 1.5 {
		t.Errorf("variance %g skewness %g median %g",
			d.Variance(), d.Skewness(), d.Median())
	}
}

func TestNormalSetParameters(t *testing.T) {
	d := NewStandardNormal()

	if err := d.SetParameters(nil); !errors.Is(err, ErrNullArgument) {
		t.Errorf("nil parameters should be a null-argument error, got %v", err)
	}

	if err := d.SetParameters([]float64{1}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("1 parameter should be a dimension mismatch, got %v", err)
	}

	if err := d.SetParameters([]float64{1, -0.5}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative sigma should be out of range, got %v", err)
	}

	if err := d.SetParameters([]float64{5, 2}); err != nil {
		t.Fatalf("setParameters failed: %v", err)
	}

	if got := d.LeftProbability(5); !almost(got, 0.5, 1e-12) {
		t.Errorf("leftProbability(5) = %g after reset, want 0.5", got)
	}
}

func TestNormalRand(t *testing.T) {
	d, err := NewNormal(10, 3)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	if _, err := d.Rand(nil); !errors.Is(err, ErrNullArgument) {
		t.Errorf("nil source should be a null-argument error, got %v", err)
	}

	src := rand.NewSource(3)
	n := 20_000
	sum := 0.0

	for i := 0; i < n; i++ {
		x, err := d.Rand(src)
		if err != nil {
			t.Fatalf("rand failed: %v", err)
		}

		sum += x
	}

	if got := sum / float64(n); !almost(got, 10, 0.1) {
		t.Errorf("sample mean %g too far from 10", got)
	}

	if !d.Support().Contains(-1e300) || !d.Support().Contains(1e300) {
		t.Errorf("normal support should contain everything finite")
	}
}
