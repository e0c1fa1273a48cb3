// -*- tab-width:2 -*-

// Package dist provides parametric continuous probability
// distributions exposing density, cumulative probability, quantile,
// moment, and random-sampling operations
package dist

import (
	"sync"

	ll "github.com/jayalane/go-lll"
)

var (
	ml     *ll.Lll
	mlOnce sync.Once
)

// Init must be called before using anything that logs (the Sampler)
// it merely inits the logger.
func Init() {
	mlOnce.Do(func() {
		ml = ll.Init("DIST", "none")
	})
}

// InitWithLogger is an init where you can
// pass in the go-lll logger.
func InitWithLogger(lg *ll.Lll) {
	mlOnce.Do(func() {
		ml = lg
	})
}
