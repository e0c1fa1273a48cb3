// -*- tab-width:2 -*-

package dist

import (
	"fmt"
)

// Interval describes the support of a distribution: the range of
// values with non-zero probability density. Each endpoint may be
// open or closed.
type Interval struct {
	Lower       float64
	Upper       float64
	LowerClosed bool
	UpperClosed bool
}

// Contains reports whether x lies inside the interval.
func (iv Interval) Contains(x float64) bool {
	if x < iv.Lower || (x == iv.Lower && !iv.LowerClosed) {
		return false
	}

	if x > iv.Upper || (x == iv.Upper && !iv.UpperClosed) {
		return false
	}

	return true
}

// String renders the interval in the usual bracket notation.
func (iv Interval) String() string {
	left, right := "(", ")"
	if iv.LowerClosed {
		left = "["
	}

	if iv.UpperClosed {
		right = "]"
	}

	return fmt.Sprintf("%s%g, %g%s", left, iv.Lower, iv.Upper, right)
}
