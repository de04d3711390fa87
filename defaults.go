package deeppager

import (
	"math"
	"slices"
)

const (
	// DefaultPad is the number of pages shown on each side of the current page.
	DefaultPad = 2
	// DefaultGap is the symbol of omitted pages.
	DefaultGap = "…"
)

var _defaultJumpValues = []int{50000, 25000, 10000, 5000, 1000, 500, 250, 100, 50, 25, 10, 5, 1}

// DefaultJumpValues returns a copy of the default jump table. Entries are
// positive and strictly descending.
func DefaultJumpValues() []int {
	return slices.Clone(_defaultJumpValues)
}

// MinPagesForComplex returns the page count starting from which the sequence
// is no longer rendered in full. Saturates at math.MaxInt.
func MinPagesForComplex(pad int) int {
	if pad > (math.MaxInt-7)/4 {
		return math.MaxInt
	}

	return 7 + pad*4
}
