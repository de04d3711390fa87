package deeppager

import (
	"math"
	"slices"
)

// lowerAnchor returns the i-th anchor of the descending chain below value.
//
// The chain uses the coarsest jump strictly smaller than value. The first
// anchor (i == 0) is value rounded down to that jump, the next ones step back
// by it. When the anchor would not clear floor, up to pad-i finer jumps
// ("margin") are tried instead.
func lowerAnchor(floor, value, i, pad int, jumpValues []int) int {
	k := slices.IndexFunc(jumpValues, func(jump int) bool {
		return jump < value
	})
	if k == -1 {
		k = len(jumpValues) - 1
	}

	anchorFor := func(jump int) int {
		if i == 0 {
			return roundDown(value, jump)
		}

		return value - jump
	}

	anchor := anchorFor(jumpValues[k])
	for margin := 1; anchor <= floor && margin <= pad-i && k+margin < len(jumpValues); margin++ {
		anchor = anchorFor(jumpValues[k+margin])
	}

	return anchor
}

// upperAnchor returns the next anchor above from, strictly below ceiling when
// possible.
//
// It starts with the finest jump keeping the anchor below ceiling and then
// moves to coarser jumps, at most budget times, while the anchor still stays
// below ceiling. If no jump fits, the result is >= ceiling.
func upperAnchor(from, ceiling, budget int, jumpValues []int) int {
	k := len(jumpValues) - 1
	for k >= 0 && roundUp(from, jumpValues[k]) >= ceiling {
		k--
	}
	if k == -1 {
		return roundUp(from, jumpValues[len(jumpValues)-1])
	}

	for step := 0; step < budget && k > 0 && roundUp(from, jumpValues[k-1]) < ceiling; step++ {
		k--
	}

	return roundUp(from, jumpValues[k])
}

// roundDown rounds value down to a multiple of jump.
func roundDown(value, jump int) int {
	return value / jump * jump
}

// roundUp returns the smallest multiple of jump strictly greater than value,
// or math.MaxInt if that multiple does not fit into an int.
func roundUp(value, jump int) int {
	q := value / jump
	if q >= math.MaxInt/jump {
		return math.MaxInt
	}

	return (q + 1) * jump
}
