// Package canvas implements the layout design surface: a session owning the
// placed widgets, grid snapping, and the drag/resize/rotate gesture state
// machine that mutates widget geometry from pointer input.
package canvas

import (
	"math"

	"workbench/internal/config"
)

// Snap rounds a continuous value to the nearest multiple of the grid unit.
func Snap(v float64) int {
	return SnapTo(v, config.GridSnap)
}

// SnapTo rounds v to the nearest multiple of unit.
func SnapTo(v float64, unit int) int {
	if unit <= 0 {
		return int(math.Round(v))
	}
	return int(math.Round(v/float64(unit))) * unit
}

// SnapAngle rounds a rotation to the nearest rotation increment and
// normalizes it into [0,360).
func SnapAngle(deg float64) int {
	a := SnapTo(deg, config.RotationSnap) % 360
	if a < 0 {
		a += 360
	}
	return a
}
