package canvas

import (
	"workbench/internal/config"
	"workbench/internal/models"
)

// DetectCollision reports whether a candidate placement overlaps any
// existing widget, with a buffer margin on all sides. The signal is
// advisory: callers may still place overlapping widgets.
func DetectCollision(candidate models.Geometry, widgets []models.Widget) bool {
	return DetectCollisionBuffer(candidate, widgets, config.CollisionBuffer)
}

// DetectCollisionBuffer is DetectCollision with an explicit buffer margin.
func DetectCollisionBuffer(candidate models.Geometry, widgets []models.Widget, buffer int) bool {
	for _, w := range widgets {
		g := w.Geometry
		if candidate.X < g.X+g.Width+buffer &&
			candidate.X+candidate.Width+buffer > g.X &&
			candidate.Y < g.Y+g.Height+buffer &&
			candidate.Y+candidate.Height+buffer > g.Y {
			return true
		}
	}
	return false
}
