// Package timeline implements the panned viewport over a fixed strip of
// calendar day-cells. The viewport owns a signed horizontal pixel offset
// that every operation leaves clamped inside the scrollable range.
package timeline

import (
	"time"

	"workbench/internal/config"
	"workbench/internal/models"
)

// Viewport positions a contiguous run of day-cells inside a window of a
// given pixel width. Offset 0 pins the first cell to the left edge; panning
// left drives the offset negative.
type Viewport struct {
	dates         []time.Time
	today         time.Time
	cellWidth     float64
	offsetX       float64
	viewportWidth float64
	searchTarget  *time.Time
}

// New builds the default date window around today and centers today's cell.
func New(today time.Time, viewportWidth int) *Viewport {
	v := &Viewport{
		today:         models.DayOf(today),
		viewportWidth: float64(viewportWidth),
	}
	start := v.today.AddDate(0, 0, -config.TimelineLookbehind)
	v.dates = make([]time.Time, 0, config.TimelineDays)
	for i := 0; i < config.TimelineDays; i++ {
		v.dates = append(v.dates, start.AddDate(0, 0, i))
	}
	v.cellWidth = ComputeCellWidth(viewportWidth)
	v.ScrollToDate(v.today)
	return v
}

// ComputeCellWidth derives the responsive day-cell width from the window
// width, capped at the maximum.
func ComputeCellWidth(viewportWidth int) float64 {
	w := float64(viewportWidth) * config.CellWidthRatio
	if w > config.MaxCellWidth {
		return config.MaxCellWidth
	}
	return w
}

func (v *Viewport) Dates() []time.Time { return v.dates }
func (v *Viewport) CellWidth() float64 { return v.cellWidth }
func (v *Viewport) OffsetX() float64   { return v.offsetX }
func (v *Viewport) Today() time.Time   { return v.today }

// IndexOf returns the day-cell index holding the given date's calendar day,
// or -1 when the date falls outside the generated range.
func (v *Viewport) IndexOf(date time.Time) int {
	for i, d := range v.dates {
		if models.SameDay(d, date) {
			return i
		}
	}
	return -1
}

// PanBy shifts the strip by a pointer drag delta and clamps. Wheel input
// uses the inverted sign: scrolling right moves content left.
func (v *Viewport) PanBy(delta float64) {
	v.offsetX = v.clampOffset(v.offsetX + delta)
}

// ScrollToDate centers the cell holding the given calendar day and reports
// whether the date was inside the range. Out-of-range dates leave the
// offset unchanged.
func (v *Viewport) ScrollToDate(date time.Time) bool {
	idx := v.IndexOf(date)
	if idx < 0 {
		return false
	}
	v.offsetX = v.clampOffset(v.centerOffset(idx))
	return true
}

// SetSearchTarget remembers the day a search landed on so resizes re-center
// on it. A nil target falls back to today.
func (v *Viewport) SetSearchTarget(date *time.Time) {
	if date == nil {
		v.searchTarget = nil
		return
	}
	day := models.DayOf(*date)
	v.searchTarget = &day
}

// OnResize recomputes the responsive cell width for a new window width and
// re-centers on the active search target, or today when there is none.
func (v *Viewport) OnResize(viewportWidth int) {
	v.viewportWidth = float64(viewportWidth)
	v.cellWidth = ComputeCellWidth(viewportWidth)
	if v.searchTarget != nil && v.ScrollToDate(*v.searchTarget) {
		return
	}
	v.ScrollToDate(v.today)
}

// CellOrigin returns the screen x of a day-cell's left edge at the current
// offset.
func (v *Viewport) CellOrigin(idx int) float64 {
	return v.offsetX + float64(idx)*v.cellWidth
}

// VisibleCells returns the half-open index range of cells intersecting the
// window.
func (v *Viewport) VisibleCells() (int, int) {
	if v.cellWidth <= 0 || len(v.dates) == 0 {
		return 0, 0
	}
	first := int(-v.offsetX / v.cellWidth)
	if first < 0 {
		first = 0
	}
	last := int((-v.offsetX+v.viewportWidth)/v.cellWidth) + 1
	if last > len(v.dates) {
		last = len(v.dates)
	}
	if first > last {
		first = last
	}
	return first, last
}

func (v *Viewport) centerOffset(idx int) float64 {
	return -(float64(idx) * v.cellWidth) + v.viewportWidth/2 - v.cellWidth/2
}

func (v *Viewport) clampOffset(x float64) float64 {
	min := -(float64(len(v.dates))*v.cellWidth - v.viewportWidth)
	if min > 0 {
		min = 0
	}
	if x < min {
		return min
	}
	if x > 0 {
		return 0
	}
	return x
}
