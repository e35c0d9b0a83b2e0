package canvas

import (
	"github.com/google/uuid"

	"workbench/internal/config"
	"workbench/internal/models"
)

// GestureKind identifies the single transform a pointer interaction can
// perform on the active widget.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureDrag
	GestureResize
	GestureRotate
)

// Gesture records the start state of a continuous pointer interaction.
// Geometry during the gesture is always computed from this snapshot plus the
// current pointer position, never accumulated.
type Gesture struct {
	Kind     GestureKind
	WidgetID string
	StartX   int // pointer, logical px
	StartY   int
	Start    models.Geometry
}

// Session owns the widget list and selection for one design surface.
// All operations are synchronous; out-of-range ids are no-ops.
type Session struct {
	widgets   []models.Widget
	selection string
	gesture   Gesture
	width     int
	height    int
}

// NewSession returns an empty session bounded by the default design surface.
func NewSession() *Session {
	return &Session{width: config.CanvasWidth, height: config.CanvasHeight}
}

// NewSessionWithBounds returns an empty session with explicit canvas bounds.
func NewSessionWithBounds(width, height int) *Session {
	return &Session{width: width, height: height}
}

func (s *Session) Bounds() (int, int)       { return s.width, s.height }
func (s *Session) Widgets() []models.Widget { return s.widgets }
func (s *Session) Selection() string        { return s.selection }
func (s *Session) ActiveGesture() Gesture   { return s.gesture }
func (s *Session) GestureActive() bool      { return s.gesture.Kind != GestureNone }

// SetLayout replaces the widget list, used when loading a saved tab or
// template into the designer. Selection and any gesture are discarded.
func (s *Session) SetLayout(widgets []models.Widget) {
	s.widgets = append([]models.Widget(nil), widgets...)
	s.selection = ""
	s.gesture = Gesture{}
}

// Find returns the widget with the given id.
func (s *Session) Find(id string) (models.Widget, bool) {
	if i := s.index(id); i >= 0 {
		return s.widgets[i], true
	}
	return models.Widget{}, false
}

// Selected returns the currently selected widget, if any.
func (s *Session) Selected() (models.Widget, bool) {
	if s.selection == "" {
		return models.Widget{}, false
	}
	return s.Find(s.selection)
}

// ResolveTarget follows a widget event's back-reference. A dangling
// TargetID resolves to nothing.
func (s *Session) ResolveTarget(ev models.Event) (models.Widget, bool) {
	if ev.TargetID == "" {
		return models.Widget{}, false
	}
	return s.Find(ev.TargetID)
}

// AddWidget appends a widget of the given type with its palette defaults,
// placed at a fixed x origin and one row pitch below the previous widget.
// The new widget becomes selected.
func (s *Session) AddWidget(t models.WidgetType) string {
	geom, props := Defaults(t)
	geom.X = config.NewWidgetOriginX
	geom.Y = len(s.widgets)*config.NewWidgetRowPitch + config.NewWidgetOriginY
	w := models.Widget{
		ID:       uuid.NewString(),
		Type:     t,
		Geometry: s.clampGeometry(geom),
		Props:    props,
	}
	s.widgets = append(s.widgets, w)
	s.selection = w.ID
	return w.ID
}

// SelectWidget sets the selection; the empty id clears it and cancels any
// gesture affordance.
func (s *Session) SelectWidget(id string) {
	if id == "" {
		s.selection = ""
		s.gesture = Gesture{}
		return
	}
	if s.index(id) >= 0 {
		s.selection = id
	}
}

// MoveWidget places a widget at a raw pointer-derived position, snapped to
// the grid and clamped into the canvas.
func (s *Session) MoveWidget(id string, rawX, rawY float64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	g := s.widgets[i].Geometry
	g.X = clamp(Snap(rawX), 0, s.width-g.Width)
	g.Y = clamp(Snap(rawY), 0, s.height-g.Height)
	s.widgets[i].Geometry = g
}

// ResizeWidget applies a raw resize result. All four values are snapped,
// size is floored at the type minimum, and the widget is kept inside the
// canvas by trimming the overflowing edge.
func (s *Session) ResizeWidget(id string, rawW, rawH, rawX, rawY float64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	g := s.widgets[i].Geometry
	minW, minH := MinSize(s.widgets[i].Type)
	g.X = clamp(Snap(rawX), 0, s.width)
	g.Y = clamp(Snap(rawY), 0, s.height)
	g.Width = Snap(rawW)
	g.Height = Snap(rawH)
	if g.Width < minW {
		g.Width = minW
	}
	if g.Height < minH {
		g.Height = minH
	}
	if g.X+g.Width > s.width {
		g.Width = s.width - g.X
		if g.Width < minW {
			g.Width = minW
			g.X = s.width - g.Width
		}
	}
	if g.Y+g.Height > s.height {
		g.Height = s.height - g.Y
		if g.Height < minH {
			g.Height = minH
			g.Y = s.height - g.Height
		}
	}
	s.widgets[i].Geometry = g
}

// RotateWidget snaps a raw rotation to the rotation increment.
func (s *Session) RotateWidget(id string, rawDeg float64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.widgets[i].Geometry.Rotation = SnapAngle(rawDeg)
}

// UpdateProps applies an in-place edit to a widget's property bag. Unknown
// ids are a no-op.
func (s *Session) UpdateProps(id string, fn func(*models.Properties)) {
	if i := s.index(id); i >= 0 {
		fn(&s.widgets[i].Props)
	}
}

// DeleteWidget removes a widget by id and clears the selection if the
// deleted widget held it. Deleting an unknown id is a no-op.
func (s *Session) DeleteWidget(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.widgets = append(s.widgets[:i], s.widgets[i+1:]...)
	if s.selection == id {
		s.selection = ""
	}
	if s.gesture.WidgetID == id {
		s.gesture = Gesture{}
	}
}

// WidgetAt returns the topmost widget containing the given point, ignoring
// rotation.
func (s *Session) WidgetAt(px, py int) (string, bool) {
	for i := len(s.widgets) - 1; i >= 0; i-- {
		g := s.widgets[i].Geometry
		if px >= g.X && px < g.X+g.Width && py >= g.Y && py < g.Y+g.Height {
			return s.widgets[i].ID, true
		}
	}
	return "", false
}

// BeginGesture starts a drag or resize on a widget, recording the pointer
// and geometry start state. It refuses to start while another gesture is in
// progress or for an unknown id.
func (s *Session) BeginGesture(kind GestureKind, id string, px, py int) bool {
	if kind == GestureNone || s.gesture.Kind != GestureNone {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.selection = id
	s.gesture = Gesture{
		Kind:     kind,
		WidgetID: id,
		StartX:   px,
		StartY:   py,
		Start:    s.widgets[i].Geometry,
	}
	return true
}

// UpdateGesture recomputes the active widget's geometry from the recorded
// start state and the current pointer position.
func (s *Session) UpdateGesture(px, py int) {
	g := s.gesture
	if g.Kind == GestureNone {
		return
	}
	dx := float64(px - g.StartX)
	dy := float64(py - g.StartY)
	switch g.Kind {
	case GestureDrag:
		s.MoveWidget(g.WidgetID, float64(g.Start.X)+dx, float64(g.Start.Y)+dy)
	case GestureResize:
		s.ResizeWidget(g.WidgetID,
			float64(g.Start.Width)+dx,
			float64(g.Start.Height)+dy,
			float64(g.Start.X),
			float64(g.Start.Y))
	case GestureRotate:
		s.RotateWidget(g.WidgetID, float64(g.Start.Rotation)+dx)
	}
}

// EndGesture finalizes the active gesture at the final pointer position and
// returns to the idle state. Geometry is already snapped by the mutation
// operations, so ending only releases the capture.
func (s *Session) EndGesture(px, py int) {
	if s.gesture.Kind == GestureNone {
		return
	}
	s.UpdateGesture(px, py)
	s.gesture = Gesture{}
}

// CancelGesture restores the start geometry and returns to idle.
func (s *Session) CancelGesture() {
	g := s.gesture
	if g.Kind == GestureNone {
		return
	}
	if i := s.index(g.WidgetID); i >= 0 {
		s.widgets[i].Geometry = g.Start
	}
	s.gesture = Gesture{}
}

func (s *Session) index(id string) int {
	for i := range s.widgets {
		if s.widgets[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) clampGeometry(g models.Geometry) models.Geometry {
	g.X = clamp(g.X, 0, max(0, s.width-g.Width))
	g.Y = clamp(g.Y, 0, max(0, s.height-g.Height))
	return g
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
