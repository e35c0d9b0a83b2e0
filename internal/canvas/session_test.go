package canvas

import (
	"testing"

	"workbench/internal/config"
	"workbench/internal/models"
)

func TestAddWidgetDefaults(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetText)
	if id == "" {
		t.Fatalf("AddWidget returned empty id")
	}
	if len(s.Widgets()) != 1 {
		t.Fatalf("widget count = %d, want 1", len(s.Widgets()))
	}
	w := s.Widgets()[0]
	if w.Geometry.Width != 200 || w.Geometry.Height != 40 {
		t.Fatalf("default text geometry = %dx%d, want 200x40", w.Geometry.Width, w.Geometry.Height)
	}
	if w.Geometry.X != config.NewWidgetOriginX || w.Geometry.Y != config.NewWidgetOriginY {
		t.Fatalf("placement = %d,%d, want origin offsets", w.Geometry.X, w.Geometry.Y)
	}
	if s.Selection() != id {
		t.Fatalf("new widget should be selected")
	}

	// Each subsequent widget lands one row pitch lower.
	id2 := s.AddWidget(models.WidgetButton)
	w2, _ := s.Find(id2)
	if w2.Geometry.Y != config.NewWidgetRowPitch+config.NewWidgetOriginY {
		t.Fatalf("second widget y = %d", w2.Geometry.Y)
	}
}

func TestMoveWidgetStaysInBounds(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetInput) // 200x40

	moves := [][2]float64{
		{-500, -500},
		{12345, 9999},
		{795, 3},
		{401.4, 299.9},
		{0, 0},
	}
	for _, mv := range moves {
		s.MoveWidget(id, mv[0], mv[1])
		w, _ := s.Find(id)
		g := w.Geometry
		if g.X < 0 || g.Y < 0 || g.X+g.Width > config.CanvasWidth || g.Y+g.Height > config.CanvasHeight {
			t.Fatalf("move(%v) left widget out of bounds: %+v", mv, g)
		}
		if g.X%config.GridSnap != 0 || g.Y%config.GridSnap != 0 {
			t.Fatalf("move(%v) left widget off grid: %+v", mv, g)
		}
	}
}

func TestResizeFloorsAndSnaps(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetText)
	w, _ := s.Find(id)

	// Degenerate request clamps to the type floor.
	s.ResizeWidget(id, 23, -5, float64(w.Geometry.X), float64(w.Geometry.Y))
	w, _ = s.Find(id)
	if w.Geometry.Width != config.MinWidgetWidth || w.Geometry.Height != config.MinWidgetHeight {
		t.Fatalf("degenerate resize = %dx%d, want floor %dx%d",
			w.Geometry.Width, w.Geometry.Height, config.MinWidgetWidth, config.MinWidgetHeight)
	}

	// Above the floor the request snaps to the nearest grid unit.
	s.ResizeWidget(id, 123, 87, float64(w.Geometry.X), float64(w.Geometry.Y))
	w, _ = s.Find(id)
	if w.Geometry.Width != 120 || w.Geometry.Height != 90 {
		t.Fatalf("resize(123,87) = %dx%d, want 120x90", w.Geometry.Width, w.Geometry.Height)
	}

	// Oversized requests are trimmed at the canvas edge.
	s.MoveWidget(id, 700, 500)
	s.ResizeWidget(id, 5000, 5000, 700, 500)
	w, _ = s.Find(id)
	g := w.Geometry
	if g.X+g.Width > config.CanvasWidth || g.Y+g.Height > config.CanvasHeight {
		t.Fatalf("oversized resize escaped canvas: %+v", g)
	}
}

func TestRotateSnapsToIncrements(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetButton)
	for _, deg := range []float64{0, 7, 22.5, 100, 359, 361, -30, 719} {
		s.RotateWidget(id, deg)
		w, _ := s.Find(id)
		r := w.Geometry.Rotation
		if r < 0 || r >= 360 || r%config.RotationSnap != 0 {
			t.Fatalf("rotate(%v) stored %d", deg, r)
		}
	}
}

func TestDeleteClearsSelectionAndIsIdempotent(t *testing.T) {
	s := NewSession()
	a := s.AddWidget(models.WidgetInput)
	b := s.AddWidget(models.WidgetButton)

	s.SelectWidget(a)
	s.DeleteWidget(a)
	if s.Selection() != "" {
		t.Fatalf("selection should clear when the selected widget is deleted")
	}
	if len(s.Widgets()) != 1 || s.Widgets()[0].ID != b {
		t.Fatalf("remaining widgets corrupted: %+v", s.Widgets())
	}

	// All mutating operations on the dead id are no-ops.
	s.DeleteWidget(a)
	s.MoveWidget(a, 100, 100)
	s.ResizeWidget(a, 100, 100, 0, 0)
	s.RotateWidget(a, 90)
	if len(s.Widgets()) != 1 {
		t.Fatalf("mutations on deleted id disturbed the list")
	}

	// Deleting the unselected widget leaves selection alone.
	s.SelectWidget(b)
	s.SelectWidget("")
	if s.Selection() != "" {
		t.Fatalf("empty id should clear selection")
	}
}

func TestSelectUnknownIDIsNoop(t *testing.T) {
	s := NewSession()
	a := s.AddWidget(models.WidgetInput)
	s.SelectWidget(a)
	s.SelectWidget("no-such-widget")
	if s.Selection() != a {
		t.Fatalf("selecting an unknown id should not change the selection")
	}
}

func TestDragGestureComputesFromStartState(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetInput)
	s.MoveWidget(id, 100, 100)

	if !s.BeginGesture(GestureDrag, id, 500, 300) {
		t.Fatalf("BeginGesture refused")
	}
	if s.BeginGesture(GestureDrag, id, 0, 0) {
		t.Fatalf("second gesture must be refused while one is active")
	}

	s.UpdateGesture(533, 321)
	w, _ := s.Find(id)
	if w.Geometry.X != 130 || w.Geometry.Y != 120 {
		t.Fatalf("mid-drag geometry = (%d,%d), want (130,120)", w.Geometry.X, w.Geometry.Y)
	}

	// The delta is always relative to the recorded start, not cumulative.
	s.UpdateGesture(510, 310)
	w, _ = s.Find(id)
	if w.Geometry.X != 110 || w.Geometry.Y != 110 {
		t.Fatalf("drag accumulated instead of recomputing: %+v", w.Geometry)
	}

	s.EndGesture(560, 340)
	if s.GestureActive() {
		t.Fatalf("gesture should be idle after EndGesture")
	}
	w, _ = s.Find(id)
	if w.Geometry.X != 160 || w.Geometry.Y != 140 {
		t.Fatalf("final geometry = %+v", w.Geometry)
	}
}

func TestResizeGesture(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetTextarea) // 300x100
	s.MoveWidget(id, 0, 0)

	s.BeginGesture(GestureResize, id, 300, 100)
	s.UpdateGesture(352, 148)
	w, _ := s.Find(id)
	if w.Geometry.Width != 350 || w.Geometry.Height != 150 {
		t.Fatalf("resize gesture = %dx%d, want 350x150", w.Geometry.Width, w.Geometry.Height)
	}
	s.EndGesture(352, 148)
	if s.GestureActive() {
		t.Fatalf("gesture should end")
	}
}

func TestCancelGestureRestoresStart(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetInput)
	s.MoveWidget(id, 200, 200)
	before, _ := s.Find(id)

	s.BeginGesture(GestureDrag, id, 0, 0)
	s.UpdateGesture(90, 90)
	s.CancelGesture()
	after, _ := s.Find(id)
	if after.Geometry != before.Geometry {
		t.Fatalf("cancel did not restore geometry: %+v != %+v", after.Geometry, before.Geometry)
	}
}

func TestGestureOnDeletedWidget(t *testing.T) {
	s := NewSession()
	id := s.AddWidget(models.WidgetInput)
	s.BeginGesture(GestureDrag, id, 0, 0)
	s.DeleteWidget(id)
	if s.GestureActive() {
		t.Fatalf("deleting the gesture target should cancel the gesture")
	}
	s.UpdateGesture(50, 50) // must not panic or resurrect anything
	if len(s.Widgets()) != 0 {
		t.Fatalf("widget list corrupted")
	}
}

func TestWidgetAtPicksTopmost(t *testing.T) {
	s := NewSession()
	a := s.AddWidget(models.WidgetInput)
	b := s.AddWidget(models.WidgetButton)
	s.MoveWidget(a, 100, 100)
	s.MoveWidget(b, 100, 100) // overlaps a; later in paint order

	id, ok := s.WidgetAt(110, 110)
	if !ok || id != b {
		t.Fatalf("WidgetAt = %q, want topmost %q", id, b)
	}
	if _, ok := s.WidgetAt(790, 590); ok {
		t.Fatalf("empty canvas area should report no widget")
	}
}

func TestDetectCollision(t *testing.T) {
	widgets := []models.Widget{
		{ID: "a", Geometry: models.Geometry{X: 100, Y: 100, Width: 200, Height: 40}},
	}

	cases := []struct {
		name      string
		candidate models.Geometry
		want      bool
	}{
		{"direct overlap", models.Geometry{X: 150, Y: 110, Width: 100, Height: 40}, true},
		{"inside buffer margin", models.Geometry{X: 305, Y: 100, Width: 50, Height: 30}, true},
		{"just outside buffer", models.Geometry{X: 320, Y: 100, Width: 50, Height: 30}, false},
		{"far away", models.Geometry{X: 600, Y: 500, Width: 50, Height: 30}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectCollision(tc.candidate, widgets); got != tc.want {
				t.Fatalf("DetectCollision = %v, want %v", got, tc.want)
			}
		})
	}

	if DetectCollision(models.Geometry{X: 0, Y: 0, Width: 50, Height: 30}, nil) {
		t.Fatalf("empty widget list can never collide")
	}
}

func TestResolveTargetDangling(t *testing.T) {
	s := NewSession()
	a := s.AddWidget(models.WidgetButton)
	ev := models.Event{Trigger: "click", Action: "focus", TargetID: a}

	if _, ok := s.ResolveTarget(ev); !ok {
		t.Fatalf("live target should resolve")
	}
	s.DeleteWidget(a)
	if _, ok := s.ResolveTarget(ev); ok {
		t.Fatalf("dangling target must resolve to nothing")
	}
	if _, ok := s.ResolveTarget(models.Event{Trigger: "click"}); ok {
		t.Fatalf("empty target must resolve to nothing")
	}
}
