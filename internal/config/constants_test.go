package config

import "testing"

func TestConstants(t *testing.T) {
	if GridSnap <= 0 {
		t.Fatalf("GridSnap must be positive")
	}
	if RotationSnap <= 0 || 360%RotationSnap != 0 {
		t.Fatalf("RotationSnap must divide 360")
	}
	if MinWidgetWidth%GridSnap != 0 || CanvasWidth%GridSnap != 0 || CanvasHeight%GridSnap != 0 {
		t.Fatalf("canvas dimensions must be grid-aligned")
	}
	if TimelineDays <= TimelineLookbehind {
		t.Fatalf("timeline window must extend past the lookbehind")
	}
	if AppName == "" || DBFileName == "" {
		t.Fatalf("app identity constants should not be empty")
	}
	if CellWidthRatio <= 0 || CellWidthRatio > 1 {
		t.Fatalf("CellWidthRatio must be a fraction of the viewport")
	}
}
