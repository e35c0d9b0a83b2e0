package tui

import (
	"os"
	"testing"
	"time"

	"workbench/internal/config"
	"workbench/internal/models"
	"workbench/internal/testutil"
)

func TestGenerateNotesReport(t *testing.T) {
	day := time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)
	notes := []models.Note{
		testutil.NewNote().WithID("n1").WithTitle("Done thing").OnDay(day).
			WithStatus(config.NoteStatusCompleted).Build(),
		testutil.NewNote().WithID("n2").WithTitle("Open thing").OnDay(day.AddDate(0, 0, 1)).Build(),
	}

	path, err := GenerateNotesReport(notes, t.TempDir())
	if err != nil {
		t.Fatalf("GenerateNotesReport failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty report")
	}
}

func TestGenerateNotesReport_Empty(t *testing.T) {
	path, err := GenerateNotesReport(nil, t.TempDir())
	if err != nil {
		t.Fatalf("GenerateNotesReport failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected report file: %v", err)
	}
}
