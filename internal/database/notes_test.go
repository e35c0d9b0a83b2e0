package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbench/internal/models"
)

func TestNoteLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	day := time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)
	due := day.Add(18 * time.Hour)
	note := models.Note{
		ID:        "note-1",
		Title:     "Review layout",
		Content:   "Check the contact form spacing",
		Date:      day,
		TimeOfDay: "09:30",
		Priority:  "high",
		Status:    "pending",
		DueDate:   &due,
		Reminder:  true,
	}
	if err := db.SaveNote(ctx, note); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes, err := db.GetNotes(ctx)
	if err != nil {
		t.Fatalf("GetNotes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	got := notes[0]
	if got.Title != "Review layout" {
		t.Fatalf("expected title to round-trip, got %q", got.Title)
	}
	if !models.SameDay(got.Date, day) {
		t.Fatalf("expected date %v, got %v", day, got.Date)
	}
	if got.TimeOfDay != "09:30" {
		t.Fatalf("expected time of day 09:30, got %q", got.TimeOfDay)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date did not round-trip: %v", got.DueDate)
	}
	if !got.Reminder {
		t.Fatalf("expected reminder flag to survive")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set on save")
	}

	// Upsert keeps the identity and advances updated_at.
	firstUpdated := got.UpdatedAt
	time.Sleep(1100 * time.Millisecond)
	got.Content = "Spacing fixed"
	if err := db.SaveNote(ctx, got); err != nil {
		t.Fatalf("SaveNote upsert failed: %v", err)
	}
	notes, err = db.GetNotes(ctx)
	if err != nil {
		t.Fatalf("GetNotes after upsert failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected upsert, got %d notes", len(notes))
	}
	if notes[0].Content != "Spacing fixed" {
		t.Fatalf("expected updated content, got %q", notes[0].Content)
	}
	if !notes[0].UpdatedAt.After(firstUpdated) {
		t.Fatalf("expected updated_at to advance: %v -> %v", firstUpdated, notes[0].UpdatedAt)
	}

	if err := db.UpdateNoteStatus(ctx, "note-1", "completed"); err != nil {
		t.Fatalf("UpdateNoteStatus failed: %v", err)
	}
	notes, _ = db.GetNotes(ctx)
	if notes[0].Status != "completed" {
		t.Fatalf("expected completed status, got %q", notes[0].Status)
	}

	fired := time.Date(2024, 3, 16, 18, 5, 0, 0, time.Local)
	if err := db.MarkNotified(ctx, "note-1", fired); err != nil {
		t.Fatalf("MarkNotified failed: %v", err)
	}
	notes, _ = db.GetNotes(ctx)
	if notes[0].LastNotified == nil || !notes[0].LastNotified.Equal(fired) {
		t.Fatalf("expected last notified %v, got %v", fired, notes[0].LastNotified)
	}

	if err := db.DeleteNote(ctx, "note-1"); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	notes, _ = db.GetNotes(ctx)
	if len(notes) != 0 {
		t.Fatalf("expected no notes after delete, got %d", len(notes))
	}
}

func TestNoteDateRoundTripAcrossZones(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	// A note dated at midnight in a non-UTC zone must land on the same
	// calendar day after a reload, wherever the process runs.
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, plus3)
	note := models.Note{ID: "tz-1", Title: "Standup", Date: day,
		Priority: "medium", Status: "pending"}
	if err := db.SaveNote(ctx, note); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes, err := db.GetNotes(ctx)
	if err != nil {
		t.Fatalf("GetNotes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	got := notes[0]
	if !models.SameDay(got.Date, day) {
		t.Fatalf("loaded date %v is not the saved day %v", got.Date, day)
	}
	// Loaded dates are local so they compare against timeline day-cells.
	if got.Date.Location() != time.Local {
		t.Fatalf("loaded date location = %v, want local", got.Date.Location())
	}
}

func TestGetNotes_Ordering(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	later := models.Note{ID: "b", Title: "later", Content: "x",
		Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local), Priority: "low", Status: "pending"}
	earlier := models.Note{ID: "a", Title: "earlier", Content: "x",
		Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), Priority: "low", Status: "pending"}
	if err := db.SaveNote(ctx, later); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}
	if err := db.SaveNote(ctx, earlier); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes, err := db.GetNotes(ctx)
	if err != nil {
		t.Fatalf("GetNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "a" || notes[1].ID != "b" {
		t.Fatalf("expected date ordering a,b; got %s,%s", notes[0].ID, notes[1].ID)
	}
}

func TestUpdateNoteStatus_MissingRow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	err := db.UpdateNoteStatus(ctx, "ghost", "completed")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
