package database

import (
	"context"
	"errors"
	"testing"

	"workbench/internal/models"
)

func TestRosterCRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if err := db.AddGroup(ctx, models.Group{ID: "g1", Name: "Alpha"}); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := db.AddGroup(ctx, models.Group{ID: "g2", Name: "Bravo", CurrentShift: models.ShiftNight}); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := db.AddEmployee(ctx, models.Employee{ID: "e1", Name: "Dana", GroupID: "g1"}); err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}
	if err := db.AddEmployee(ctx, models.Employee{ID: "e2", Name: "Alex"}); err != nil {
		t.Fatalf("AddEmployee failed: %v", err)
	}

	groups, err := db.GetAllGroups(ctx)
	if err != nil {
		t.Fatalf("GetAllGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].CurrentShift != models.ShiftMorning {
		t.Fatalf("expected new group to default to morning, got %q", groups[0].CurrentShift)
	}
	if groups[1].CurrentShift != models.ShiftNight {
		t.Fatalf("expected explicit shift to survive, got %q", groups[1].CurrentShift)
	}

	employees, err := db.GetAllEmployees(ctx)
	if err != nil {
		t.Fatalf("GetAllEmployees failed: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	// Ordered by name: Alex before Dana.
	if employees[0].Name != "Alex" || employees[0].GroupID != "" {
		t.Fatalf("expected unassigned Alex first, got %+v", employees[0])
	}
	if employees[1].GroupID != "g1" {
		t.Fatalf("expected Dana in g1, got %q", employees[1].GroupID)
	}

	if err := db.UpdateEmployeeGroup(ctx, "e2", "g2"); err != nil {
		t.Fatalf("UpdateEmployeeGroup failed: %v", err)
	}
	employees, _ = db.GetAllEmployees(ctx)
	if employees[0].GroupID != "g2" {
		t.Fatalf("expected Alex moved to g2, got %q", employees[0].GroupID)
	}

	if err := db.UpdateGroupShift(ctx, "g1", models.ShiftRest); err != nil {
		t.Fatalf("UpdateGroupShift failed: %v", err)
	}
	groups, _ = db.GetAllGroups(ctx)
	if groups[0].CurrentShift != models.ShiftRest {
		t.Fatalf("expected g1 on rest, got %q", groups[0].CurrentShift)
	}
}

func TestShiftScheduleUpsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	day := "2024-03-16"
	batch := []models.ShiftSchedule{
		{Date: day, GroupID: "g1", ShiftType: models.ShiftMorning},
		{Date: day, GroupID: "g2", ShiftType: models.ShiftNight},
	}
	if err := db.SaveShifts(ctx, batch); err != nil {
		t.Fatalf("SaveShifts failed: %v", err)
	}

	// Re-saving the same day replaces, never duplicates.
	batch[0].ShiftType = models.ShiftRest
	if err := db.SaveShifts(ctx, batch); err != nil {
		t.Fatalf("SaveShifts upsert failed: %v", err)
	}

	shifts, err := db.GetCurrentShifts(ctx, day)
	if err != nil {
		t.Fatalf("GetCurrentShifts failed: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected 2 schedule rows, got %d", len(shifts))
	}
	if shifts[0].GroupID != "g1" || shifts[0].ShiftType != models.ShiftRest {
		t.Fatalf("expected g1 upserted to rest, got %+v", shifts[0])
	}

	other, err := db.GetCurrentShifts(ctx, "2024-03-17")
	if err != nil {
		t.Fatalf("GetCurrentShifts for empty day failed: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no rows for another day, got %d", len(other))
	}
}

func TestUpdateGroupShift_MissingRow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	err := db.UpdateGroupShift(ctx, "ghost", models.ShiftMorning)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	err = db.UpdateEmployeeGroup(ctx, "ghost", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
