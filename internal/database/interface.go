package database

import (
	"context"
	"time"

	"workbench/internal/models"
)

// TabRepository defines dynamic-tab persistence.
type TabRepository interface {
	GetTabs(ctx context.Context) ([]models.Tab, error)
	CreateTab(ctx context.Context, tab models.Tab) error
	UpdateTab(ctx context.Context, tab models.Tab) error
	DeleteTab(ctx context.Context, id string) error
}

// NoteRepository defines timeline note persistence.
type NoteRepository interface {
	GetNotes(ctx context.Context) ([]models.Note, error)
	SaveNote(ctx context.Context, note models.Note) error
	UpdateNoteStatus(ctx context.Context, id, status string) error
	MarkNotified(ctx context.Context, id string, at time.Time) error
	DeleteNote(ctx context.Context, id string) error
}

// TemplateRepository defines reusable layout persistence.
type TemplateRepository interface {
	GetTemplates(ctx context.Context) ([]models.Template, error)
	SaveTemplate(ctx context.Context, tpl models.Template) error
	DeleteTemplate(ctx context.Context, id string) error
}

// ShiftRepository defines the personnel roster operations.
type ShiftRepository interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetAllGroups(ctx context.Context) ([]models.Group, error)
	AddEmployee(ctx context.Context, e models.Employee) error
	AddGroup(ctx context.Context, g models.Group) error
	UpdateEmployeeGroup(ctx context.Context, employeeID, groupID string) error
	UpdateGroupShift(ctx context.Context, groupID string, shift models.ShiftType) error
	GetCurrentShifts(ctx context.Context, date string) ([]models.ShiftSchedule, error)
	SaveShifts(ctx context.Context, schedules []models.ShiftSchedule) error
}

// Repository combines all repository interfaces.
type Repository interface {
	TabRepository
	NoteRepository
	TemplateRepository
	ShiftRepository
}

var _ Repository = (*Database)(nil)
