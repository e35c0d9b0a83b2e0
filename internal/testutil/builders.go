package testutil

import (
	"time"

	"workbench/internal/config"
	"workbench/internal/models"
)

// WidgetBuilder provides fluent API for creating test widgets.
type WidgetBuilder struct {
	widget models.Widget
}

func NewWidget() *WidgetBuilder {
	return &WidgetBuilder{
		widget: models.Widget{
			ID:       "test-widget",
			Type:     models.WidgetInput,
			Geometry: models.Geometry{X: 20, Y: 20, Width: 200, Height: 40},
			Props:    models.Properties{Placeholder: "Enter text"},
		},
	}
}

func (b *WidgetBuilder) WithID(id string) *WidgetBuilder {
	b.widget.ID = id
	return b
}

func (b *WidgetBuilder) WithType(t models.WidgetType) *WidgetBuilder {
	b.widget.Type = t
	return b
}

func (b *WidgetBuilder) At(x, y int) *WidgetBuilder {
	b.widget.Geometry.X = x
	b.widget.Geometry.Y = y
	return b
}

func (b *WidgetBuilder) Sized(w, h int) *WidgetBuilder {
	b.widget.Geometry.Width = w
	b.widget.Geometry.Height = h
	return b
}

func (b *WidgetBuilder) Rotated(deg int) *WidgetBuilder {
	b.widget.Geometry.Rotation = deg
	return b
}

func (b *WidgetBuilder) WithLabel(label string) *WidgetBuilder {
	b.widget.Props.Label = label
	return b
}

func (b *WidgetBuilder) Build() models.Widget {
	return b.widget
}

// NoteBuilder provides fluent API for creating test notes.
type NoteBuilder struct {
	note models.Note
}

func NewNote() *NoteBuilder {
	return &NoteBuilder{
		note: models.Note{
			ID:        "test-note",
			Title:     "Test Note",
			Content:   "Test content",
			Date:      models.DayOf(time.Now()),
			Priority:  config.PriorityMedium,
			Status:    config.NoteStatusPending,
			CreatedAt: time.Now(),
		},
	}
}

func (b *NoteBuilder) WithID(id string) *NoteBuilder {
	b.note.ID = id
	return b
}

func (b *NoteBuilder) WithTitle(title string) *NoteBuilder {
	b.note.Title = title
	return b
}

func (b *NoteBuilder) OnDay(day time.Time) *NoteBuilder {
	b.note.Date = models.DayOf(day)
	return b
}

func (b *NoteBuilder) WithStatus(status string) *NoteBuilder {
	b.note.Status = status
	return b
}

func (b *NoteBuilder) WithPriority(priority string) *NoteBuilder {
	b.note.Priority = priority
	return b
}

func (b *NoteBuilder) DueAt(t time.Time) *NoteBuilder {
	b.note.DueDate = &t
	return b
}

func (b *NoteBuilder) WithReminder() *NoteBuilder {
	b.note.Reminder = true
	return b
}

func (b *NoteBuilder) Build() models.Note {
	return b.note
}
