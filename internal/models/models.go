package models

import (
	"encoding/json"
	"time"

	"workbench/internal/config"
)

// WidgetType enumerates the closed set of placeable widget kinds.
type WidgetType string

const (
	WidgetInput    WidgetType = "input"
	WidgetButton   WidgetType = "button"
	WidgetText     WidgetType = "text"
	WidgetTextarea WidgetType = "textarea"
	WidgetSelect   WidgetType = "select"
	WidgetCheckbox WidgetType = "checkbox"
)

// KnownWidgetTypes lists every renderable widget kind, in palette order.
var KnownWidgetTypes = []WidgetType{
	WidgetInput,
	WidgetTextarea,
	WidgetButton,
	WidgetSelect,
	WidgetCheckbox,
	WidgetText,
}

// Geometry is the placement tuple of a widget on the design surface.
// Values are logical pixels, grid-aligned after any user-driven mutation.
// Rotation is degrees in [0,360).
type Geometry struct {
	X        int
	Y        int
	Width    int
	Height   int
	Rotation int
}

// Event is a non-owning back-reference from one widget to another.
// A TargetID pointing at a deleted widget is left dangling and resolves
// to nothing at trigger time.
type Event struct {
	Trigger  string `json:"trigger"`
	Action   string `json:"action"`
	TargetID string `json:"targetComponent,omitempty"`
}

// Properties is the type-dependent style/content bag of a widget. Only a
// subset applies to any given widget kind.
type Properties struct {
	Label       string   `json:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Content     string   `json:"content,omitempty"`
	Options     []string `json:"options,omitempty"`
	FontSize    int      `json:"fontSize,omitempty"`
	FontFamily  string   `json:"fontFamily,omitempty"`
	FontWeight  string   `json:"fontWeight,omitempty"`
	Color       string   `json:"color,omitempty"`
	TextAlign   string   `json:"textAlign,omitempty"`
	Checked     bool     `json:"value,omitempty"`
	Tasks       []string `json:"tasks,omitempty"`
	Events      []Event  `json:"events,omitempty"`
}

// Widget is a single placed, positioned, typed element on the design canvas.
// The owning canvas session holds the only reference; everything else refers
// to widgets by ID.
type Widget struct {
	ID       string
	Type     WidgetType
	Geometry Geometry
	Props    Properties
}

// widgetRecord is the persisted wire form: geometry is flattened into the
// properties bag, matching the stored tab layout schema.
type widgetRecord struct {
	ID         string     `json:"id"`
	Type       WidgetType `json:"type"`
	Properties struct {
		X        int `json:"x"`
		Y        int `json:"y"`
		Width    int `json:"width"`
		Height   int `json:"height"`
		Rotation int `json:"rotation,omitempty"`
		Properties
	} `json:"properties"`
}

func (w Widget) MarshalJSON() ([]byte, error) {
	var r widgetRecord
	r.ID = w.ID
	r.Type = w.Type
	r.Properties.X = w.Geometry.X
	r.Properties.Y = w.Geometry.Y
	r.Properties.Width = w.Geometry.Width
	r.Properties.Height = w.Geometry.Height
	r.Properties.Rotation = w.Geometry.Rotation
	r.Properties.Properties = w.Props
	return json.Marshal(r)
}

func (w *Widget) UnmarshalJSON(data []byte) error {
	var r widgetRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	w.ID = r.ID
	w.Type = r.Type
	w.Geometry = Geometry{
		X:        r.Properties.X,
		Y:        r.Properties.Y,
		Width:    r.Properties.Width,
		Height:   r.Properties.Height,
		Rotation: r.Properties.Rotation,
	}
	w.Props = r.Properties.Properties
	return nil
}

// Field describes a single column of a dynamic tab's backing table.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// TableSchema names the backing table a dynamic tab writes into.
type TableSchema struct {
	TableName string  `json:"table_name"`
	Fields    []Field `json:"fields"`
}

// Tab is a persisted user-designed screen.
type Tab struct {
	ID        string
	Label     string
	Type      string
	Layout    []Widget
	Database  TableSchema
	CreatedAt time.Time
}

// Template is a reusable named layout.
type Template struct {
	ID        string
	Name      string
	Layout    []Widget
	CreatedAt time.Time
}

// Note is a dated timeline entry. Date carries the calendar day that
// positions the note; time-of-day is tracked separately and never affects
// placement.
type Note struct {
	ID           string
	Title        string
	Content      string
	Date         time.Time
	TimeOfDay    string // HH:mm
	Priority     string // low, medium, high
	Status       string // pending, completed, overdue
	DueDate      *time.Time
	Reminder     bool
	LastNotified *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveStatus derives the displayed status: a pending note whose due
// date's calendar day has passed is overdue.
func (n Note) EffectiveStatus(now time.Time) string {
	if n.Status == config.NoteStatusPending && n.DueDate != nil {
		if beforeDay(*n.DueDate, now) {
			return config.NoteStatusOverdue
		}
	}
	return n.Status
}

// DueForReminder reports whether the note should ring the notification bell.
func (n Note) DueForReminder(now time.Time) bool {
	if !n.Reminder || n.Status == config.NoteStatusCompleted || n.DueDate == nil {
		return false
	}
	return !n.DueDate.After(now)
}

// DayOf truncates a timestamp to midnight of its calendar day, keeping the
// timestamp's own location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps carry the same calendar date.
// Components are compared directly so two midnights of the same date match
// even when their locations differ.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// beforeDay reports whether a's calendar date falls strictly before b's.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// ShiftType enumerates the rotation states of a personnel group.
type ShiftType string

const (
	ShiftMorning ShiftType = "Morning"
	ShiftNight   ShiftType = "Night"
	ShiftRest    ShiftType = "Rest"
)

// Next returns the following shift in the Morning -> Night -> Rest cycle.
func (s ShiftType) Next() ShiftType {
	switch s {
	case ShiftMorning:
		return ShiftNight
	case ShiftNight:
		return ShiftRest
	default:
		return ShiftMorning
	}
}

// Employee belongs to at most one group, referenced by id.
type Employee struct {
	ID      string
	Name    string
	GroupID string
}

// Group is a personnel group with a current shift assignment.
type Group struct {
	ID           string
	Name         string
	CurrentShift ShiftType
}

// ShiftSchedule records which shift a group works on a given day.
type ShiftSchedule struct {
	Date      string // YYYY-MM-DD
	GroupID   string
	ShiftType ShiftType
}
