package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"workbench/internal/models"
	"workbench/internal/util"
)

// GetNotes returns every note ordered by date then creation time.
func (d *Database) GetNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, title, content, date, time, priority, status,
		       due_date, reminder, last_notified, created_at, updated_at
		FROM notes
		ORDER BY date ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var date, createdAt, updatedAt string
		var timeOfDay, dueDate, lastNotified sql.NullString
		var reminder int
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &date, &timeOfDay,
			&n.Priority, &n.Status, &dueDate, &reminder, &lastNotified,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.Date = parseDay(date)
		n.TimeOfDay = timeOfDay.String
		n.Reminder = util.IntToBool(reminder)
		if dueDate.Valid {
			t := parseTime(dueDate.String)
			n.DueDate = &t
		}
		if lastNotified.Valid {
			t := parseTime(lastNotified.String)
			n.LastNotified = &t
		}
		n.CreatedAt = parseTime(createdAt)
		n.UpdatedAt = parseTime(updatedAt)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// SaveNote upserts a note; updated_at always advances.
func (d *Database) SaveNote(ctx context.Context, note models.Note) error {
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	var dueDate, lastNotified any
	if note.DueDate != nil {
		dueDate = formatTime(*note.DueDate)
	}
	if note.LastNotified != nil {
		lastNotified = formatTime(*note.LastNotified)
	}
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, date, time, priority, status,
			due_date, reminder, last_notified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			date = excluded.date,
			time = excluded.time,
			priority = excluded.priority,
			status = excluded.status,
			due_date = excluded.due_date,
			reminder = excluded.reminder,
			updated_at = excluded.updated_at`,
		note.ID, note.Title, note.Content, formatDay(note.Date), note.TimeOfDay,
		note.Priority, note.Status, dueDate, util.BoolToInt(note.Reminder),
		lastNotified, formatTime(note.CreatedAt), formatTime(note.UpdatedAt))
	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

// UpdateNoteStatus sets just the lifecycle status of a note.
func (d *Database) UpdateNoteStatus(ctx context.Context, id, status string) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE notes SET status = ?, updated_at = ? WHERE id = ?`,
		status, formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("update note status: %w", err)
	}
	return requireRow(res, "note", id)
}

// MarkNotified records that the reminder bell fired for a note.
func (d *Database) MarkNotified(ctx context.Context, id string, at time.Time) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE notes SET last_notified = ? WHERE id = ?`, formatTime(at), id)
	return err
}

// DeleteNote removes a note by id.
func (d *Database) DeleteNote(ctx context.Context, id string) error {
	_, err := d.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	return err
}
