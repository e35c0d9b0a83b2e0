package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a targeted row does not exist.
var ErrNotFound = errors.New("not found")

const (
	timeLayout = time.RFC3339
	dayLayout  = "2006-01-02"
)

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// parseTime decodes a stored timestamp; a malformed value yields the zero
// time rather than an error, matching how missing columns behave.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// parseDay decodes a stored calendar day as local midnight so loaded dates
// land on the same day-cells the timeline builds in local time.
func parseDay(s string) time.Time {
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// requireRow turns a zero-row UPDATE into a wrapped ErrNotFound.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
