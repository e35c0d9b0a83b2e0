package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"

	"workbench/internal/config"
)

// truncate shortens text to max columns, appending an ellipsis when cut.
func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}

// FormatDayLabel renders a day-cell header (e.g. "Sat 16 Mar").
func FormatDayLabel(t time.Time) string {
	return t.Format("Mon 02 Jan")
}

// FormatGeometry renders a widget's placement for the status line.
func FormatGeometry(x, y, w, h, rot int) string {
	if rot == 0 {
		return fmt.Sprintf("%d,%d %dx%d", x, y, w, h)
	}
	return fmt.Sprintf("%d,%d %dx%d %d°", x, y, w, h, rot)
}

// priorityGlyph marks a note card with its priority.
func priorityGlyph(priority string) string {
	switch priority {
	case config.PriorityHigh:
		return CurrentTheme.PriorityHigh.Render("!!")
	case config.PriorityLow:
		return CurrentTheme.PriorityLow.Render("··")
	default:
		return CurrentTheme.PriorityMed.Render("!·")
	}
}
