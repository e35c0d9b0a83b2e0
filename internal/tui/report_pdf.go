package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-pdf/fpdf"

	"workbench/internal/config"
	"workbench/internal/models"
	"workbench/internal/util"
)

func exportNotesCmd(notes []models.Note) tea.Cmd {
	return func() tea.Msg {
		path, err := GenerateNotesReport(notes, util.ReportsDir(config.AppName))
		if err != nil {
			return errMsg{err}
		}
		return reportSavedMsg{path: path}
	}
}

// GenerateNotesReport writes a PDF listing every note grouped by day and
// returns the file path.
func GenerateNotesReport(notes []models.Note, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Notes Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)

	completed := 0
	var lastDay time.Time
	now := time.Now()

	for _, n := range notes {
		if lastDay.IsZero() || !models.SameDay(n.Date, lastDay) {
			lastDay = models.DayOf(n.Date)
			pdf.SetFont("Arial", "B", 14)
			pdf.Cell(0, 10, lastDay.Format("Monday, 02 January 2006"))
			pdf.Ln(8)
			pdf.SetFont("Arial", "", 12)
		}

		status := "[ ]"
		switch n.EffectiveStatus(now) {
		case config.NoteStatusCompleted:
			status = "[x]"
			completed++
		case config.NoteStatusOverdue:
			status = "[!]"
		}
		head := fmt.Sprintf("%s %s", status, n.Title)
		if n.TimeOfDay != "" {
			head += " (" + n.TimeOfDay + ")"
		}
		pdf.Cell(0, 8, head)
		pdf.Ln(6)
		if n.Content != "" {
			pdf.MultiCell(0, 6, "    "+n.Content, "", "", false)
		}
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Notes Completed: %d/%d", completed, len(notes)))

	filename := fmt.Sprintf("notes_%s.pdf", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
