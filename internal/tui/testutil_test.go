package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"workbench/internal/database"
)

// containsPlain checks rendered output ignoring styling escapes.
func containsPlain(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}

func openTestRepo(t *testing.T, ctx context.Context) *database.Database {
	t.Helper()
	dir := t.TempDir()
	db, err := database.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// collectMsgs runs a command tree (following batches) and returns the flat
// list of produced application messages. Library messages such as cursor
// blinks are dropped so draining terminates.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	switch msg.(type) {
	case errMsg, statusMsg, tabsLoadedMsg, notesLoadedMsg, templatesLoadedMsg,
		rosterLoadedMsg, layoutSavedMsg, reportSavedMsg, remindersDueMsg:
		return []tea.Msg{msg}
	}
	return nil
}

func drainDesigner(t *testing.T, m DesignerModel, cmd tea.Cmd) DesignerModel {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		m = drainDesigner(t, m, next)
	}
	return m
}

func drainTimeline(t *testing.T, m TimelineModel, cmd tea.Cmd) TimelineModel {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		m = drainTimeline(t, m, next)
	}
	return m
}

func drainShifts(t *testing.T, m ShiftsModel, cmd tea.Cmd) ShiftsModel {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		var next tea.Cmd
		m, next = m.Update(msg)
		m = drainShifts(t, m, next)
	}
	return m
}
