package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workbench/internal/database"
	"workbench/internal/models"
)

// --- Messages ---

type TickMsg time.Time

type errMsg struct{ err error }

type statusMsg string

type tabsLoadedMsg []models.Tab

type notesLoadedMsg []models.Note

type templatesLoadedMsg []models.Template

type rosterLoadedMsg struct {
	groups    []models.Group
	employees []models.Employee
}

type layoutSavedMsg struct{ tabID string }

type reportSavedMsg struct{ path string }

type remindersDueMsg []models.Note

func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// --- Repository commands ---

func loadTabsCmd(ctx context.Context, repo database.TabRepository) tea.Cmd {
	return func() tea.Msg {
		tabs, err := repo.GetTabs(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tabsLoadedMsg(tabs)
	}
}

func loadNotesCmd(ctx context.Context, repo database.NoteRepository) tea.Cmd {
	return func() tea.Msg {
		notes, err := repo.GetNotes(ctx)
		if err != nil {
			return errMsg{err}
		}
		return notesLoadedMsg(notes)
	}
}

func loadTemplatesCmd(ctx context.Context, repo database.TemplateRepository) tea.Cmd {
	return func() tea.Msg {
		tpls, err := repo.GetTemplates(ctx)
		if err != nil {
			return errMsg{err}
		}
		return templatesLoadedMsg(tpls)
	}
}

func loadRosterCmd(ctx context.Context, repo database.ShiftRepository) tea.Cmd {
	return func() tea.Msg {
		groups, err := repo.GetAllGroups(ctx)
		if err != nil {
			return errMsg{err}
		}
		employees, err := repo.GetAllEmployees(ctx)
		if err != nil {
			return errMsg{err}
		}
		return rosterLoadedMsg{groups: groups, employees: employees}
	}
}

func saveLayoutCmd(ctx context.Context, repo database.TabRepository, tab models.Tab) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateTab(ctx, tab); err != nil {
			return errMsg{err}
		}
		return layoutSavedMsg{tabID: tab.ID}
	}
}

func createTabCmd(ctx context.Context, repo database.TabRepository, tab models.Tab) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateTab(ctx, tab); err != nil {
			return errMsg{err}
		}
		tabs, err := repo.GetTabs(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tabsLoadedMsg(tabs)
	}
}

func saveTemplateCmd(ctx context.Context, repo database.TemplateRepository, tpl models.Template) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveTemplate(ctx, tpl); err != nil {
			return errMsg{err}
		}
		tpls, err := repo.GetTemplates(ctx)
		if err != nil {
			return errMsg{err}
		}
		return templatesLoadedMsg(tpls)
	}
}

func deleteTemplateCmd(ctx context.Context, repo database.TemplateRepository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteTemplate(ctx, id); err != nil {
			return errMsg{err}
		}
		tpls, err := repo.GetTemplates(ctx)
		if err != nil {
			return errMsg{err}
		}
		return templatesLoadedMsg(tpls)
	}
}

func saveNoteCmd(ctx context.Context, repo database.NoteRepository, note models.Note) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SaveNote(ctx, note); err != nil {
			return errMsg{err}
		}
		notes, err := repo.GetNotes(ctx)
		if err != nil {
			return errMsg{err}
		}
		return notesLoadedMsg(notes)
	}
}

func setNoteStatusCmd(ctx context.Context, repo database.NoteRepository, id, status string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateNoteStatus(ctx, id, status); err != nil {
			return errMsg{err}
		}
		notes, err := repo.GetNotes(ctx)
		if err != nil {
			return errMsg{err}
		}
		return notesLoadedMsg(notes)
	}
}

func deleteNoteCmd(ctx context.Context, repo database.NoteRepository, id string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.DeleteNote(ctx, id); err != nil {
			return errMsg{err}
		}
		notes, err := repo.GetNotes(ctx)
		if err != nil {
			return errMsg{err}
		}
		return notesLoadedMsg(notes)
	}
}

func addGroupCmd(ctx context.Context, repo database.ShiftRepository, g models.Group) tea.Cmd {
	return func() tea.Msg {
		if err := repo.AddGroup(ctx, g); err != nil {
			return errMsg{err}
		}
		return loadRosterCmd(ctx, repo)()
	}
}

func addEmployeeCmd(ctx context.Context, repo database.ShiftRepository, e models.Employee) tea.Cmd {
	return func() tea.Msg {
		if err := repo.AddEmployee(ctx, e); err != nil {
			return errMsg{err}
		}
		return loadRosterCmd(ctx, repo)()
	}
}

func moveEmployeeCmd(ctx context.Context, repo database.ShiftRepository, employeeID, groupID string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateEmployeeGroup(ctx, employeeID, groupID); err != nil {
			return errMsg{err}
		}
		return loadRosterCmd(ctx, repo)()
	}
}

func rotateGroupCmd(ctx context.Context, repo database.ShiftRepository, groupID string, shift models.ShiftType) tea.Cmd {
	return func() tea.Msg {
		if err := repo.UpdateGroupShift(ctx, groupID, shift); err != nil {
			return errMsg{err}
		}
		return loadRosterCmd(ctx, repo)()
	}
}

// saveShiftsCmd snapshots every group's current shift into the schedule for
// one calendar day.
func saveShiftsCmd(ctx context.Context, repo database.ShiftRepository, day string, groups []models.Group) tea.Cmd {
	return func() tea.Msg {
		schedules := make([]models.ShiftSchedule, 0, len(groups))
		for _, g := range groups {
			schedules = append(schedules, models.ShiftSchedule{
				Date:      day,
				GroupID:   g.ID,
				ShiftType: g.CurrentShift,
			})
		}
		if err := repo.SaveShifts(ctx, schedules); err != nil {
			return errMsg{err}
		}
		return statusMsg("schedule saved for " + day)
	}
}

// checkRemindersCmd rings the bell for due, unsilenced reminders and records
// the notification time so each one fires at most once.
func checkRemindersCmd(ctx context.Context, repo database.NoteRepository, notes []models.Note, now time.Time) tea.Cmd {
	return func() tea.Msg {
		var due []models.Note
		for _, n := range notes {
			if !n.DueForReminder(now) {
				continue
			}
			if n.LastNotified != nil && !n.LastNotified.Before(*n.DueDate) {
				continue
			}
			if err := repo.MarkNotified(ctx, n.ID, now); err != nil {
				return errMsg{err}
			}
			due = append(due, n)
		}
		if len(due) == 0 {
			return nil
		}
		return remindersDueMsg(due)
	}
}
