package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"workbench/internal/database"
	"workbench/internal/models"
)

// Add-entry modes for the shifts view.
const (
	addingNothing = iota
	addingGroup
	addingEmployee
)

// ShiftsModel manages personnel groups and their Morning/Night/Rest rotation.
type ShiftsModel struct {
	ctx  context.Context
	repo database.Repository

	groups    []models.Group
	employees []models.Employee

	cursor        int // group cursor
	empCursor     int
	focusRoster   bool
	adding        int
	input         textinput.Model
	status        string
	width, height int
}

func NewShiftsModel(ctx context.Context, repo database.Repository) ShiftsModel {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = 60
	ti.Width = 30
	return ShiftsModel{ctx: ctx, repo: repo, input: ti}
}

func (m ShiftsModel) Init() tea.Cmd {
	return loadRosterCmd(m.ctx, m.repo)
}

func (m ShiftsModel) Update(msg tea.Msg) (ShiftsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rosterLoadedMsg:
		m.groups = msg.groups
		m.employees = msg.employees
		if m.cursor >= len(m.groups) {
			m.cursor = 0
		}
		if m.empCursor >= len(m.employees) {
			m.empCursor = 0
		}
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.adding != addingNothing {
			return m.updateAdding(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m ShiftsModel) updateKeys(msg tea.KeyMsg) (ShiftsModel, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focusRoster = !m.focusRoster
		return m, nil

	case "up", "k":
		if m.focusRoster {
			if m.empCursor > 0 {
				m.empCursor--
			}
		} else if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.focusRoster {
			if m.empCursor < len(m.employees)-1 {
				m.empCursor++
			}
		} else if m.cursor < len(m.groups)-1 {
			m.cursor++
		}
		return m, nil

	case "r":
		if m.cursor < len(m.groups) {
			g := m.groups[m.cursor]
			next := g.CurrentShift.Next()
			// Optimistic update; the reload confirms it.
			m.groups[m.cursor].CurrentShift = next
			return m, rotateGroupCmd(m.ctx, m.repo, g.ID, next)
		}
		return m, nil

	case "R":
		cmds := make([]tea.Cmd, 0, len(m.groups))
		for i, g := range m.groups {
			next := g.CurrentShift.Next()
			m.groups[i].CurrentShift = next
			cmds = append(cmds, rotateGroupCmd(m.ctx, m.repo, g.ID, next))
		}
		return m, tea.Batch(cmds...)

	case "m":
		if m.focusRoster && m.empCursor < len(m.employees) && len(m.groups) > 0 {
			e := m.employees[m.empCursor]
			return m, moveEmployeeCmd(m.ctx, m.repo, e.ID, m.nextGroupID(e.GroupID))
		}
		return m, nil

	case "g":
		m.adding = addingGroup
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		m.adding = addingEmployee
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "s":
		day := time.Now().Format("2006-01-02")
		return m, saveShiftsCmd(m.ctx, m.repo, day, m.groups)
	}
	return m, nil
}

func (m ShiftsModel) updateAdding(msg tea.KeyMsg) (ShiftsModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		mode := m.adding
		m.adding = addingNothing
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		if mode == addingGroup {
			return m, addGroupCmd(m.ctx, m.repo, models.Group{
				ID:           uuid.NewString(),
				Name:         name,
				CurrentShift: models.ShiftMorning,
			})
		}
		e := models.Employee{ID: uuid.NewString(), Name: name}
		if m.cursor < len(m.groups) {
			e.GroupID = m.groups[m.cursor].ID
		}
		return m, addEmployeeCmd(m.ctx, m.repo, e)
	case tea.KeyEsc:
		m.adding = addingNothing
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// nextGroupID returns the group after the current one in display order; an
// unassigned employee lands in the first group.
func (m ShiftsModel) nextGroupID(current string) string {
	if len(m.groups) == 0 {
		return ""
	}
	for i, g := range m.groups {
		if g.ID == current {
			return m.groups[(i+1)%len(m.groups)].ID
		}
	}
	return m.groups[0].ID
}

func (m ShiftsModel) View() string {
	var groupsPane strings.Builder
	groupsPane.WriteString(CurrentTheme.Header.Render("Groups"))
	groupsPane.WriteString("\n")
	if len(m.groups) == 0 {
		groupsPane.WriteString(CurrentTheme.Dim.Render("no groups yet (g to add)"))
	}
	for i, g := range m.groups {
		cursor := "  "
		style := CurrentTheme.Widget
		if !m.focusRoster && i == m.cursor {
			cursor = "> "
			style = CurrentTheme.Focused
		}
		count := 0
		for _, e := range m.employees {
			if e.GroupID == g.ID {
				count++
			}
		}
		line := fmt.Sprintf("%s%s  %s  (%d)", cursor, style.Render(g.Name), shiftBadge(g.CurrentShift), count)
		groupsPane.WriteString(line)
		groupsPane.WriteString("\n")
	}

	var rosterPane strings.Builder
	rosterPane.WriteString(CurrentTheme.Header.Render("Roster"))
	rosterPane.WriteString("\n")
	if len(m.employees) == 0 {
		rosterPane.WriteString(CurrentTheme.Dim.Render("no employees yet (e to add)"))
	}
	for i, e := range m.employees {
		cursor := "  "
		style := CurrentTheme.Widget
		if m.focusRoster && i == m.empCursor {
			cursor = "> "
			style = CurrentTheme.Focused
		}
		group := "unassigned"
		for _, g := range m.groups {
			if g.ID == e.GroupID {
				group = g.Name
				break
			}
		}
		rosterPane.WriteString(fmt.Sprintf("%s%s  %s", cursor, style.Render(e.Name), CurrentTheme.Dim.Render(group)))
		rosterPane.WriteString("\n")
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(0, 1).
		Width(34)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		pane.Render(groupsPane.String()),
		pane.Render(rosterPane.String()))

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.adding != addingNothing {
		label := "new group: "
		if m.adding == addingEmployee {
			label = "new employee: "
		}
		b.WriteString(CurrentTheme.Focused.Render(label) + m.input.View())
	} else if m.status != "" {
		b.WriteString(CurrentTheme.Dim.Render(m.status))
	} else {
		b.WriteString(CurrentTheme.Dim.Render("r rotate · R rotate all · m move · g/e add · s save schedule"))
	}
	return b.String()
}

func shiftBadge(s models.ShiftType) string {
	switch s {
	case models.ShiftMorning:
		return CurrentTheme.PriorityMed.Render("☀ Morning")
	case models.ShiftNight:
		return CurrentTheme.Highlight.Render("☾ Night")
	default:
		return CurrentTheme.Dim.Render("⏾ Rest")
	}
}
