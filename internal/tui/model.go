package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"workbench/internal/database"
)

// AppVersion is stamped at build time.
var AppVersion = "0"

// ViewIndex identifies the top-level views.
type ViewIndex int

const (
	ViewDesigner ViewIndex = iota
	ViewTimeline
	ViewShifts
)

var viewNames = []string{"Designer", "Timeline", "Shifts"}

// MainModel is the root bubbletea model that switches between the designer,
// timeline, and shifts views.
type MainModel struct {
	ctx  context.Context
	repo database.Repository

	active    ViewIndex
	designer  DesignerModel
	timelineV TimelineModel
	shifts    ShiftsModel

	themeName string
	status    string
	err       error
	width     int
	height    int
}

func NewMainModel(ctx context.Context, repo database.Repository) MainModel {
	return MainModel{
		ctx:       ctx,
		repo:      repo,
		designer:  NewDesignerModel(ctx, repo),
		timelineV: NewTimelineModel(ctx, repo, time.Now(), 80),
		shifts:    NewShiftsModel(ctx, repo),
		themeName: "default",
	}
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.designer.Init(),
		m.timelineV.Init(),
		m.shifts.Init(),
		tickCmd(),
	)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.active = ViewDesigner
			return m, nil
		case "f2":
			m.active = ViewTimeline
			return m, nil
		case "f3":
			m.active = ViewShifts
			return m, nil
		case "ctrl+t":
			if m.themeName == "default" {
				m.themeName = "dracula"
			} else {
				m.themeName = "default"
			}
			SetTheme(m.themeName)
			return m, nil
		}
		return m.forwardToActive(msg)

	case tea.MouseMsg:
		return m.forwardToActive(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.forwardToAll(msg)

	case TickMsg:
		var cmd tea.Cmd
		m.timelineV, cmd = m.timelineV.Update(msg)
		return m, tea.Batch(cmd, tickCmd())

	case errMsg:
		m.err = msg.err
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m.forwardToAll(msg)

	case reportSavedMsg:
		m.status = "report saved: " + msg.path
		return m, nil
	}

	// Data messages fan out so every view stays current.
	return m.forwardToAll(msg)
}

func (m MainModel) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case ViewDesigner:
		m.designer, cmd = m.designer.Update(msg)
	case ViewTimeline:
		m.timelineV, cmd = m.timelineV.Update(msg)
	case ViewShifts:
		m.shifts, cmd = m.shifts.Update(msg)
	}
	return m, cmd
}

func (m MainModel) forwardToAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.designer, cmd = m.designer.Update(msg)
	cmds = append(cmds, cmd)
	m.timelineV, cmd = m.timelineV.Update(msg)
	cmds = append(cmds, cmd)
	m.shifts, cmd = m.shifts.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m MainModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("\nError: %v\n\nPress any key to continue.", m.err)
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	switch m.active {
	case ViewDesigner:
		b.WriteString(m.designer.View())
	case ViewTimeline:
		b.WriteString(m.timelineV.View())
	case ViewShifts:
		b.WriteString(m.shifts.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Dim.Render(m.status))
	}
	return b.String()
}

func (m MainModel) renderTabBar() string {
	parts := make([]string, 0, len(viewNames)+1)
	for i, name := range viewNames {
		label := fmt.Sprintf("F%d %s", i+1, name)
		if ViewIndex(i) == m.active {
			parts = append(parts, CurrentTheme.TabActive.Render(label))
		} else {
			parts = append(parts, CurrentTheme.TabInactive.Render(label))
		}
	}
	parts = append(parts, CurrentTheme.Dim.Render(fmt.Sprintf("  workbench v%s", AppVersion)))
	return strings.Join(parts, "")
}
