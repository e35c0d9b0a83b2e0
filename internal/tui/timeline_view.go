package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"workbench/internal/config"
	"workbench/internal/database"
	"workbench/internal/models"
	"workbench/internal/timeline"
	"workbench/internal/util"
)

// TimelineModel is the horizontally panning strip of dated note cells.
type TimelineModel struct {
	ctx  context.Context
	repo database.Repository

	viewport *timeline.Viewport
	notes    []models.Note

	selected time.Time
	noteIdx  int

	searching  bool
	search     textinput.Model
	textFilter string

	adding     bool
	addTitle   textinput.Model
	addContent textinput.Model
	addField   int

	bell   int
	status string
	width  int
	height int
}

func NewTimelineModel(ctx context.Context, repo database.Repository, today time.Time, width int) TimelineModel {
	search := textinput.New()
	search.Placeholder = "dd.mm.yyyy or text"
	search.CharLimit = 80
	search.Width = 30

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 40

	content := textinput.New()
	content.Placeholder = "content"
	content.CharLimit = 400
	content.Width = 40

	return TimelineModel{
		ctx:        ctx,
		repo:       repo,
		viewport:   timeline.New(today, width*config.PxPerColumn),
		selected:   models.DayOf(today),
		search:     search,
		addTitle:   title,
		addContent: content,
	}
}

func (m TimelineModel) Init() tea.Cmd {
	return loadNotesCmd(m.ctx, m.repo)
}

func (m TimelineModel) Update(msg tea.Msg) (TimelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.notes = msg
		m.clampNoteIdx()
		return m, nil

	case TickMsg:
		return m, checkRemindersCmd(m.ctx, m.repo, m.notes, time.Time(msg))

	case remindersDueMsg:
		m.bell += len(msg)
		if len(msg) == 1 {
			m.status = "reminder: " + msg[0].Title
		} else {
			m.status = fmt.Sprintf("%d reminders due", len(msg))
		}
		// Reload so the recorded notification times are visible locally.
		return m, loadNotesCmd(m.ctx, m.repo)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.OnResize(msg.Width * config.PxPerColumn)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.viewport.PanBy(m.viewport.CellWidth() / 2)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.viewport.PanBy(-m.viewport.CellWidth() / 2)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m TimelineModel) updateKeys(msg tea.KeyMsg) (TimelineModel, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.moveSelection(-1)
		return m, nil
	case "right", "l":
		m.moveSelection(1)
		return m, nil
	case "ctrl+left":
		m.viewport.PanBy(m.viewport.CellWidth())
		return m, nil
	case "ctrl+right":
		m.viewport.PanBy(-m.viewport.CellWidth())
		return m, nil
	case "t":
		m.selected = m.viewport.Today()
		m.viewport.SetSearchTarget(nil)
		m.viewport.ScrollToDate(m.selected)
		return m, nil

	case "j", "down":
		m.noteIdx++
		m.clampNoteIdx()
		return m, nil
	case "k", "up":
		m.noteIdx--
		m.clampNoteIdx()
		return m, nil

	case "enter", " ":
		if n, ok := m.selectedNote(); ok {
			next := config.NoteStatusCompleted
			if n.Status == config.NoteStatusCompleted {
				next = config.NoteStatusPending
			}
			return m, setNoteStatusCmd(m.ctx, m.repo, n.ID, next)
		}
		return m, nil

	case "D":
		if n, ok := m.selectedNote(); ok {
			return m, deleteNoteCmd(m.ctx, m.repo, n.ID)
		}
		return m, nil

	case "a":
		m.adding = true
		m.addField = 0
		m.addTitle.SetValue("")
		m.addContent.SetValue("")
		m.addTitle.Focus()
		m.addContent.Blur()
		return m, textinput.Blink

	case "/":
		m.searching = true
		m.search.SetValue("")
		m.search.Focus()
		return m, textinput.Blink

	case "b":
		m.bell = 0
		m.status = ""
		return m, nil

	case "ctrl+e":
		return m, exportNotesCmd(m.notes)

	case "esc":
		m.textFilter = ""
		m.viewport.SetSearchTarget(nil)
		m.status = ""
		return m, nil
	}
	return m, nil
}

func (m TimelineModel) updateSearch(msg tea.KeyMsg) (TimelineModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		query := util.ParseNoteQuery(m.search.Value())
		if query.Date != nil {
			if m.viewport.ScrollToDate(*query.Date) {
				m.viewport.SetSearchTarget(query.Date)
				m.selected = models.DayOf(*query.Date)
				m.noteIdx = 0
				m.status = ""
			} else {
				m.status = "date outside the timeline window"
			}
			return m, nil
		}
		m.textFilter = query.Text
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m TimelineModel) updateAdding(msg tea.KeyMsg) (TimelineModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.addField == 0 {
			m.addField = 1
			m.addTitle.Blur()
			m.addContent.Focus()
			return m, nil
		}
		m.adding = false
		m.addContent.Blur()
		title := strings.TrimSpace(m.addTitle.Value())
		if title == "" {
			return m, nil
		}
		note := models.Note{
			ID:       uuid.NewString(),
			Title:    title,
			Content:  strings.TrimSpace(m.addContent.Value()),
			Date:     m.selected,
			Priority: config.PriorityMedium,
			Status:   config.NoteStatusPending,
		}
		return m, saveNoteCmd(m.ctx, m.repo, note)
	case tea.KeyEsc:
		m.adding = false
		m.addTitle.Blur()
		m.addContent.Blur()
		return m, nil
	case tea.KeyTab:
		m.addField = 1 - m.addField
		if m.addField == 0 {
			m.addTitle.Focus()
			m.addContent.Blur()
		} else {
			m.addTitle.Blur()
			m.addContent.Focus()
		}
		return m, nil
	}
	var cmd tea.Cmd
	if m.addField == 0 {
		m.addTitle, cmd = m.addTitle.Update(msg)
	} else {
		m.addContent, cmd = m.addContent.Update(msg)
	}
	return m, cmd
}

// moveSelection shifts the selected day and keeps its cell centered.
func (m *TimelineModel) moveSelection(days int) {
	next := m.selected.AddDate(0, 0, days)
	if m.viewport.IndexOf(next) < 0 {
		return
	}
	m.selected = next
	m.noteIdx = 0
	m.viewport.ScrollToDate(m.selected)
}

func (m TimelineModel) notesOn(day time.Time) []models.Note {
	var out []models.Note
	for _, n := range m.notes {
		if !models.SameDay(n.Date, day) {
			continue
		}
		if m.textFilter != "" && !util.MatchesText(m.textFilter, n.Title, n.Content) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (m TimelineModel) selectedNote() (models.Note, bool) {
	notes := m.notesOn(m.selected)
	if len(notes) == 0 || m.noteIdx < 0 || m.noteIdx >= len(notes) {
		return models.Note{}, false
	}
	return notes[m.noteIdx], true
}

func (m *TimelineModel) clampNoteIdx() {
	n := len(m.notesOn(m.selected))
	if n == 0 {
		m.noteIdx = 0
		return
	}
	if m.noteIdx < 0 {
		m.noteIdx = 0
	}
	if m.noteIdx >= n {
		m.noteIdx = n - 1
	}
}

func (m TimelineModel) View() string {
	var b strings.Builder

	header := m.selected.Format("January 2006")
	if m.bell > 0 {
		header += fmt.Sprintf("  🔔 %d", m.bell)
	}
	if m.textFilter != "" {
		header += "  filter: " + m.textFilter
	}
	b.WriteString(CurrentTheme.Header.Render(header))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(CurrentTheme.Focused.Render("search: ") + m.search.View() + "\n")
	} else if m.adding {
		b.WriteString(CurrentTheme.Focused.Render("new note "+m.selected.Format("02 Jan")+": ") +
			m.addTitle.View() + " " + m.addContent.View() + "\n")
	}

	b.WriteString(m.renderStrip())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(CurrentTheme.Dim.Render(m.status))
	} else {
		b.WriteString(CurrentTheme.Dim.Render("←/→ day · ctrl+←/→ pan · a add · / search · enter toggle · t today"))
	}
	return b.String()
}

// renderStrip lays the visible day-cells side by side.
func (m TimelineModel) renderStrip() string {
	first, last := m.viewport.VisibleCells()
	dates := m.viewport.Dates()
	cellCols := int(m.viewport.CellWidth()) / config.PxPerColumn
	if cellCols < 12 {
		cellCols = 12
	}

	now := time.Now()
	blocks := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		blocks = append(blocks, m.renderDayCell(dates[i], cellCols, now))
	}
	if len(blocks) == 0 {
		return CurrentTheme.Dim.Render("(empty timeline)")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m TimelineModel) renderDayCell(day time.Time, cols int, now time.Time) string {
	inner := cols - 4
	var b strings.Builder

	label := FormatDayLabel(day)
	switch {
	case models.SameDay(day, m.viewport.Today()):
		label = CurrentTheme.Today.Render(label + " ◆")
	case models.SameDay(day, m.selected):
		label = CurrentTheme.Focused.Render(label)
	default:
		label = CurrentTheme.Dim.Render(label)
	}
	b.WriteString(label)
	b.WriteString("\n")

	notes := m.notesOn(day)
	if len(notes) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("—"))
	}
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderNoteCard(n, day, i, inner, now))
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Width(cols - 2).
		Padding(0, 1)
	if models.SameDay(day, m.selected) {
		border = border.BorderForeground(lipgloss.Color("205"))
	}
	return border.Render(b.String())
}

func (m TimelineModel) renderNoteCard(n models.Note, day time.Time, idx, width int, now time.Time) string {
	titleStyle := CurrentTheme.NoteTitle
	switch n.EffectiveStatus(now) {
	case config.NoteStatusCompleted:
		titleStyle = CurrentTheme.NoteDone
	case config.NoteStatusOverdue:
		titleStyle = CurrentTheme.NoteOverdue
	}

	cursor := "  "
	if models.SameDay(day, m.selected) && idx == m.noteIdx {
		cursor = CurrentTheme.Focused.Render("> ")
	}

	line := cursor + priorityGlyph(n.Priority) + " " + titleStyle.Render(truncate(n.Title, width-6))
	if n.TimeOfDay != "" {
		line += CurrentTheme.Dim.Render(" " + n.TimeOfDay)
	}
	if n.Reminder {
		line += " 🔔"
	}

	if n.Content == "" {
		return line
	}
	body := ansi.Wrap(n.Content, width-2, "")
	rows := strings.Split(body, "\n")
	if len(rows) > 2 {
		rows = rows[:2]
		rows[1] = truncate(rows[1], width-3) + "…"
	}
	for i := range rows {
		rows[i] = "  " + CurrentTheme.NoteBody.Render(rows[i])
	}
	return line + "\n" + strings.Join(rows, "\n")
}
