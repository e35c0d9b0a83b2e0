package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"workbench/internal/canvas"
	"workbench/internal/config"
	"workbench/internal/database"
	"workbench/internal/models"
)

// Screen offset of the design surface's top-left cell: one row of tab bar,
// one palette row, then the frame border.
const (
	canvasLeft = 1
	canvasTop  = 3
)

// DesignerModel is the drag-and-drop form designer view. Widget geometry
// lives in logical pixels inside the canvas session; this model only maps
// terminal cells to pixels and back.
type DesignerModel struct {
	ctx     context.Context
	repo    database.Repository
	session *canvas.Session

	tabs      []models.Tab
	activeTab int
	templates []models.Template

	paletteIdx int
	tplIdx     int
	editing    bool
	preview    bool
	propInput  textinput.Model

	status string
	width  int
	height int
	dirty  bool
}

func NewDesignerModel(ctx context.Context, repo database.Repository) DesignerModel {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 120
	ti.Width = 40
	return DesignerModel{
		ctx:       ctx,
		repo:      repo,
		session:   canvas.NewSession(),
		propInput: ti,
	}
}

func (m DesignerModel) Init() tea.Cmd {
	return tea.Batch(loadTabsCmd(m.ctx, m.repo), loadTemplatesCmd(m.ctx, m.repo))
}

// currentTab returns the persisted tab backing the session, if any.
func (m DesignerModel) currentTab() (models.Tab, bool) {
	if m.activeTab < 0 || m.activeTab >= len(m.tabs) {
		return models.Tab{}, false
	}
	return m.tabs[m.activeTab], true
}

func (m *DesignerModel) loadActiveTab() {
	if tab, ok := m.currentTab(); ok {
		m.session.SetLayout(tab.Layout)
		m.dirty = false
	}
}

func (m DesignerModel) Update(msg tea.Msg) (DesignerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tabsLoadedMsg:
		m.tabs = msg
		if len(m.tabs) == 0 {
			// Bootstrap a first tab so the designer always has a home.
			tab := models.Tab{
				ID:        uuid.NewString(),
				Label:     "Form 1",
				Type:      "dynamic",
				Layout:    []models.Widget{},
				CreatedAt: time.Now(),
			}
			return m, createTabCmd(m.ctx, m.repo, tab)
		}
		if m.activeTab >= len(m.tabs) {
			m.activeTab = 0
		}
		m.loadActiveTab()
		return m, nil

	case templatesLoadedMsg:
		m.templates = msg
		if m.tplIdx >= len(m.templates) {
			m.tplIdx = 0
		}
		return m, nil

	case layoutSavedMsg:
		m.dirty = false
		m.status = "layout saved"
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.preview {
			return m, nil
		}
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.preview {
			return m.updatePreview(msg)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updatePreview handles the read-only rendering of a saved tab: only tab
// cycling and leaving preview are allowed.
func (m DesignerModel) updatePreview(msg tea.KeyMsg) (DesignerModel, tea.Cmd) {
	switch msg.String() {
	case "v", "esc":
		m.preview = false
	case "{":
		if len(m.tabs) > 1 {
			m.activeTab = (m.activeTab - 1 + len(m.tabs)) % len(m.tabs)
			m.loadActiveTab()
		}
	case "}":
		if len(m.tabs) > 1 {
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			m.loadActiveTab()
		}
	}
	return m, nil
}

func (m DesignerModel) updateMouse(msg tea.MouseMsg) (DesignerModel, tea.Cmd) {
	px := (msg.X - canvasLeft) * config.PxPerColumn
	py := (msg.Y - canvasTop) * config.PxPerRow

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		id, ok := m.session.WidgetAt(px, py)
		if !ok {
			m.session.SelectWidget("")
			return m, nil
		}
		kind := canvas.GestureDrag
		if msg.Shift {
			kind = canvas.GestureResize
		} else if msg.Alt {
			kind = canvas.GestureRotate
		}
		m.session.BeginGesture(kind, id, px, py)
		return m, nil

	case tea.MouseActionMotion:
		if m.session.GestureActive() {
			m.session.UpdateGesture(px, py)
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.session.GestureActive() {
			return m, nil
		}
		m.session.EndGesture(px, py)
		m.dirty = true
		m.status = ""
		if w, ok := m.session.Selected(); ok {
			m.status = widgetStatusLine(w)
			if m.overlapsAnother(w) {
				m.status += "  (overlaps nearby widget)"
			}
		}
		return m, nil
	}
	return m, nil
}

func (m DesignerModel) updateKeys(msg tea.KeyMsg) (DesignerModel, tea.Cmd) {
	sel, hasSel := m.session.Selected()

	switch msg.String() {
	case "esc":
		if m.session.GestureActive() {
			m.session.CancelGesture()
		} else {
			m.session.SelectWidget("")
		}
		return m, nil

	case "[":
		m.paletteIdx--
		if m.paletteIdx < 0 {
			m.paletteIdx = len(models.KnownWidgetTypes) - 1
		}
		return m, nil
	case "]":
		m.paletteIdx = (m.paletteIdx + 1) % len(models.KnownWidgetTypes)
		return m, nil

	case "a", "enter":
		m.session.AddWidget(models.KnownWidgetTypes[m.paletteIdx])
		m.dirty = true
		return m, nil

	case "c":
		m.cycleSelection()
		return m, nil

	case "v":
		m.preview = true
		m.session.SelectWidget("")
		return m, nil

	case "d", "delete", "backspace":
		if hasSel {
			m.session.DeleteWidget(sel.ID)
			m.dirty = true
		}
		return m, nil

	case "left", "right", "up", "down":
		if hasSel {
			m.nudge(sel, msg.String())
			m.dirty = true
		}
		return m, nil

	case "shift+left", "shift+right", "shift+up", "shift+down":
		if hasSel {
			m.stretch(sel, msg.String())
			m.dirty = true
		}
		return m, nil

	case "r":
		if hasSel {
			m.session.RotateWidget(sel.ID, float64(sel.Geometry.Rotation+config.RotationSnap))
			m.dirty = true
		}
		return m, nil
	case "R":
		if hasSel {
			m.session.RotateWidget(sel.ID, float64(sel.Geometry.Rotation-config.RotationSnap))
			m.dirty = true
		}
		return m, nil

	case "x":
		if hasSel && sel.Type == models.WidgetCheckbox {
			m.toggleChecked(sel)
			m.dirty = true
		}
		return m, nil

	case "e":
		if hasSel {
			m.editing = true
			m.propInput.SetValue(primaryProp(sel))
			m.propInput.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "{":
		if len(m.tabs) > 1 {
			m.activeTab = (m.activeTab - 1 + len(m.tabs)) % len(m.tabs)
			m.loadActiveTab()
		}
		return m, nil
	case "}":
		if len(m.tabs) > 1 {
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			m.loadActiveTab()
		}
		return m, nil

	case "ctrl+s":
		return m, m.saveLayout()

	case "T":
		if tab, ok := m.currentTab(); ok {
			tpl := models.Template{
				ID:     uuid.NewString(),
				Name:   fmt.Sprintf("%s %s", tab.Label, time.Now().Format("02 Jan 15:04")),
				Layout: m.session.Widgets(),
			}
			return m, saveTemplateCmd(m.ctx, m.repo, tpl)
		}
		return m, nil

	case "(":
		if len(m.templates) > 0 {
			m.tplIdx--
			if m.tplIdx < 0 {
				m.tplIdx = len(m.templates) - 1
			}
		}
		return m, nil
	case ")":
		if len(m.templates) > 0 {
			m.tplIdx = (m.tplIdx + 1) % len(m.templates)
		}
		return m, nil

	case "L":
		if m.tplIdx < len(m.templates) {
			tpl := m.templates[m.tplIdx]
			m.session.SetLayout(tpl.Layout)
			m.dirty = true
			m.status = "applied template: " + tpl.Name
		}
		return m, nil

	case "X":
		if m.tplIdx < len(m.templates) {
			tpl := m.templates[m.tplIdx]
			m.status = "deleted template: " + tpl.Name
			return m, deleteTemplateCmd(m.ctx, m.repo, tpl.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m DesignerModel) updateEditing(msg tea.KeyMsg) (DesignerModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if sel, ok := m.session.Selected(); ok {
			m.applyPrimaryProp(sel, m.propInput.Value())
			m.dirty = true
		}
		m.editing = false
		m.propInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.editing = false
		m.propInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.propInput, cmd = m.propInput.Update(msg)
	return m, cmd
}

// saveLayout writes the session's widgets back into the active tab.
func (m DesignerModel) saveLayout() tea.Cmd {
	tab, ok := m.currentTab()
	if !ok {
		return nil
	}
	tab.Layout = m.session.Widgets()
	return saveLayoutCmd(m.ctx, m.repo, tab)
}

func (m *DesignerModel) nudge(w models.Widget, key string) {
	g := w.Geometry
	switch key {
	case "left":
		g.X -= config.GridSnap
	case "right":
		g.X += config.GridSnap
	case "up":
		g.Y -= config.GridSnap
	case "down":
		g.Y += config.GridSnap
	}
	m.session.MoveWidget(w.ID, float64(g.X), float64(g.Y))
}

func (m *DesignerModel) stretch(w models.Widget, key string) {
	g := w.Geometry
	switch key {
	case "shift+left":
		g.Width -= config.GridSnap
	case "shift+right":
		g.Width += config.GridSnap
	case "shift+up":
		g.Height -= config.GridSnap
	case "shift+down":
		g.Height += config.GridSnap
	}
	m.session.ResizeWidget(w.ID, float64(g.Width), float64(g.Height), float64(g.X), float64(g.Y))
}

func (m *DesignerModel) cycleSelection() {
	widgets := m.session.Widgets()
	if len(widgets) == 0 {
		return
	}
	cur := m.session.Selection()
	next := 0
	for i, w := range widgets {
		if w.ID == cur {
			next = (i + 1) % len(widgets)
			break
		}
	}
	m.session.SelectWidget(widgets[next].ID)
}

func (m *DesignerModel) toggleChecked(w models.Widget) {
	m.session.UpdateProps(w.ID, func(p *models.Properties) {
		p.Checked = !p.Checked
	})
}

// overlapsAnother reports whether a widget sits within the collision buffer
// of any other widget. Overlap is advisory only.
func (m DesignerModel) overlapsAnother(w models.Widget) bool {
	others := make([]models.Widget, 0, len(m.session.Widgets()))
	for _, other := range m.session.Widgets() {
		if other.ID != w.ID {
			others = append(others, other)
		}
	}
	return canvas.DetectCollision(w.Geometry, others)
}

// primaryProp returns the text property the editor binds to for a type.
func primaryProp(w models.Widget) string {
	switch w.Type {
	case models.WidgetInput, models.WidgetTextarea:
		return w.Props.Placeholder
	case models.WidgetText:
		return w.Props.Content
	default:
		return w.Props.Label
	}
}

func (m *DesignerModel) applyPrimaryProp(w models.Widget, value string) {
	m.session.UpdateProps(w.ID, func(p *models.Properties) {
		switch w.Type {
		case models.WidgetInput, models.WidgetTextarea:
			p.Placeholder = value
		case models.WidgetText:
			p.Content = value
		default:
			p.Label = value
		}
	})
}
