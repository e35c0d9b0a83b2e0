package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"workbench/internal/canvas"
	"workbench/internal/config"
	"workbench/internal/models"
)

// Cell paint classes for the canvas buffer.
const (
	paintNone = iota
	paintWidget
	paintSelected
	paintClash
)

type canvasCell struct {
	ch    rune
	paint int
}

func (m DesignerModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderPalette())
	b.WriteString("\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(CurrentTheme.Border)
	b.WriteString(frame.Render(m.renderCanvas()))
	b.WriteString("\n")

	if m.editing {
		b.WriteString(CurrentTheme.Focused.Render("edit: ") + m.propInput.View())
	} else {
		b.WriteString(m.renderFooter())
	}
	return b.String()
}

func (m DesignerModel) renderPalette() string {
	parts := make([]string, 0, len(models.KnownWidgetTypes)+1)
	if tab, ok := m.currentTab(); ok {
		label := tab.Label
		if m.dirty {
			label += "*"
		}
		parts = append(parts, CurrentTheme.Header.Render(label)+" ")
	}
	for i, t := range models.KnownWidgetTypes {
		entry := string(t)
		if i == m.paletteIdx {
			entry = CurrentTheme.Focused.Render("[" + entry + "]")
		} else {
			entry = CurrentTheme.Dim.Render(" " + entry + " ")
		}
		parts = append(parts, entry)
	}
	if len(m.templates) > 0 && m.tplIdx < len(m.templates) {
		parts = append(parts, CurrentTheme.Dim.Render(fmt.Sprintf("  tpl %d/%d: %s",
			m.tplIdx+1, len(m.templates), m.templates[m.tplIdx].Name)))
	}
	return strings.Join(parts, "")
}

// renderCanvas paints every widget into a cell buffer and assembles styled
// rows. One cell covers PxPerColumn x PxPerRow logical pixels.
func (m DesignerModel) renderCanvas() string {
	cols := config.CanvasWidth / config.PxPerColumn
	rows := config.CanvasHeight / config.PxPerRow

	grid := make([][]canvasCell, rows)
	for y := range grid {
		grid[y] = make([]canvasCell, cols)
		for x := range grid[y] {
			grid[y][x] = canvasCell{ch: ' '}
		}
	}

	widgets := m.session.Widgets()
	for _, w := range widgets {
		paint := paintWidget
		if !m.preview {
			if w.ID == m.session.Selection() {
				paint = paintSelected
			}
			if m.overlapsAnother(w) {
				paint = paintClash
			}
		}
		m.paintWidget(grid, w, paint)
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderRow(row))
	}
	return b.String()
}

// paintWidget stamps a widget's cell rectangle: box outline when it is tall
// enough, label on the middle row.
func (m DesignerModel) paintWidget(grid [][]canvasCell, w models.Widget, paint int) {
	g := w.Geometry
	cx := g.X / config.PxPerColumn
	cy := g.Y / config.PxPerRow
	cw := max(1, g.Width/config.PxPerColumn)
	ch := max(1, g.Height/config.PxPerRow)

	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	label := renderWidgetLabel(w, cw)
	if g.Rotation != 0 {
		label = "∠" + label
	}
	labelRow := cy + ch/2

	for y := cy; y < cy+ch && y < rows; y++ {
		for x := cx; x < cx+cw && x < cols; x++ {
			c := canvasCell{ch: ' ', paint: paint}
			if ch >= 2 {
				switch {
				case y == cy && x == cx:
					c.ch = '┌'
				case y == cy && x == cx+cw-1:
					c.ch = '┐'
				case y == cy+ch-1 && x == cx:
					c.ch = '└'
				case y == cy+ch-1 && x == cx+cw-1:
					c.ch = '┘'
				case y == cy || y == cy+ch-1:
					c.ch = '─'
				case x == cx || x == cx+cw-1:
					c.ch = '│'
				}
			}
			grid[y][x] = c
		}
	}

	runes := []rune(label)
	for i, r := range runes {
		x := cx + i
		if x >= cols || labelRow >= rows || x >= cx+cw {
			break
		}
		grid[labelRow][x] = canvasCell{ch: r, paint: paint}
	}
}

// renderRow groups consecutive cells with the same paint class into one
// styled run.
func renderRow(row []canvasCell) string {
	var b strings.Builder
	start := 0
	for start < len(row) {
		end := start
		for end < len(row) && row[end].paint == row[start].paint {
			end++
		}
		var run strings.Builder
		for _, c := range row[start:end] {
			run.WriteRune(c.ch)
		}
		switch row[start].paint {
		case paintSelected:
			b.WriteString(CurrentTheme.WidgetSelected.Render(run.String()))
		case paintClash:
			b.WriteString(CurrentTheme.WidgetClash.Render(run.String()))
		case paintWidget:
			b.WriteString(CurrentTheme.Widget.Render(run.String()))
		default:
			b.WriteString(run.String())
		}
		start = end
	}
	return b.String()
}

func (m DesignerModel) renderFooter() string {
	if m.preview {
		return CurrentTheme.Dim.Render("preview · {/} switch tab · v edit")
	}
	if m.session.GestureActive() {
		g := m.session.ActiveGesture()
		verb := "drag"
		switch g.Kind {
		case canvas.GestureResize:
			verb = "resize"
		case canvas.GestureRotate:
			verb = "rotate"
		}
		return CurrentTheme.Focused.Render(fmt.Sprintf("%s %s…", verb, shortID(g.WidgetID)))
	}
	if m.status != "" {
		return CurrentTheme.Dim.Render(m.status)
	}
	if w, ok := m.session.Selected(); ok {
		return CurrentTheme.Dim.Render(widgetStatusLine(w))
	}
	return CurrentTheme.Dim.Render("a add · c cycle · e edit · d delete · drag move · shift+drag resize · alt+drag rotate · (/) tpl · L apply · X del tpl · ctrl+s save")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
