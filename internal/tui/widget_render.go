package tui

import (
	"fmt"
	"strings"

	"workbench/internal/models"
)

// renderWidgetLabel returns the one-line textual face of a widget, sized to
// fit its cell width on the design surface. Unknown types render as nothing.
func renderWidgetLabel(w models.Widget, cols int) string {
	if cols < 2 {
		cols = 2
	}
	inner := cols - 2
	switch w.Type {
	case models.WidgetInput:
		text := w.Props.Placeholder
		if text == "" {
			text = "input"
		}
		return "[" + pad(truncate(text, inner), inner) + "]"
	case models.WidgetTextarea:
		text := w.Props.Placeholder
		if text == "" {
			text = "textarea"
		}
		return "[" + pad(truncate("¶ "+text, inner), inner) + "]"
	case models.WidgetButton:
		text := w.Props.Label
		if text == "" {
			text = "Button"
		}
		return "(" + center(truncate(text, inner), inner) + ")"
	case models.WidgetSelect:
		text := w.Props.Label
		if text == "" && len(w.Props.Options) > 0 {
			text = w.Props.Options[0]
		}
		return "[" + pad(truncate(text, inner-1), inner-1) + "▾]"
	case models.WidgetCheckbox:
		mark := " "
		if w.Props.Checked {
			mark = "x"
		}
		return fmt.Sprintf("[%s] %s", mark, truncate(w.Props.Label, cols-4))
	case models.WidgetText:
		text := w.Props.Content
		if text == "" {
			text = "Text"
		}
		return truncate(text, cols)
	}
	return ""
}

// widgetStatusLine describes the selected widget for the footer.
func widgetStatusLine(w models.Widget) string {
	g := w.Geometry
	return fmt.Sprintf("%s %s", w.Type, FormatGeometry(g.X, g.Y, g.Width, g.Height, g.Rotation))
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func center(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}
