package canvas

import (
	"workbench/internal/config"
	"workbench/internal/models"
)

// Defaults returns the palette geometry and starting properties for a widget
// kind. Position is assigned by the session at placement time.
func Defaults(t models.WidgetType) (models.Geometry, models.Properties) {
	switch t {
	case models.WidgetInput:
		return models.Geometry{Width: 200, Height: 40}, models.Properties{
			Label:       "New Input",
			Placeholder: "Enter text",
		}
	case models.WidgetTextarea:
		return models.Geometry{Width: 300, Height: 100}, models.Properties{
			Label:       "New Text Area",
			Placeholder: "Enter text",
		}
	case models.WidgetButton:
		return models.Geometry{Width: 120, Height: 40}, models.Properties{
			Label: "New Button",
		}
	case models.WidgetSelect:
		return models.Geometry{Width: 200, Height: 40}, models.Properties{
			Label:       "New Select",
			Placeholder: "Choose...",
			Options:     []string{"Option 1", "Option 2", "Option 3"},
		}
	case models.WidgetCheckbox:
		return models.Geometry{Width: 200, Height: 40}, models.Properties{
			Label: "New Checkbox",
		}
	case models.WidgetText:
		return models.Geometry{Width: 200, Height: 40}, models.Properties{
			Content:    "New Text",
			FontSize:   16,
			FontFamily: "Arial",
			FontWeight: "normal",
			TextAlign:  "left",
		}
	default:
		return models.Geometry{Width: 200, Height: 40}, models.Properties{}
	}
}

// MinSize returns the per-type size floor enforced on resize.
func MinSize(t models.WidgetType) (int, int) {
	// One uniform floor today; per-type floors hang off this switch.
	switch t {
	default:
		return config.MinWidgetWidth, config.MinWidgetHeight
	}
}
