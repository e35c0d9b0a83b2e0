package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Header         lipgloss.Style
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	Widget         lipgloss.Style
	WidgetSelected lipgloss.Style
	WidgetClash    lipgloss.Style
	NoteTitle      lipgloss.Style
	NoteBody       lipgloss.Style
	NoteDone       lipgloss.Style
	NoteOverdue    lipgloss.Style
	PriorityHigh   lipgloss.Style
	PriorityMed    lipgloss.Style
	PriorityLow    lipgloss.Style
	Today          lipgloss.Style
	Input          lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		TabActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 2),
		TabInactive:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2),
		Widget:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		WidgetSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		WidgetClash:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		NoteTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		NoteBody:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		NoteDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		NoteOverdue:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		PriorityMed:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Today:          lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),                                                                   // Purple
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		TabActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 2),         // Pink
		TabInactive:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 2),                     // Comment
		Widget:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),                                  // White
		WidgetSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		WidgetClash:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		NoteTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		NoteBody:       lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
		NoteDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		NoteOverdue:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
		PriorityMed:    lipgloss.NewStyle().Foreground(lipgloss.Color("228")),            // Yellow
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Grey
		Today:          lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),  // Blue
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
