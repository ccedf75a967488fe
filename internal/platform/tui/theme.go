package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/niwa/internal/core"
)

// Theme contains the visual styles of the terminal front-end.
type Theme struct {
	// Board colours keyed by semantic screen colour
	Cells map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	HelpText        lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// DefaultTheme returns the default garden palette.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:   lipgloss.NewStyle(),
			core.ColorGrass:     fg("34"),  // Green
			core.ColorDirt:      fg("137"), // Brown
			core.ColorSand:      fg("223"), // Pale yellow
			core.ColorStone:     fg("245"), // Gray
			core.ColorWater:     fg("39"),  // Blue
			core.ColorRock:      fg("250"),
			core.ColorActor:     fg("226").Bold(true),
			core.ColorPlant:     fg("107"),
			core.ColorBloom:     fg("205").Bold(true), // Pink
			core.ColorVirgin:    fg("255"),
			core.ColorExhausted: fg("214"), // Orange
			core.ColorComplete:  fg("46"),  // Lime
			core.ColorTrace:     fg("51"),  // Cyan
			core.ColorHUD:       fg("51").Bold(true),
			core.ColorDim:       fg("240"),
		},

		MenuTitle:       fg("46").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
		HelpText:        fg("241"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor colour
// support.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	for c := range theme.Cells {
		theme.Cells[c] = lipgloss.NewStyle()
	}
	theme.Cells[core.ColorActor] = lipgloss.NewStyle().Bold(true)
	theme.Cells[core.ColorTrace] = lipgloss.NewStyle().Reverse(true)
	theme.Cells[core.ColorDim] = fg("240")
	return theme
}

// ThemeByName returns a named theme and whether the name was known.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	default:
		return DefaultTheme(), false
	}
}

// Style returns the style for a screen colour, falling back to plain text.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
