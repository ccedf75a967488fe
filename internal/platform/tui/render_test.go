package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/niwa/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '@', core.ColorActor)
	s.DrawTextColored(0, 1, "~~~", core.ColorWater)

	out := RenderScreen(s, DefaultTheme())
	lines := splitLines(out)

	assert.Len(t, lines, 2)
	assert.Equal(t, 6, lipgloss.Width(lines[0]))
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "~~~")
}

func TestThemeByName(t *testing.T) {
	_, ok := ThemeByName("mono")
	assert.True(t, ok)
	_, ok = ThemeByName("")
	assert.True(t, ok)
	_, ok = ThemeByName("sepia")
	assert.False(t, ok)
}

func TestThemeStyleFallback(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, "x", theme.Style(core.Color(200)).Render("x"))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
