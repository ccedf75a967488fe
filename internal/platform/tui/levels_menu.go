package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/niwa/internal/levels"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level string // empty = start from the beginning
}

// LevelMenuModel is the level picker for the campaign.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keys         KeyMap
	theme        Theme
	levels       []levels.Level
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLevelMenuModel creates a level picker over lvls.
func NewLevelMenuModel(lvls []levels.Level, keys KeyMap, theme Theme, width, height int) LevelMenuModel {
	return LevelMenuModel{
		width:    width,
		height:   height,
		keys:     keys,
		theme:    theme,
		levels:   lvls,
		choosing: true,
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor > 0 {
			m.selection = LevelSelection{Level: m.levels[m.cursor-1].ID}
		}
	case MenuActionBack:
		m.back = true
	}

	return m, nil
}

func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	// Row 0 is "Start from Beginning", level i sits on row i+1.
	row := max(m.cursor-1, 0)
	visible := m.visibleItems()

	if row < m.scrollOffset {
		m.scrollOffset = row
	} else if row >= m.scrollOffset+visible {
		m.scrollOffset = row - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("N I W A"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if m.scrollOffset == 0 {
		b.WriteString(centerText(m.item(0, "Start from Beginning"), m.width))
		b.WriteString("\n")
	}

	endIdx := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	for i := m.scrollOffset; i < endIdx; i++ {
		lvl := m.levels[i]
		name := lvl.Name
		if name == "" {
			name = lvl.ID
		}
		b.WriteString(centerText(m.item(i+1, fmt.Sprintf("%2d. %s", i+1, name)), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	if m.cursor > 0 {
		if hint := m.levels[m.cursor-1].Hint(); hint != "" {
			b.WriteString("\n")
			b.WriteString(centerText(m.theme.MenuDescription.Render(hint), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(m.theme.HelpText.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m LevelMenuModel) item(idx int, label string) string {
	if idx == m.cursor {
		return m.theme.MenuItemActive.Render("> " + label)
	}
	return m.theme.MenuItemNormal.Render("  " + label)
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}
