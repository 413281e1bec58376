package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "High Scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuItems = []MenuChoice{MenuPlay, MenuScores, MenuQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	best     int
	selected MenuChoice
}

// NewMenuModel creates a new menu model. best is shown under the title when positive.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		best:   best,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.selected = MenuQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = core.Clamp(m.cursor-1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Down):
			m.cursor = core.Clamp(m.cursor+1, 0, len(menuItems)-1)
		case key.Matches(msg, m.keys.Scores):
			m.selected = MenuScores
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.selected = menuItems[m.cursor]
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != MenuNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorActor)))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorGlow)))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G E O M E T R Y   R U S H"), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(subtleStyle.Render(fmt.Sprintf("best run: %dm", m.best)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.String()
		if i == m.cursor {
			line = activeStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or MenuNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
