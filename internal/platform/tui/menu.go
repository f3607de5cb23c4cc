package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// MenuModel is the Bubble Tea model for the avatar picker shown before play.
type MenuModel struct {
	avatars        []runner.Avatar
	best           map[string]int // Best score per avatar name
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *runner.Avatar
	openScoreboard bool
}

// NewMenuModel creates a menu with the cursor on current.
// store may be nil; best scores are then not shown.
func NewMenuModel(store *storage.Store, current runner.AvatarID, width, height int) MenuModel {
	m := MenuModel{
		avatars:   runner.Avatars(),
		best:      map[string]int{},
		cursor:    int(current.Info().ID),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		if stats, err := store.AllStats(); err == nil {
			for name, st := range stats {
				m.best[name] = st.HighScore
			}
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + len(m.avatars) - 1) % len(m.avatars)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.avatars)

	case MenuActionSelect:
		selected := m.avatars[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  R U N N E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick your runner", m.width))
	b.WriteString("\n\n")

	for i, av := range m.avatars {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		swatch := Swatch(av.Color, av.Glyph, 3)

		best := dimStyle.Render("   -")
		if score, ok := m.best[av.Name]; ok {
			best = fmt.Sprintf("%4d", score)
		}

		line := fmt.Sprintf("%s%s  %-6s  best %s", cursor, swatch, av.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Choose  |  Enter: Run  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen avatar, or nil if none was chosen.
func (m MenuModel) Selected() *runner.Avatar {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (int, int) {
	return m.width, m.height
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Avatar          runner.AvatarID
	Width, Height   int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the avatar picker and returns the selection result.
func RunMenu(store *storage.Store, current runner.AvatarID, width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, current, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Avatar: current, Width: width, Height: height}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Avatar: current, Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{Avatar: current}
	result.Width, result.Height = m.Size()

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Avatar = m.Selected().ID
	}
	return result, nil
}
