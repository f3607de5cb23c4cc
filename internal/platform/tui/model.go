package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Options configures a game model.
type Options struct {
	TickRate      int
	Width         int // Initial terminal columns
	Height        int // Initial terminal rows
	Viewport      config.ViewportConfig
	ScreenshotDir string // Empty means ~/.runner/screenshots
	Embedded      bool   // Back hands control to a parent model instead of quitting
	Logger        *log.Logger
}

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	ctrl     *runner.Controller
	screen   *core.Screen
	canvas   *Canvas
	keys     *KeyMapper
	opts     Options
	logger   *log.Logger
	quitting bool
	back     bool
}

// NewModel creates a game model for ctrl sized to the terminal.
func NewModel(ctrl *runner.Controller, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(opts.Width, opts.Height)
	canvas := NewCanvas(screen, opts.Viewport.CellWidth, opts.Viewport.CellHeight)
	ctrl.Session().SetLayout(canvas.Size())

	return Model{
		ctrl:   ctrl,
		screen: screen,
		canvas: canvas,
		keys:   NewKeyMapper(),
		opts:   opts,
		logger: logger,
	}
}

// Init shows the idle screen; the first key starts a run.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("runner")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &frame) {
		m.ctrl.Loop().Stop()
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionBack) {
		if m.ctrl.Session().State() != runner.StateRunning {
			m.back = true
			if m.opts.Embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		return m, nil
	}

	if ticket, ok := m.ctrl.HandleFrame(frame, time.Now()); ok {
		return m, tickCmd(m.opts.TickRate, ticket)
	}
	return m, nil
}

// handleResize re-lays out the world without resetting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.ctrl.Session().SetLayout(m.canvas.Size())
	return m, nil
}

// handleTick runs one frame. Ticks from a stopped or replaced run are
// dropped without scheduling another.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Loop().Frame(msg.Ticket, msg.Time) {
		return m, tickCmd(m.opts.TickRate, msg.Ticket)
	}
	return m, nil
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.ctrl.Draw(m.canvas)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.render()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".runner", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays ctrl in the terminal until the user quits or goes back.
// Returns true when the user asked to go back to the menu.
func Run(ctrl *runner.Controller, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(ctrl, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	ctrl.Loop().Stop()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
