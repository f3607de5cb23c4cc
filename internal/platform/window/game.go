// Package window hosts the runner in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var sky = color.RGBA{R: 14, G: 16, B: 24, A: 255}

// binding ties keys to one action.
type binding struct {
	keys   []ebiten.Key
	action core.Action
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}, core.ActionJump},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyTab}, core.ActionAvatar},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, core.ActionQuit},
}

// Options configures the window.
type Options struct {
	Width  int
	Height int
	TPS    int
	Title  string
	Logger *log.Logger
}

// Game implements ebiten.Game around a runner controller.
type Game struct {
	ctrl   *runner.Controller
	ticket runner.Ticket
	input  core.InputFrame
	width  int
	height int
	logger *log.Logger
}

// NewGame creates a game for ctrl.
func NewGame(ctrl *runner.Controller, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{ctrl: ctrl, input: core.NewInputFrame(), logger: logger}
}

// Update applies input and advances the live run by one frame.
func (g *Game) Update() error {
	now := time.Now()

	g.input.Clear()
	collectInput(&g.input)
	if g.input.Has(core.ActionQuit) {
		g.ctrl.Loop().Stop()
		return ebiten.Termination
	}
	if !g.input.Empty() {
		if ticket, ok := g.ctrl.HandleFrame(g.input, now); ok {
			g.ticket = ticket
		}
	}

	if g.ctrl.Loop().Active(g.ticket) && !g.ctrl.Loop().Frame(g.ticket, now) {
		g.ticket = runner.NoTicket
	}
	return nil
}

// collectInput records the actions whose keys went down this tick. A left
// click or touch counts as a jump.
func collectInput(frame *core.InputFrame) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		frame.Set(core.ActionJump)
	}
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(sky)
	g.ctrl.Draw(NewCanvas(screen))
}

// Layout follows the window size so the world always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ctrl.Session().SetLayout(float64(outsideWidth), float64(outsideHeight))
		g.logger.Debug("layout", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and plays ctrl until it is closed.
func Run(ctrl *runner.Controller, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	if opts.Title == "" {
		opts.Title = "runner"
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(NewGame(ctrl, opts))
	ctrl.Loop().Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
