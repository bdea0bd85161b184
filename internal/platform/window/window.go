// Package window runs a platformer run in a desktop window using Ebitengine.
// Ebitengine owns the frame gate: Update is called TickRate times per second
// and each call advances the run by exactly one tick.
package window

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Default logical canvas size; levels are authored in these coordinates.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Title is the window title.
const Title = "Worlds"

// keyFunc reports whether a key is currently down (or was just pressed).
type keyFunc func(ebiten.Key) bool

// Options configures a window session.
type Options struct {
	Loop          core.LoopConfig
	Width, Height int         // Logical canvas; <= 0 means the defaults
	Logger        *log.Logger // nil uses the default logger
}

// Game adapts a core.Run to the ebiten.Game interface.
type Game struct {
	ctx    context.Context
	run    *core.Run
	logger *log.Logger
	width  int
	height int

	frame   core.Frame
	endHold int // ticks the end screen stays up
	endLeft int
	ending  bool
	quit    bool

	pressed     keyFunc
	justPressed keyFunc
	closing     func() bool
}

// NewGame wraps run for display in a window.
func NewGame(ctx context.Context, run *core.Run, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	return &Game{
		ctx:         ctx,
		run:         run,
		logger:      opts.Logger,
		width:       opts.Width,
		height:      opts.Height,
		frame:       run.Frame(),
		endHold:     holdTicks(opts.Loop.EndScreen, opts.Loop.TickRate),
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		closing:     ebiten.IsWindowBeingClosed,
	}
}

// Update advances the run by one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.closing() || quitRequested(g.justPressed) {
		g.quit = !g.ending
		return ebiten.Termination
	}

	if g.ending {
		g.endLeft--
		if g.endLeft <= 0 {
			return ebiten.Termination
		}
		return nil
	}

	result := g.run.Tick(readInput(g.pressed))
	for _, e := range result.Events {
		g.logger.Debug("event", "tick", g.run.Ticks(), "event", e.String())
	}
	g.frame = g.run.Frame()

	if result.Phase.Terminal() {
		g.logger.Info("run finished", "phase", result.Phase, "ticks", g.run.Ticks())
		g.ending = true
		g.endLeft = g.endHold
		if g.endLeft <= 0 {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw paints the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.frame, g.width, g.height)
}

// Layout keeps the logical canvas fixed; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Outcome reports how the window session ended.
func (g *Game) Outcome() core.Outcome {
	if g.quit {
		return core.OutcomeQuit
	}
	switch g.run.Phase() {
	case core.PhaseVictory:
		return core.OutcomeVictory
	case core.PhaseDefeat:
		return core.OutcomeDefeat
	default:
		return core.OutcomeQuit
	}
}

// Run opens a window and plays run until it ends or the window is closed.
func Run(ctx context.Context, run *core.Run, opts Options) (core.Outcome, error) {
	g := NewGame(ctx, run, opts)

	rate := opts.Loop.TickRate
	if rate <= 0 {
		rate = core.DefaultTickRate
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(rate)

	g.logger.Info("window opened", "tps", rate)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return core.OutcomeQuit, err
	}
	if err := ctx.Err(); err != nil {
		return core.OutcomeQuit, err
	}
	return g.Outcome(), nil
}

// readInput samples the movement keys.
func readInput(pressed keyFunc) core.Input {
	return core.Input{
		Left:  pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
		Jump:  pressed(ebiten.KeySpace) || pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
	}
}

func quitRequested(justPressed keyFunc) bool {
	return justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ)
}

// holdTicks converts the end screen duration into whole ticks.
func holdTicks(d time.Duration, rate int) int {
	if d <= 0 {
		return 0
	}
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	n := int(d * time.Duration(rate) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

var _ ebiten.Game = (*Game)(nil)

