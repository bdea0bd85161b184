// Package worlds provides the platformer for the terminal platform.
// It adapts a core.Run to the Reset/Step/Render/State game contract.
package worlds

import (
	"fmt"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Game implements the platformer on top of a core.Run.
type Game struct {
	catalog  *core.Catalog
	settings core.Settings
	start    int
	logger   *log.Logger

	run     *core.Run
	paused  bool
	logical platformcore.Rect // Playfield in level pixels
}

// Options configures a Game.
type Options struct {
	Catalog  *core.Catalog
	Settings core.Settings
	Start    int         // Index of the first level
	ScreenW  int         // Logical playfield width in pixels
	ScreenH  int         // Logical playfield height in pixels
	Logger   *log.Logger // nil disables event logging
}

// New creates a game. The run starts on Reset.
func New(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		opts.Catalog = core.BuiltinCatalog()
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		opts.ScreenW, opts.ScreenH = 600, 400
	}

	g := &Game{
		catalog:  opts.Catalog,
		settings: opts.Settings,
		start:    opts.Start,
		logger:   opts.Logger,
		logical:  platformcore.NewRect(0, 0, opts.ScreenW, opts.ScreenH),
	}

	// Fail on a bad start level now rather than on Reset
	if _, err := core.NewRunAt(g.catalog, g.settings, g.start); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "worlds"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Worlds"
}

// Reset starts a new run at the configured start level.
func (g *Game) Reset(_ platformcore.RuntimeConfig) {
	run, err := core.NewRunAt(g.catalog, g.settings, g.start)
	if err != nil {
		// Checked in New
		panic(err)
	}
	g.run = run
	g.paused = false

	if g.logger != nil {
		lvl := run.Level()
		g.logger.Info("run started", "level", lvl.ID, "name", lvl.Label(), "levels", run.LevelCount())
	}
}

// Step advances the run by one tick.
// Pause toggles on ActionPause; a paused or finished run does not tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.run == nil {
		g.Reset(platformcore.DefaultConfig())
	}

	if in.Has(platformcore.ActionPause) && !g.run.Phase().Terminal() {
		g.paused = !g.paused
	}
	if g.paused || g.run.Phase().Terminal() {
		return platformcore.StepResult{State: g.State()}
	}

	res := g.run.Tick(core.Input{
		Left:  in.Has(platformcore.ActionLeft),
		Right: in.Has(platformcore.ActionRight),
		Jump:  in.Has(platformcore.ActionJump),
	})

	events := make([]string, len(res.Events))
	for i, e := range res.Events {
		events[i] = e.String()
		g.logEvent(e)
	}

	return platformcore.StepResult{State: g.State(), Events: events}
}

func (g *Game) logEvent(e core.Event) {
	if g.logger == nil {
		return
	}
	switch e.Kind {
	case core.EventEnemyHit, core.EventHazardHit:
		g.logger.Debug(e.String(), "tick", g.run.Ticks())
	case core.EventLevelCleared:
		g.logger.Info(e.String(), "tick", g.run.Ticks(), "lives", e.Lives)
	default:
		g.logger.Info("run finished", "result", e.String(), "tick", g.run.Ticks())
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.run == nil {
		return platformcore.GameState{Lives: g.settings.Lives}
	}
	p := g.run.Player()
	phase := g.run.Phase()
	return platformcore.GameState{
		Score:    p.Score,
		Lives:    p.Lives,
		GameOver: phase.Terminal(),
		Won:      phase == core.PhaseVictory,
		Paused:   g.paused,
		Message:  g.run.Message(),
	}
}

// Run returns the underlying run, or nil before the first Reset.
func (g *Game) Run() *core.Run {
	return g.run
}

// levelLabel is the right-hand HUD text, e.g. "1-2 Underground (2/3)".
func levelLabel(f core.Frame, id string) string {
	return fmt.Sprintf("%s %s (%d/%d)", id, f.LevelName, f.LevelIndex+1, f.LevelCount)
}
