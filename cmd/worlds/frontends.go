package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/platform/headless"
	"github.com/vovakirdan/tui-worlds/internal/platform/tui"
	"github.com/vovakirdan/tui-worlds/internal/platform/window"
	"github.com/vovakirdan/tui-worlds/internal/registry"
)

func init() {
	registry.Register(terminalFrontend{})
	registry.Register(windowFrontend{})
	registry.Register(headlessFrontend{})
}

// terminalFrontend plays in the terminal through Bubble Tea.
type terminalFrontend struct{}

func (terminalFrontend) Name() string        { return "terminal" }
func (terminalFrontend) Description() string { return "Play in the terminal (default)" }

func (terminalFrontend) Play(ctx context.Context, s registry.Session) (core.Outcome, error) {
	game, err := worlds.New(worlds.Options{
		Catalog:  s.Catalog,
		Settings: worlds.Settings(s.Config),
		Start:    s.Start,
		ScreenW:  s.Config.Screen.Width,
		ScreenH:  s.Config.Screen.Height,
		Logger:   s.Logger,
	})
	if err != nil {
		return core.OutcomeQuit, err
	}

	width, height := terminalSize()
	cfg := platformcore.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.Config.TickRate,
	}

	state, err := tui.Run(ctx, game, cfg, tui.Options{
		EndScreen:     s.Config.EndScreen(),
		HoldTicks:     s.Config.Input.HoldTicks,
		ScreenshotDir: expandPath("~/.worlds/screenshots"),
		Logger:        s.Logger,
	})
	if err != nil {
		return core.OutcomeQuit, err
	}
	return outcomeOf(state), nil
}

// windowFrontend plays in a desktop window through Ebitengine.
type windowFrontend struct{}

func (windowFrontend) Name() string        { return "window" }
func (windowFrontend) Description() string { return "Play in a desktop window" }

func (windowFrontend) Play(ctx context.Context, s registry.Session) (core.Outcome, error) {
	run, err := core.NewRunAt(s.Catalog, worlds.Settings(s.Config), s.Start)
	if err != nil {
		return core.OutcomeQuit, err
	}
	return window.Run(ctx, run, window.Options{
		Loop:   worlds.LoopConfig(s.Config),
		Width:  s.Config.Screen.Width,
		Height: s.Config.Screen.Height,
		Logger: s.Logger,
	})
}

// headlessFrontend plays an input script without a display.
type headlessFrontend struct{}

func (headlessFrontend) Name() string        { return "headless" }
func (headlessFrontend) Description() string { return "Play an input script without a display" }

func (headlessFrontend) Play(ctx context.Context, s registry.Session) (core.Outcome, error) {
	if s.Script == "" {
		return core.OutcomeQuit, fmt.Errorf("headless frontend needs an input script")
	}
	script, err := headless.LoadScript(s.Script)
	if err != nil {
		return core.OutcomeQuit, err
	}
	run, err := core.NewRunAt(s.Catalog, worlds.Settings(s.Config), s.Start)
	if err != nil {
		return core.OutcomeQuit, err
	}

	res, err := headless.Play(ctx, run, script, worlds.LoopConfig(s.Config), s.Logger)
	if err != nil {
		return res.Outcome, err
	}
	if s.Logger != nil {
		s.Logger.Info("simulation finished",
			"outcome", res.Outcome,
			"ticks", res.Ticks,
			"level", res.Level,
			"lives", res.Lives,
			"hash", fmt.Sprintf("%016x", res.Snapshot.Hash()),
		)
	}
	return res.Outcome, nil
}

// outcomeOf maps the terminal game state to a run outcome.
func outcomeOf(state platformcore.GameState) core.Outcome {
	switch {
	case !state.GameOver:
		return core.OutcomeQuit
	case state.Won:
		return core.OutcomeVictory
	default:
		return core.OutcomeDefeat
	}
}

// terminalSize returns the terminal size, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
