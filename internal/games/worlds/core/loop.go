package core

import (
	"context"
	"time"
)

// DefaultTickRate is the target simulation rate in ticks per second.
const DefaultTickRate = 60

// DefaultEndScreen is how long the end-of-run screen stays up.
const DefaultEndScreen = 3 * time.Second

// Events are the window/terminal events drained once per tick.
type Events struct {
	Quit bool
}

// Presenter draws frames and supplies input for a Loop.
// All calls happen on the loop's goroutine, one tick at a time.
type Presenter interface {
	// PollEvents drains pending events and reports a quit request.
	PollEvents() Events
	// InputState samples the controls currently held.
	InputState() Input
	// RenderFrame draws the given frame.
	RenderFrame(f Frame)
	// Present commits the rendered frame to the display.
	Present()
	// ShowEndScreen displays the end-of-run message.
	ShowEndScreen(message string)
}

// Outcome is how a Loop finished.
type Outcome int

const (
	OutcomeQuit Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// LoopConfig tunes the frame gate and the end screen.
type LoopConfig struct {
	TickRate  int           // Ticks per second; <= 0 means DefaultTickRate
	EndScreen time.Duration // Hold time for the end screen
}

// Loop drives a Run against a Presenter at a fixed tick rate.
// The ticker gate is the only place the loop waits between ticks.
type Loop struct {
	run       *Run
	presenter Presenter
	interval  time.Duration
	endScreen time.Duration
	onTick    func(TickResult)
}

// NewLoop creates a loop for the given run and presenter.
func NewLoop(run *Run, presenter Presenter, cfg LoopConfig) *Loop {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return &Loop{
		run:       run,
		presenter: presenter,
		interval:  time.Second / time.Duration(rate),
		endScreen: cfg.EndScreen,
	}
}

// OnTick registers a callback that observes every tick result.
func (l *Loop) OnTick(fn func(TickResult)) {
	l.onTick = fn
}

// Run ticks until the run ends, the presenter asks to quit, or ctx is done.
func (l *Loop) Run(ctx context.Context) (Outcome, error) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return OutcomeQuit, ctx.Err()
		case <-ticker.C:
		}

		if l.presenter.PollEvents().Quit {
			return OutcomeQuit, nil
		}

		result := l.run.Tick(l.presenter.InputState())
		if l.onTick != nil {
			l.onTick(result)
		}

		l.presenter.RenderFrame(l.run.Frame())
		l.presenter.Present()

		if result.Phase.Terminal() {
			l.presenter.ShowEndScreen(l.run.Message())
			outcome := OutcomeDefeat
			if result.Phase == PhaseVictory {
				outcome = OutcomeVictory
			}
			return outcome, hold(ctx, l.endScreen)
		}
	}
}

// hold blocks for d or until ctx is done.
func hold(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
