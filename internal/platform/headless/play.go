package headless

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Result summarises a headless session.
type Result struct {
	Outcome  core.Outcome
	Ticks    uint64
	Frames   int
	Level    string
	Lives    int
	Message  string
	Snapshot core.Snapshot
}

// Play runs script against run through a core.Loop.
func Play(ctx context.Context, run *core.Run, script Script, cfg core.LoopConfig, logger *log.Logger) (Result, error) {
	p := NewPresenter(script, logger)
	loop := core.NewLoop(run, p, cfg)
	if logger != nil {
		loop.OnTick(func(r core.TickResult) {
			for _, e := range r.Events {
				logger.Debug("event", "tick", run.Ticks(), "event", e.String())
			}
		})
	}

	outcome, err := loop.Run(ctx)
	return Result{
		Outcome:  outcome,
		Ticks:    run.Ticks(),
		Frames:   p.Frames(),
		Level:    run.Level().ID,
		Lives:    run.Player().Lives,
		Message:  p.EndMessage(),
		Snapshot: run.Snapshot(),
	}, err
}
