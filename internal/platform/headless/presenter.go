package headless

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Presenter implements core.Presenter from a Script.
// It keeps the last frame instead of drawing it.
type Presenter struct {
	script Script
	limit  int
	logger *log.Logger

	tick     int
	frames   int
	last     core.Frame
	endShown string
}

// NewPresenter creates a presenter playing script. A nil logger disables logging.
func NewPresenter(script Script, logger *log.Logger) *Presenter {
	return &Presenter{
		script: script,
		limit:  script.Limit(),
		logger: logger,
	}
}

// PollEvents reports a quit once the script limit is reached.
func (p *Presenter) PollEvents() core.Events {
	return core.Events{Quit: p.tick >= p.limit}
}

// InputState returns the scripted controls for the next tick.
func (p *Presenter) InputState() core.Input {
	in := p.script.inputAt(p.tick)
	p.tick++
	return in
}

// RenderFrame records f.
func (p *Presenter) RenderFrame(f core.Frame) {
	p.last = f
}

// Present counts presented frames.
func (p *Presenter) Present() {
	p.frames++
	if p.logger != nil && p.frames%600 == 0 {
		p.logger.Debug("frames presented", "frames", p.frames, "level", p.last.LevelName)
	}
}

// ShowEndScreen records the end message.
func (p *Presenter) ShowEndScreen(message string) {
	p.endShown = message
	if p.logger != nil {
		p.logger.Info("end screen", "message", message, "frames", p.frames)
	}
}

// Frames returns the number of frames presented.
func (p *Presenter) Frames() int { return p.frames }

// LastFrame returns the most recently rendered frame.
func (p *Presenter) LastFrame() core.Frame { return p.last }

// EndMessage returns the end screen message, or "" if none was shown.
func (p *Presenter) EndMessage() string { return p.endShown }

var _ core.Presenter = (*Presenter)(nil)
