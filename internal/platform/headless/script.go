// Package headless plays a run without a display, driving input from a
// scripted sequence of held controls.
package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

// Step holds a set of controls for a number of ticks.
type Step struct {
	Ticks int  `yaml:"ticks"`
	Left  bool `yaml:"left,omitempty"`
	Right bool `yaml:"right,omitempty"`
	Jump  bool `yaml:"jump,omitempty"`
}

// Script is a scripted play session.
type Script struct {
	// QuitAfter stops the session after this many ticks.
	// Zero means stop when the steps run out.
	QuitAfter int    `yaml:"quit_after,omitempty"`
	Steps     []Step `yaml:"steps"`
}

// Len returns the number of ticks covered by the steps.
func (s Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// Limit returns the tick after which the session quits.
func (s Script) Limit() int {
	if s.QuitAfter > 0 {
		return s.QuitAfter
	}
	return s.Len()
}

// Validate checks that step durations are positive.
func (s Script) Validate() error {
	if s.QuitAfter < 0 {
		return fmt.Errorf("invalid script: quit_after must be >= 0, got %d", s.QuitAfter)
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return fmt.Errorf("invalid script: step %d: ticks must be positive, got %d", i, st.Ticks)
		}
	}
	if s.Limit() == 0 {
		return fmt.Errorf("invalid script: no steps and no quit_after")
	}
	return nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// IdleScript holds no controls for n ticks.
func IdleScript(n int) Script {
	return Script{QuitAfter: n}
}

// inputAt returns the controls held on tick i (zero-based).
func (s Script) inputAt(i int) core.Input {
	for _, st := range s.Steps {
		if i < st.Ticks {
			return core.Input{Left: st.Left, Right: st.Right, Jump: st.Jump}
		}
		i -= st.Ticks
	}
	return core.Input{}
}
