package tui

import "github.com/vovakirdan/tui-worlds/internal/core"

// HeldKeys emulates held controls on terminals, which report key presses
// and auto-repeats but never releases. A press keeps its action held for a
// fixed number of ticks; auto-repeat refreshes it.
type HeldKeys struct {
	ttl       int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker that holds each press for ttl ticks.
func NewHeldKeys(ttl int) *HeldKeys {
	if ttl <= 0 {
		ttl = 1
	}
	return &HeldKeys{
		ttl:       ttl,
		remaining: make(map[core.Action]int),
	}
}

// Press marks an action held. Walking one way releases the other.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.ttl
}

// Held reports whether an action is currently held.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Sample adds every held action to the frame and ages the table by one tick.
func (h *HeldKeys) Sample(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
}
