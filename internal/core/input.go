package core

// Action is a semantic control, decoupled from the keys that trigger it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // walk left
	ActionRight          // walk right
	ActionJump           // jump when grounded
	ActionPause          // toggle pause
	ActionConfirm        // pick an entry in a list
	ActionQuit           // leave the game
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionJump:    "Jump",
	ActionPause:   "Pause",
	ActionConfirm: "Confirm",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one tick.
// The zero value is an empty frame; frames are plain values and copy freely.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action active. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether an action is active.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear deactivates every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
