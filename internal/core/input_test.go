package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionJump)
	f.Set(ActionNone)

	tests := []struct {
		action Action
		want   bool
	}{
		{ActionNone, false},
		{ActionLeft, true},
		{ActionRight, false},
		{ActionJump, true},
		{ActionPause, false},
		{ActionQuit, false},
	}
	for _, tt := range tests {
		if got := f.Has(tt.action); got != tt.want {
			t.Errorf("Has(%v) = %v, want %v", tt.action, got, tt.want)
		}
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions set")
	}
	if !clone.Has(ActionLeft) || !clone.Has(ActionJump) {
		t.Error("Clone() shares state with the original")
	}
}

func TestNewInputFrame(t *testing.T) {
	f := NewInputFrame(ActionRight, ActionPause)
	if !f.Has(ActionRight) || !f.Has(ActionPause) || f.Has(ActionLeft) {
		t.Errorf("NewInputFrame() = %+v", f)
	}
	if !NewInputFrame().Empty() {
		t.Error("NewInputFrame() with no actions should be empty")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionJump, "Jump"},
		{ActionQuit, "Quit"},
		{Action(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
