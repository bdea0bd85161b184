package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

type fakeFrontend struct {
	name    string
	outcome core.Outcome
	got     Session
}

func (f *fakeFrontend) Name() string        { return f.name }
func (f *fakeFrontend) Description() string { return "fake " + f.name }

func (f *fakeFrontend) Play(_ context.Context, s Session) (core.Outcome, error) {
	f.got = s
	return f.outcome, nil
}

func TestRegisterAndGet(t *testing.T) {
	fe := &fakeFrontend{name: "test-get", outcome: core.OutcomeVictory}
	Register(fe)

	if !Exists("test-get") {
		t.Fatal("Exists() = false after Register")
	}

	got, err := Get("test-get")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	outcome, err := got.Play(context.Background(), Session{Start: 2})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if outcome != core.OutcomeVictory {
		t.Errorf("outcome = %v, want victory", outcome)
	}
	if fe.got.Start != 2 {
		t.Errorf("session start = %d, want 2", fe.got.Start)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-frontend")
	if err == nil || !strings.Contains(err.Error(), `unknown frontend "no-such-frontend"`) {
		t.Errorf("Get() error = %v", err)
	}
	if Exists("no-such-frontend") {
		t.Error("Exists() = true for unknown frontend")
	}
}

func TestListSorted(t *testing.T) {
	Register(&fakeFrontend{name: "test-list-b"})
	Register(&fakeFrontend{name: "test-list-a"})

	var names []string
	for _, info := range List() {
		if strings.HasPrefix(info.Name, "test-list-") {
			names = append(names, info.Name)
			if info.Description != "fake "+info.Name {
				t.Errorf("description = %q", info.Description)
			}
		}
	}
	if len(names) != 2 || names[0] != "test-list-a" || names[1] != "test-list-b" {
		t.Errorf("List() order = %v, want [test-list-a test-list-b]", names)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(&fakeFrontend{name: "test-dup"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(&fakeFrontend{name: "test-dup"})
}
