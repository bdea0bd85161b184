package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-worlds/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	overAt  int // step count that ends the run; 0 = never
	paused  bool
	stepped int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.stepped++
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorRed)
}

func (g *fakeGame) State() core.GameState {
	over := g.overAt > 0 && g.stepped >= g.overAt
	return core.GameState{Lives: 3, GameOver: over, Paused: g.paused, Message: "done"}
}

func newTestModel(g *fakeGame, dir string) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60}, Options{
		EndScreen:     time.Second,
		HoldTicks:     2,
		ScreenshotDir: dir,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelInitResets(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, "")

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelHeldInput(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, "")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	if len(g.frames) != 3 {
		t.Fatalf("stepped %d times, expected 3", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionRight) || !g.frames[1].Has(core.ActionRight) {
		t.Error("right should be held for two ticks")
	}
	if g.frames[2].Has(core.ActionRight) {
		t.Error("right should be released on the third tick")
	}
}

func TestModelOneShotPause(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, "")

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	if !g.frames[0].Has(core.ActionPause) {
		t.Error("pause should reach the first tick")
	}
	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause should not repeat")
	}
	if !m.State().Paused {
		t.Error("model should observe the paused state")
	}
}

func TestModelEndScreen(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := newTestModel(g, "")

	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	if cmd == nil {
		t.Fatal("expected end screen timer")
	}

	// Further ticks and keys do nothing while the end screen shows
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if g.stepped != 1 {
		t.Errorf("stepped %d times during end screen", g.stepped)
	}
	if m.View() == "" {
		t.Error("end screen should still render")
	}

	m, cmd = update(t, m, EndScreenDoneMsg{})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("end screen timer should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, "")

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, "")
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, expected 12", lines)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(g, dir)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 || !strings.HasPrefix(filepath.Base(matches[0]), "fake_") {
		t.Errorf("screenshots = %v", matches)
	}
}

