package worlds

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-worlds/internal/config"
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

func newGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Settings == (core.Settings{}) {
		opts.Settings = core.DefaultSettings()
	}
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(platformcore.DefaultConfig())
	return g
}

func frameWith(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// goalAtSpawn is a single level that is won on the first tick.
func goalAtSpawn(t *testing.T) *core.Catalog {
	t.Helper()
	cat, err := core.NewCatalog(&core.Level{
		ID:        "win",
		Platforms: []core.Platform{core.NewPlatform(0, 360, 600, 40, core.PlatformGround)},
		Goal:      platformcore.NewRect(0, 250, 120, 110),
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestNewRejectsBadStart(t *testing.T) {
	_, err := New(Options{Settings: core.DefaultSettings(), Start: 7})
	if err == nil {
		t.Error("expected error for start level out of range")
	}
}

func TestGameInitialState(t *testing.T) {
	g := newGame(t, Options{})

	st := g.State()
	if st.Lives != 3 || st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if g.ID() != "worlds" || g.Title() != "Worlds" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestStepMapsActions(t *testing.T) {
	g := newGame(t, Options{})

	g.Step(frameWith(platformcore.ActionRight))
	if x := g.Run().Player().Bounds.X; x != 55 {
		t.Errorf("X = %d after right, expected 55", x)
	}

	g.Step(frameWith(platformcore.ActionLeft))
	g.Step(frameWith(platformcore.ActionLeft))
	if x := g.Run().Player().Bounds.X; x != 45 {
		t.Errorf("X = %d after two lefts, expected 45", x)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	g := newGame(t, Options{})

	res := g.Step(frameWith(platformcore.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	ticks := g.Run().Ticks()

	for i := 0; i < 10; i++ {
		g.Step(frameWith(platformcore.ActionRight))
	}
	if g.Run().Ticks() != ticks {
		t.Errorf("paused run ticked: %d -> %d", ticks, g.Run().Ticks())
	}

	res = g.Step(frameWith(platformcore.ActionPause))
	if res.State.Paused {
		t.Error("expected resumed")
	}
	if g.Run().Ticks() != ticks+1 {
		t.Errorf("resume tick not simulated: ticks = %d", g.Run().Ticks())
	}
}

func TestStepReportsEnd(t *testing.T) {
	g := newGame(t, Options{Catalog: goalAtSpawn(t)})

	res := g.Step(platformcore.NewInputFrame())

	if !res.State.GameOver || !res.State.Won || res.State.Message != "You Win!" {
		t.Errorf("unexpected end state: %+v", res.State)
	}
	if len(res.Events) != 2 || res.Events[1] != "all levels cleared" {
		t.Errorf("events = %v", res.Events)
	}

	// Pause is ignored once the run is over
	res = g.Step(frameWith(platformcore.ActionPause))
	if res.State.Paused {
		t.Error("finished run should not pause")
	}
}

func TestRenderFirstLevel(t *testing.T) {
	g := newGame(t, Options{})
	screen := platformcore.NewScreen(80, 24)

	g.Render(screen)

	if row := screen.Row(0); !strings.HasPrefix(row, " Lives: 3") {
		t.Errorf("HUD row = %q", row)
	}
	if row := screen.Row(0); !strings.Contains(row, "1-1 Grassland (1/3)") {
		t.Errorf("level label missing from %q", row)
	}
	if bg := screen.GetCell(40, 5).BG; bg != core.ColorSky {
		t.Errorf("background cell = %v, expected sky", bg)
	}
	if bg := screen.GetCell(10, 23).BG; bg != core.ColorGround {
		t.Errorf("ground cell = %v, expected ground", bg)
	}
	if bg := screen.GetCell(27, 18).BG; bg != platformcore.ColorBrown {
		t.Errorf("goomba cell = %v, expected brown", bg)
	}

	// Player covers columns 6-10, rows 18-20, facing right
	eye := screen.GetCell(10, 18)
	if eye.Rune != EyeGlyph || eye.BG != core.ColorPlayer {
		t.Errorf("eye cell = %+v", eye)
	}
	if bg := screen.GetCell(6, 20).BG; bg != core.ColorPlayer {
		t.Errorf("player body cell = %v", bg)
	}
}

func TestRenderFacingLeft(t *testing.T) {
	g := newGame(t, Options{})
	screen := platformcore.NewScreen(80, 24)

	g.Step(frameWith(platformcore.ActionLeft))
	g.Render(screen)

	if screen.GetCell(6, 18).Rune != EyeGlyph {
		t.Errorf("expected eye on the left column, row 18 = %q", screen.Row(18))
	}
	if screen.GetCell(9, 18).Rune == EyeGlyph {
		t.Error("eye should not be on the right")
	}
}

func TestRenderOverlays(t *testing.T) {
	screen := platformcore.NewScreen(80, 24)

	g := newGame(t, Options{})
	g.Step(frameWith(platformcore.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g = newGame(t, Options{Catalog: goalAtSpawn(t)})
	g.Step(platformcore.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "You Win!") {
		t.Error("victory message missing")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, Options{})
	screen := platformcore.NewScreen(20, 5)

	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestViewportCells(t *testing.T) {
	v := newViewport(platformcore.NewRect(0, 0, 600, 400), 60, 40)

	tests := []struct {
		name string
		in   platformcore.Rect
		want platformcore.Rect
	}{
		{"aligned", platformcore.NewRect(100, 100, 50, 30), platformcore.NewRect(10, 10, 5, 3)},
		{"tiny rect gets a cell", platformcore.NewRect(101, 101, 2, 2), platformcore.NewRect(10, 10, 1, 1)},
		{"clipped left/top", platformcore.NewRect(-50, -50, 100, 100), platformcore.NewRect(0, 0, 5, 5)},
		{"clipped right/bottom", platformcore.NewRect(580, 390, 100, 100), platformcore.NewRect(58, 39, 2, 1)},
		{"empty", platformcore.NewRect(10, 10, 0, 10), platformcore.Rect{}},
		{"offscreen", platformcore.NewRect(700, 10, 10, 10), platformcore.NewRect(60, 1, 0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.cells(tc.in); got != tc.want {
				t.Errorf("cells(%+v) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSettingsFromDefaultConfig(t *testing.T) {
	cfg := config.DefaultWorldsConfig()

	if got := Settings(cfg); got != core.DefaultSettings() {
		t.Errorf("Settings(defaults) = %+v, expected %+v", got, core.DefaultSettings())
	}

	ed := EnemyDefaults(cfg)
	if ed.W != core.EnemySize || ed.H != core.EnemySize || ed.Speed != core.EnemySpeed {
		t.Errorf("EnemyDefaults(defaults) = %+v", ed)
	}

	lc := LoopConfig(cfg)
	if lc.TickRate != core.DefaultTickRate || lc.EndScreen != core.DefaultEndScreen {
		t.Errorf("LoopConfig(defaults) = %+v", lc)
	}
}
