package core_test

import (
	"errors"
	"testing"

	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

func TestBuiltinCatalog(t *testing.T) {
	cat := core.BuiltinCatalog()

	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", cat.Len())
	}

	tests := []struct {
		index     int
		id        string
		theme     core.Theme
		platforms int
		enemies   int
		hazard    bool
	}{
		{0, "1-1", core.ThemeSky, 3, 2, false},
		{1, "1-2", core.ThemeNight, 3, 1, false},
		{2, "1-3", core.ThemeSky, 3, 1, true},
	}

	for _, tc := range tests {
		lvl := cat.Level(tc.index)
		if lvl.ID != tc.id {
			t.Errorf("level %d: ID = %q, expected %q", tc.index, lvl.ID, tc.id)
		}
		if lvl.Theme != tc.theme {
			t.Errorf("level %d: theme = %v, expected %v", tc.index, lvl.Theme, tc.theme)
		}
		if len(lvl.Platforms) != tc.platforms {
			t.Errorf("level %d: %d platforms, expected %d", tc.index, len(lvl.Platforms), tc.platforms)
		}
		if len(lvl.Enemies) != tc.enemies {
			t.Errorf("level %d: %d enemies, expected %d", tc.index, len(lvl.Enemies), tc.enemies)
		}
		if (lvl.Hazard != nil) != tc.hazard {
			t.Errorf("level %d: hazard present = %v, expected %v", tc.index, lvl.Hazard != nil, tc.hazard)
		}
	}

	pit := cat.Level(2).Hazard
	if pit.Kind != core.HazardPit || pit.Damage != 1 || pit.Bounds != platformcore.NewRect(200, 0, 100, 400) {
		t.Errorf("unexpected pit hazard: %+v", pit)
	}
}

func TestCatalogValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *core.Level)
		code   string
	}{
		{"empty goal", func(l *core.Level) { l.Goal = platformcore.NewRect(10, 10, 0, 20) }, core.CodeEmptyGoal},
		{"negative platform", func(l *core.Level) {
			l.Platforms = append(l.Platforms, core.NewPlatform(0, 0, -5, 10, core.PlatformGround))
		}, core.CodeNegativeSize},
		{"negative enemy", func(l *core.Level) {
			e := core.NewEnemy(0, 0, core.EnemyGoomba)
			e.Bounds.H = -1
			l.Enemies = append(l.Enemies, e)
		}, core.CodeNegativeSize},
		{"bad direction", func(l *core.Level) {
			e := core.NewEnemy(0, 0, core.EnemyGoomba)
			e.Direction = 0
			l.Enemies = append(l.Enemies, e)
		}, core.CodeBadDirection},
		{"bad speed", func(l *core.Level) {
			e := core.NewEnemy(0, 0, core.EnemyGoomba)
			e.Speed = 0
			l.Enemies = append(l.Enemies, e)
		}, core.CodeBadSpeed},
		{"zero damage", func(l *core.Level) {
			l.Hazard = &core.Hazard{Kind: core.HazardPit, Bounds: platformcore.NewRect(0, 0, 10, 10)}
		}, core.CodeBadDamage},
		{"negative hazard", func(l *core.Level) {
			l.Hazard = &core.Hazard{Kind: core.HazardPit, Bounds: platformcore.NewRect(0, 0, 10, -10), Damage: 1}
		}, core.CodeNegativeSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := flatLevel("bad")
			tc.mutate(lvl)

			_, err := core.NewCatalog(flatLevel("ok"), lvl)

			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestCatalogRejectsEmptyAndNil(t *testing.T) {
	var verr core.ValidationError

	_, err := core.NewCatalog()
	if !errors.As(err, &verr) || verr.Code != core.CodeEmptyCatalog {
		t.Errorf("empty catalog: got %v", err)
	}

	_, err = core.NewCatalog(flatLevel("a"), nil)
	if !errors.As(err, &verr) || verr.Code != core.CodeNilLevel {
		t.Errorf("nil level: got %v", err)
	}
}

func TestMustCatalogPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	core.MustCatalog()
}

func TestCatalogOwnsItsLevels(t *testing.T) {
	lvl := flatLevel("a")
	lvl.Enemies = []core.Enemy{core.NewEnemy(100, 100, core.EnemyGoomba)}
	lvl.Hazard = &core.Hazard{Kind: core.HazardPit, Bounds: platformcore.NewRect(0, 0, 10, 10), Damage: 1}

	cat, err := core.NewCatalog(lvl)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	// Mutating the source after construction does not leak in.
	lvl.Enemies[0].Bounds.X = 999
	lvl.Hazard.Damage = 5

	// Mutating a returned copy does not leak back.
	got := cat.Level(0)
	got.Platforms[0].Bounds.Y = 0

	again := cat.Level(0)
	if again.Enemies[0].Bounds.X != 100 {
		t.Errorf("enemy X = %d, expected 100", again.Enemies[0].Bounds.X)
	}
	if again.Hazard.Damage != 1 {
		t.Errorf("hazard damage = %d, expected 1", again.Hazard.Damage)
	}
	if again.Platforms[0].Bounds.Y != 360 {
		t.Errorf("platform Y = %d, expected 360", again.Platforms[0].Bounds.Y)
	}
}

func TestValidationErrorString(t *testing.T) {
	err := core.ValidationError{Code: core.CodeBadSpeed, Message: "too slow"}
	if err.Error() != "[BAD_SPEED] too slow" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestLevelLabel(t *testing.T) {
	lvl := &core.Level{ID: "2-1"}
	if lvl.Label() != "2-1" {
		t.Errorf("Label() = %q, expected ID fallback", lvl.Label())
	}
	lvl.Name = "Desert"
	if lvl.Label() != "Desert" {
		t.Errorf("Label() = %q, expected name", lvl.Label())
	}
}
