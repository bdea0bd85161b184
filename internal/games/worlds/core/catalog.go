package core

import (
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
)

// Catalog is the ordered, read-only list of levels for a run.
type Catalog struct {
	levels []*Level
}

// NewCatalog validates the given levels and builds a catalog.
// Malformed data is rejected here so that a run never meets it.
func NewCatalog(levels ...*Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, invalid(CodeEmptyCatalog, "catalog has no levels")
	}

	owned := make([]*Level, len(levels))
	for i, l := range levels {
		if l == nil {
			return nil, invalid(CodeNilLevel, "level %d is nil", i)
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		owned[i] = l.Clone()
	}

	return &Catalog{levels: owned}, nil
}

// MustCatalog is like NewCatalog but panics on invalid data.
// Intended for levels written as Go literals.
func MustCatalog(levels ...*Level) *Catalog {
	c, err := NewCatalog(levels...)
	if err != nil {
		panic("worlds: " + err.Error())
	}
	return c
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Level returns a fresh copy of the level at index i.
// Panics if i is out of range.
func (c *Catalog) Level(i int) *Level {
	return c.levels[i].Clone()
}

// BuiltinCatalog returns the three classic worlds.
func BuiltinCatalog() *Catalog {
	return MustCatalog(
		// World 1-1 (Grassland)
		&Level{
			ID:    "1-1",
			Name:  "Grassland",
			Theme: ThemeSky,
			Platforms: []Platform{
				NewPlatform(0, 360, 600, 40, PlatformGround),
				NewPlatform(100, 300, 100, 20, PlatformGround),
				NewPlatform(400, 240, 100, 20, PlatformGround),
			},
			Enemies: []Enemy{
				NewEnemy(200, 300, EnemyGoomba),
				NewEnemy(450, 240, EnemyGoomba),
			},
			Goal: platformcore.NewRect(550, 200, 30, 160),
		},
		// World 1-2 (Underground)
		&Level{
			ID:    "1-2",
			Name:  "Underground",
			Theme: ThemeNight,
			Platforms: []Platform{
				NewPlatform(0, 360, 600, 40, PlatformGround),
				NewPlatform(200, 280, 100, 20, PlatformGround),
				NewPlatform(50, 200, 100, 20, PlatformGround),
			},
			Enemies: []Enemy{
				NewEnemy(300, 280, EnemyKoopa),
			},
			Goal: platformcore.NewRect(550, 160, 30, 200),
		},
		// World 1-3 (Sky with pit hazard)
		&Level{
			ID:    "1-3",
			Name:  "Sky Pit",
			Theme: ThemeSky,
			Platforms: []Platform{
				NewPlatform(0, 360, 200, 20, PlatformGround),
				NewPlatform(300, 360, 300, 20, PlatformGround),
				NewPlatform(400, 280, 100, 20, PlatformGround),
			},
			Enemies: []Enemy{
				NewEnemy(250, 360, EnemyGoomba),
			},
			Goal: platformcore.NewRect(550, 220, 30, 140),
			Hazard: &Hazard{
				Kind:   HazardPit,
				Bounds: platformcore.NewRect(200, 0, 100, 400),
				Damage: 1,
			},
		},
	)
}
