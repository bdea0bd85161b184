package core

import (
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
)

// Enemy defaults used when a level does not override them.
const (
	EnemySize  = 25
	EnemySpeed = 2
)

// Platform is a static, solid rectangle owned by a level.
type Platform struct {
	Bounds platformcore.Rect
	Kind   PlatformKind
}

// NewPlatform creates a platform.
func NewPlatform(x, y, w, h int, kind PlatformKind) Platform {
	return Platform{Bounds: platformcore.NewRect(x, y, w, h), Kind: kind}
}

// Hazard is a static zone that damages the player on contact.
type Hazard struct {
	Kind   HazardKind
	Bounds platformcore.Rect
	Damage int
}

// Enemy paces horizontally and reverses when it runs into a platform.
type Enemy struct {
	Bounds    platformcore.Rect
	Direction int // -1 or +1
	Speed     int
	Kind      EnemyKind
}

// NewEnemy creates a right-moving enemy of the default size and speed.
func NewEnemy(x, y int, kind EnemyKind) Enemy {
	return Enemy{
		Bounds:    platformcore.NewRect(x, y, EnemySize, EnemySize),
		Direction: 1,
		Speed:     EnemySpeed,
		Kind:      kind,
	}
}

// Patrol advances the enemy by one tick.
// After moving, every overlapping platform pushes the enemy back flush to the
// edge it ran into and flips its direction.
func (e *Enemy) Patrol(platforms []Platform) {
	e.Bounds.X += e.Direction * e.Speed
	for _, p := range platforms {
		if !e.Bounds.Overlaps(p.Bounds) {
			continue
		}
		if e.Direction > 0 {
			e.Bounds.SetRight(p.Bounds.X)
		} else {
			e.Bounds.X = p.Bounds.Right()
		}
		e.Direction = -e.Direction
	}
}
