package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
)

func TestEnemyMovesFreely(t *testing.T) {
	e := core.NewEnemy(100, 300, core.EnemyGoomba)

	for i := 0; i < 10; i++ {
		e.Patrol(nil)
	}

	if e.Bounds.X != 120 {
		t.Errorf("X = %d, expected 120", e.Bounds.X)
	}
	if e.Direction != 1 {
		t.Errorf("direction = %d, expected 1", e.Direction)
	}
}

func TestEnemyReversesOnRightWall(t *testing.T) {
	e := core.NewEnemy(74, 300, core.EnemyGoomba) // right edge 99
	wall := []core.Platform{core.NewPlatform(100, 250, 20, 100, core.PlatformPipe)}

	e.Patrol(wall) // moves to 76, right edge 101 overlaps

	if e.Bounds.Right() != 100 {
		t.Errorf("right = %d, expected flush at 100", e.Bounds.Right())
	}
	if e.Direction != -1 {
		t.Errorf("direction = %d, expected -1", e.Direction)
	}
}

func TestEnemyReversesOnLeftWall(t *testing.T) {
	e := core.NewEnemy(121, 300, core.EnemyKoopa)
	e.Direction = -1
	wall := []core.Platform{core.NewPlatform(100, 250, 20, 100, core.PlatformPipe)}

	e.Patrol(wall) // moves to 119, overlaps wall ending at 120

	if e.Bounds.X != 120 {
		t.Errorf("X = %d, expected flush at 120", e.Bounds.X)
	}
	if e.Direction != 1 {
		t.Errorf("direction = %d, expected 1", e.Direction)
	}
}

func TestEnemyPatrolPeriod(t *testing.T) {
	const (
		gap   = 100 // free space between the walls
		speed = 2
	)
	walls := []core.Platform{
		core.NewPlatform(0, 300, 10, 25, core.PlatformPipe),
		core.NewPlatform(10+gap, 300, 10, 25, core.PlatformPipe),
	}
	e := core.NewEnemy(10, 300, core.EnemySpiny)
	e.Speed = speed

	flips := 0
	ticks := 0
	prevDir := e.Direction
	for flips < 2 && ticks < 1000 {
		e.Patrol(walls)
		ticks++
		if e.Direction != prevDir {
			flips++
			prevDir = e.Direction
		}
	}

	want := 2 * (gap - core.EnemySize) / speed
	if ticks < want-2 || ticks > want+2 {
		t.Errorf("patrol period = %d ticks, expected %d (+-2)", ticks, want)
	}
	if e.Bounds.X != 10 || e.Direction != 1 {
		t.Errorf("after one cycle enemy at X=%d dir=%d, expected X=10 dir=1", e.Bounds.X, e.Direction)
	}
}

func TestEnemyStaysBetweenWalls(t *testing.T) {
	walls := []core.Platform{
		core.NewPlatform(0, 300, 10, 25, core.PlatformPipe),
		core.NewPlatform(90, 300, 10, 25, core.PlatformPipe),
	}
	e := core.NewEnemy(30, 300, core.EnemyGoomba)

	for i := 0; i < 500; i++ {
		e.Patrol(walls)
		if e.Bounds.X < 10 || e.Bounds.Right() > 90 {
			t.Fatalf("tick %d: enemy escaped to %+v", i, e.Bounds)
		}
	}
}
