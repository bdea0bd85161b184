package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
)

// Shape is a colored rectangle to draw.
type Shape struct {
	Bounds platformcore.Rect
	Color  platformcore.Color
}

// Frame is everything a presenter needs to draw one tick.
type Frame struct {
	Background  platformcore.Color
	Platforms   []Shape
	Hazard      *Shape
	Goal        Shape
	Enemies     []Shape // drawn as ellipses
	Player      Shape
	FacingRight bool
	HUD         string
	LevelName   string
	LevelIndex  int
	LevelCount  int
	Phase       Phase
	Message     string
}

// Frame builds the drawable state of the run.
func (r *Run) Frame() Frame {
	lvl := r.level
	f := Frame{
		Background:  ThemeColor(lvl.Theme),
		Platforms:   make([]Shape, len(lvl.Platforms)),
		Goal:        Shape{Bounds: lvl.Goal, Color: ColorGoal},
		Enemies:     make([]Shape, len(lvl.Enemies)),
		Player:      Shape{Bounds: r.player.Bounds, Color: ColorPlayer},
		FacingRight: r.player.FacingRight,
		HUD:         fmt.Sprintf("Lives: %d", r.player.Lives),
		LevelName:   lvl.Label(),
		LevelIndex:  r.levelIndex,
		LevelCount:  r.catalog.Len(),
		Phase:       r.phase,
		Message:     r.Message(),
	}

	for i, p := range lvl.Platforms {
		f.Platforms[i] = Shape{Bounds: p.Bounds, Color: PlatformColor(p.Kind)}
	}
	for i, e := range lvl.Enemies {
		f.Enemies[i] = Shape{Bounds: e.Bounds, Color: EnemyColor(e.Kind)}
	}
	if h := lvl.Hazard; h != nil {
		f.Hazard = &Shape{Bounds: h.Bounds, Color: HazardColor(h.Kind)}
	}

	return f
}
