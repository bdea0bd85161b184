package core

import (
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
)

// Settings holds the player tuning shared by every level of a run.
type Settings struct {
	SpawnX, SpawnY int     // Spawn point (top-left of the player rect)
	Width, Height  int     // Player size
	Lives          int     // Lives at the start of a run
	MoveStep       int     // Horizontal pixels per tick while walking
	JumpImpulse    float64 // Vertical velocity set by a jump (negative = up)
	Gravity        float64 // Added to vertical velocity every tick
}

// DefaultSettings returns the classic tuning.
func DefaultSettings() Settings {
	return Settings{
		SpawnX:      50,
		SpawnY:      300,
		Width:       30,
		Height:      45,
		Lives:       3,
		MoveStep:    5,
		JumpImpulse: -12,
		Gravity:     0.5,
	}
}

// Input is a snapshot of the controls held during one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Player is the single character controlled by the user.
// It persists across the levels of one run.
type Player struct {
	Bounds      platformcore.Rect
	VY          float64
	OnGround    bool
	FacingRight bool
	Lives       int
	Score       int

	settings Settings
}

// NewPlayer creates a player at the spawn point.
func NewPlayer(s Settings) *Player {
	return &Player{
		Bounds:      platformcore.NewRect(s.SpawnX, s.SpawnY, s.Width, s.Height),
		FacingRight: true,
		Lives:       s.Lives,
		settings:    s,
	}
}

// HandleInput walks the player and starts a jump when grounded.
func (p *Player) HandleInput(in Input) {
	if in.Left {
		p.Bounds.X -= p.settings.MoveStep
		p.FacingRight = false
	}
	if in.Right {
		p.Bounds.X += p.settings.MoveStep
		p.FacingRight = true
	}
	if in.Jump && p.OnGround {
		p.VY = p.settings.JumpImpulse
		p.OnGround = false
	}
}

// ApplyGravity accelerates the player downward and moves it by the
// truncated velocity. It runs every tick, grounded or not.
func (p *Player) ApplyGravity() {
	p.VY += p.settings.Gravity
	p.Bounds.Y += int(p.VY)
}

// ResolvePlatforms lands the player on the first platform, in level order,
// that it is falling into. Returns whether the player landed.
func (p *Player) ResolvePlatforms(platforms []Platform) bool {
	for _, pl := range platforms {
		if platformcore.ResolveVertical(&p.Bounds, &p.VY, &p.OnGround, pl.Bounds) {
			return true
		}
	}
	return false
}

// Update runs input, gravity and platform resolution in that order.
func (p *Player) Update(in Input, platforms []Platform) {
	p.HandleInput(in)
	p.ApplyGravity()
	p.ResolvePlatforms(platforms)
}

// Respawn moves the player back to the spawn point and stops vertical motion.
func (p *Player) Respawn() {
	p.Bounds.SetTopLeft(p.settings.SpawnX, p.settings.SpawnY)
	p.VY = 0
}
