// Package config provides YAML-based configuration loading for the
// platformer: window size, tick rate, physics and player tuning.
package config

import (
	"fmt"
	"time"
)

// WorldsConfig contains all configuration for the platformer.
type WorldsConfig struct {
	Screen           ScreenConfig  `yaml:"screen"`
	TickRate         int           `yaml:"tick_rate"`
	Physics          PhysicsConfig `yaml:"physics"`
	Player           PlayerConfig  `yaml:"player"`
	Enemy            EnemyConfig   `yaml:"enemy"`
	EndScreenSeconds float64       `yaml:"end_screen_seconds"`
	Input            InputConfig   `yaml:"input"`
}

// ScreenConfig defines the logical playfield size in pixels.
// Levels are authored in this coordinate space.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines the player's movement parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set by a jump (negative = up)
	MoveStep    int     `yaml:"move_step"`    // Horizontal pixels per tick
}

// PlayerConfig defines the player's spawn point, size and lives.
type PlayerConfig struct {
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Lives  int `yaml:"lives"`
}

// EnemyConfig defines the defaults for enemy fields omitted from level files.
type EnemyConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
}

// InputConfig tunes keyboard handling in the terminal.
type InputConfig struct {
	// HoldTicks is how long a key press counts as held. Terminals report
	// presses and auto-repeats, not releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// EndScreen returns how long the end-of-run message stays up.
func (c WorldsConfig) EndScreen() time.Duration {
	return time.Duration(c.EndScreenSeconds * float64(time.Second))
}

// Validate checks that every size and rate is usable.
func (c WorldsConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"tick_rate", c.TickRate},
		{"physics.move_step", c.Physics.MoveStep},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.lives", c.Player.Lives},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.speed", c.Enemy.Speed},
		{"input.hold_ticks", c.Input.HoldTicks},
	}
	for _, ch := range checks {
		if ch.value <= 0 {
			return fmt.Errorf("invalid config: %s must be positive, got %d", ch.name, ch.value)
		}
	}

	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("invalid config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("invalid config: physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	}
	if c.EndScreenSeconds < 0 {
		return fmt.Errorf("invalid config: end_screen_seconds must not be negative, got %v", c.EndScreenSeconds)
	}
	return nil
}
