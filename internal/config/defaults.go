package config

import (
	_ "embed"
)

//go:embed defaults/worlds.yaml
var defaultWorldsYAML []byte

// DefaultWorldsConfig returns the default platformer configuration.
func DefaultWorldsConfig() WorldsConfig {
	return WorldsConfig{
		Screen: ScreenConfig{
			Width:  600,
			Height: 400,
		},
		TickRate: 60,
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -12,
			MoveStep:    5,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			SpawnY: 300,
			Width:  30,
			Height: 45,
			Lives:  3,
		},
		Enemy: EnemyConfig{
			Width:  25,
			Height: 25,
			Speed:  2,
		},
		EndScreenSeconds: 3,
		Input: InputConfig{
			HoldTicks: 8, // Covers the gap between the first press and key auto-repeat
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWorldsYAML
}
