package worlds

import (
	"github.com/vovakirdan/tui-worlds/internal/config"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/levels"
)

// Settings converts the loaded configuration to player settings.
func Settings(cfg config.WorldsConfig) core.Settings {
	return core.Settings{
		SpawnX:      cfg.Player.SpawnX,
		SpawnY:      cfg.Player.SpawnY,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		Lives:       cfg.Player.Lives,
		MoveStep:    cfg.Physics.MoveStep,
		JumpImpulse: cfg.Physics.JumpImpulse,
		Gravity:     cfg.Physics.Gravity,
	}
}

// EnemyDefaults converts the loaded configuration to level-file enemy defaults.
func EnemyDefaults(cfg config.WorldsConfig) levels.EnemyDefaults {
	return levels.EnemyDefaults{
		W:     cfg.Enemy.Width,
		H:     cfg.Enemy.Height,
		Speed: cfg.Enemy.Speed,
	}
}

// LoopConfig converts the loaded configuration to loop timing.
func LoopConfig(cfg config.WorldsConfig) core.LoopConfig {
	return core.LoopConfig{
		TickRate:  cfg.TickRate,
		EndScreen: cfg.EndScreen(),
	}
}
