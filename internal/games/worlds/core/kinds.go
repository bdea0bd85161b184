// Package core implements the platformer simulation: entities, levels, the
// world catalog and the per-tick run state machine.
// It has no dependencies beyond the platform core package.
package core

import "strings"

// Theme selects the background of a level.
type Theme int

const (
	ThemeUnknown Theme = iota
	ThemeSky
	ThemeNight
	ThemeIce
	ThemeSand
	ThemeCastle
	ThemeLava
)

var themeNames = map[Theme]string{
	ThemeSky:    "sky",
	ThemeNight:  "night",
	ThemeIce:    "ice",
	ThemeSand:   "sand",
	ThemeCastle: "castle",
	ThemeLava:   "lava",
}

// String returns the name used in level files.
func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTheme maps a level-file name to a Theme.
// Unknown names map to ThemeUnknown and render with the fallback color.
func ParseTheme(s string) Theme {
	return parseKind(s, themeNames, ThemeUnknown)
}

// PlatformKind describes what a platform looks like.
type PlatformKind int

const (
	PlatformUnknown PlatformKind = iota
	PlatformGround
	PlatformPipe
	PlatformCastle
	PlatformIce
	PlatformSand
)

var platformNames = map[PlatformKind]string{
	PlatformGround: "ground",
	PlatformPipe:   "pipe",
	PlatformCastle: "castle",
	PlatformIce:    "ice",
	PlatformSand:   "sand",
}

// String returns the name used in level files.
func (k PlatformKind) String() string {
	if name, ok := platformNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParsePlatformKind maps a level-file name to a PlatformKind.
func ParsePlatformKind(s string) PlatformKind {
	return parseKind(s, platformNames, PlatformUnknown)
}

// EnemyKind is the species of a patrolling enemy.
type EnemyKind int

const (
	EnemyUnknown EnemyKind = iota
	EnemyGoomba
	EnemyKoopa
	EnemySpiny
)

var enemyNames = map[EnemyKind]string{
	EnemyGoomba: "goomba",
	EnemyKoopa:  "koopa",
	EnemySpiny:  "spiny",
}

// String returns the name used in level files.
func (k EnemyKind) String() string {
	if name, ok := enemyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEnemyKind maps a level-file name to an EnemyKind.
func ParseEnemyKind(s string) EnemyKind {
	return parseKind(s, enemyNames, EnemyUnknown)
}

// HazardKind is the type of a level hazard.
type HazardKind int

const (
	HazardUnknown HazardKind = iota
	HazardPit
	HazardLava
)

var hazardNames = map[HazardKind]string{
	HazardPit:  "pit",
	HazardLava: "lava",
}

// String returns the name used in level files.
func (k HazardKind) String() string {
	if name, ok := hazardNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseHazardKind maps a level-file name to a HazardKind.
func ParseHazardKind(s string) HazardKind {
	return parseKind(s, hazardNames, HazardUnknown)
}

func parseKind[K comparable](s string, names map[K]string, fallback K) K {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range names {
		if name == s {
			return k
		}
	}
	return fallback
}
