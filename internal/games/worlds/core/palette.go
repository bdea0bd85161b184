package core

import (
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
)

// Named colors of the platformer palette.
var (
	ColorSky    = platformcore.RGB(135, 206, 235)
	ColorNight  = platformcore.RGB(25, 25, 112)
	ColorIce    = platformcore.RGB(173, 216, 230)
	ColorSand   = platformcore.RGB(244, 164, 96)
	ColorCastle = platformcore.RGB(105, 105, 105)
	ColorLava   = platformcore.RGB(255, 0, 0)
	ColorGround = platformcore.RGB(139, 69, 19)
	ColorPipe   = platformcore.RGB(0, 128, 0)

	ColorGoal   = platformcore.ColorRed
	ColorPlayer = platformcore.ColorBlue
	ColorHUD    = platformcore.ColorBlack
)

// ThemeColor returns the background color of a theme.
// Unknown themes fall back to sky.
func ThemeColor(t Theme) platformcore.Color {
	switch t {
	case ThemeSky:
		return ColorSky
	case ThemeNight:
		return ColorNight
	case ThemeIce:
		return ColorIce
	case ThemeSand:
		return ColorSand
	case ThemeCastle:
		return ColorCastle
	case ThemeLava:
		return ColorLava
	default:
		return ColorSky
	}
}

// PlatformColor returns the fill color of a platform kind.
// Unknown kinds fall back to green.
func PlatformColor(k PlatformKind) platformcore.Color {
	switch k {
	case PlatformGround:
		return ColorGround
	case PlatformPipe:
		return ColorPipe
	case PlatformCastle:
		return ColorCastle
	case PlatformIce:
		return ColorIce
	case PlatformSand:
		return ColorSand
	default:
		return platformcore.ColorGreen
	}
}

// EnemyColor returns the body color of an enemy kind.
func EnemyColor(k EnemyKind) platformcore.Color {
	if k == EnemyGoomba {
		return platformcore.ColorBrown
	}
	return platformcore.ColorGreen
}

// HazardColor returns the fill color of a hazard kind.
func HazardColor(k HazardKind) platformcore.Color {
	switch k {
	case HazardLava:
		return ColorLava
	default:
		return platformcore.ColorBlack
	}
}
