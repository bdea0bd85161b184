package levels

import (
	"fmt"
	"path/filepath"
	"strings"

	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
	"github.com/vovakirdan/tui-worlds/internal/games/worlds/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name,omitempty"`
	Order     int            `yaml:"order,omitempty"`
	Theme     string         `yaml:"theme,omitempty"`
	Platforms []YAMLPlatform `yaml:"platforms"`
	Enemies   []YAMLEnemy    `yaml:"enemies,omitempty"`
	Goal      YAMLRect       `yaml:"goal"`
	Hazard    *YAMLHazard    `yaml:"hazard,omitempty"`
}

// YAMLRect is a rectangle in pixel space.
type YAMLRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPlatform is a solid rectangle.
type YAMLPlatform struct {
	YAMLRect `yaml:",inline"`
	Kind     string `yaml:"kind,omitempty"`
}

// YAMLEnemy is a patrolling enemy. Zero size, speed or direction take the
// loader defaults.
type YAMLEnemy struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	W         int    `yaml:"w,omitempty"`
	H         int    `yaml:"h,omitempty"`
	Speed     int    `yaml:"speed,omitempty"`
	Direction int    `yaml:"direction,omitempty"`
	Kind      string `yaml:"kind,omitempty"`
}

// YAMLHazard is the optional damaging zone of a level.
type YAMLHazard struct {
	YAMLRect `yaml:",inline"`
	Kind     string `yaml:"kind"`
	Damage   int    `yaml:"damage"`
}

// EnemyDefaults fills in enemy fields a level file leaves out.
type EnemyDefaults struct {
	W, H  int
	Speed int
}

// DefaultEnemy returns the enemy defaults of the built-in worlds.
func DefaultEnemy() EnemyDefaults {
	return EnemyDefaults{W: core.EnemySize, H: core.EnemySize, Speed: core.EnemySpeed}
}

// File is a parsed level file.
type File struct {
	Level *core.Level
	Order int
	Path  string
}

// Parse parses a YAML level file.
// Unknown kind names are not errors: they are kept as Unknown kinds, which
// render with fallback colors, and reported in the returned warnings.
func Parse(data []byte, defaults EnemyDefaults) (File, []string, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return File{}, nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.ID) == "" {
		return File{}, nil, fmt.Errorf("missing level id")
	}

	var warnings []string
	warnUnknown := func(what, name string) {
		if name != "" {
			warnings = append(warnings, fmt.Sprintf("level %q: unknown %s %q", yl.ID, what, name))
		}
	}

	lvl := &core.Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Theme:     core.ParseTheme(yl.Theme),
		Platforms: make([]core.Platform, 0, len(yl.Platforms)),
		Enemies:   make([]core.Enemy, 0, len(yl.Enemies)),
		Goal:      yl.Goal.rect(),
	}
	if lvl.Theme == core.ThemeUnknown {
		warnUnknown("theme", yl.Theme)
	}

	for _, p := range yl.Platforms {
		kind := core.ParsePlatformKind(p.Kind)
		if kind == core.PlatformUnknown {
			warnUnknown("platform kind", p.Kind)
		}
		lvl.Platforms = append(lvl.Platforms, core.NewPlatform(p.X, p.Y, p.W, p.H, kind))
	}

	for _, ye := range yl.Enemies {
		kind := core.ParseEnemyKind(ye.Kind)
		if kind == core.EnemyUnknown {
			warnUnknown("enemy kind", ye.Kind)
		}
		e := core.NewEnemy(ye.X, ye.Y, kind)
		e.Bounds.W = orDefault(ye.W, defaults.W)
		e.Bounds.H = orDefault(ye.H, defaults.H)
		e.Speed = orDefault(ye.Speed, defaults.Speed)
		e.Direction = orDefault(ye.Direction, 1)
		lvl.Enemies = append(lvl.Enemies, e)
	}

	if yh := yl.Hazard; yh != nil {
		kind := core.ParseHazardKind(yh.Kind)
		if kind == core.HazardUnknown {
			warnUnknown("hazard kind", yh.Kind)
		}
		lvl.Hazard = &core.Hazard{Kind: kind, Bounds: yh.rect(), Damage: yh.Damage}
	}

	if err := lvl.Validate(); err != nil {
		return File{}, warnings, err
	}

	return File{Level: lvl, Order: yl.Order}, warnings, nil
}

// Marshal renders a level in the YAML file format.
func Marshal(lvl *core.Level, order int) ([]byte, error) {
	yl := YAMLLevel{
		ID:    lvl.ID,
		Name:  lvl.Name,
		Order: order,
		Goal:  fromRect(lvl.Goal),
	}
	if lvl.Theme != core.ThemeUnknown {
		yl.Theme = lvl.Theme.String()
	}
	for _, p := range lvl.Platforms {
		yp := YAMLPlatform{YAMLRect: fromRect(p.Bounds)}
		if p.Kind != core.PlatformUnknown {
			yp.Kind = p.Kind.String()
		}
		yl.Platforms = append(yl.Platforms, yp)
	}
	for _, e := range lvl.Enemies {
		ye := YAMLEnemy{
			X:         e.Bounds.X,
			Y:         e.Bounds.Y,
			W:         e.Bounds.W,
			H:         e.Bounds.H,
			Speed:     e.Speed,
			Direction: e.Direction,
		}
		if e.Kind != core.EnemyUnknown {
			ye.Kind = e.Kind.String()
		}
		yl.Enemies = append(yl.Enemies, ye)
	}
	if h := lvl.Hazard; h != nil {
		yl.Hazard = &YAMLHazard{YAMLRect: fromRect(h.Bounds), Kind: h.Kind.String(), Damage: h.Damage}
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// IsLevelFile reports whether path has a supported extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func (r YAMLRect) rect() platformcore.Rect {
	return platformcore.NewRect(r.X, r.Y, r.W, r.H)
}

func fromRect(r platformcore.Rect) YAMLRect {
	return YAMLRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
