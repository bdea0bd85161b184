package core

import (
	platformcore "github.com/vovakirdan/tui-worlds/internal/core"
)

// Level is one hand-authored stage. Its membership is fixed once built;
// only enemy state changes while it is being played.
type Level struct {
	ID        string
	Name      string
	Theme     Theme
	Platforms []Platform
	Enemies   []Enemy
	Goal      platformcore.Rect
	Hazard    *Hazard // nil when the level has no hazard
}

// Label returns the name to show for the level, falling back to its ID.
func (l *Level) Label() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Clone creates a deep copy of the level, so a played level can be thrown
// away and re-entered with its enemies back at their start positions.
func (l *Level) Clone() *Level {
	clone := &Level{
		ID:        l.ID,
		Name:      l.Name,
		Theme:     l.Theme,
		Platforms: make([]Platform, len(l.Platforms)),
		Enemies:   make([]Enemy, len(l.Enemies)),
		Goal:      l.Goal,
	}
	copy(clone.Platforms, l.Platforms)
	copy(clone.Enemies, l.Enemies)
	if l.Hazard != nil {
		h := *l.Hazard
		clone.Hazard = &h
	}
	return clone
}

// Validate checks the construction-time preconditions of a level.
func (l *Level) Validate() error {
	if !l.Goal.Valid() || l.Goal.Empty() {
		return invalid(CodeEmptyGoal, "level %q: goal %+v must have positive size", l.ID, l.Goal)
	}

	for i, p := range l.Platforms {
		if !p.Bounds.Valid() {
			return invalid(CodeNegativeSize, "level %q: platform %d has negative size %+v", l.ID, i, p.Bounds)
		}
	}

	for i, e := range l.Enemies {
		if !e.Bounds.Valid() {
			return invalid(CodeNegativeSize, "level %q: enemy %d has negative size %+v", l.ID, i, e.Bounds)
		}
		if e.Direction != 1 && e.Direction != -1 {
			return invalid(CodeBadDirection, "level %q: enemy %d direction %d is not -1 or +1", l.ID, i, e.Direction)
		}
		if e.Speed <= 0 {
			return invalid(CodeBadSpeed, "level %q: enemy %d speed %d must be positive", l.ID, i, e.Speed)
		}
	}

	if h := l.Hazard; h != nil {
		if !h.Bounds.Valid() {
			return invalid(CodeNegativeSize, "level %q: hazard has negative size %+v", l.ID, h.Bounds)
		}
		if h.Damage < 1 {
			return invalid(CodeBadDamage, "level %q: hazard damage %d must be at least 1", l.ID, h.Damage)
		}
	}

	return nil
}
