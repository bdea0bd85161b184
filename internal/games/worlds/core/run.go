package core

import "fmt"

// Phase is the state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseVictory
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// End-of-run messages.
const (
	MessageVictory = "You Win!"
	MessageDefeat  = "Game Over!"
)

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemyHit EventKind = iota
	EventHazardHit
	EventLevelCleared
	EventVictory
	EventDefeat
)

// Event is a notable occurrence within a tick, for logging and feedback.
type Event struct {
	Kind       EventKind
	LevelIndex int
	Lives      int
}

// String describes the event.
func (e Event) String() string {
	switch e.Kind {
	case EventEnemyHit:
		return fmt.Sprintf("enemy contact on level %d, lives %d", e.LevelIndex+1, e.Lives)
	case EventHazardHit:
		return fmt.Sprintf("hazard contact on level %d, lives %d", e.LevelIndex+1, e.Lives)
	case EventLevelCleared:
		return fmt.Sprintf("level %d cleared", e.LevelIndex+1)
	case EventVictory:
		return "all levels cleared"
	case EventDefeat:
		return fmt.Sprintf("out of lives on level %d", e.LevelIndex+1)
	default:
		return "unknown event"
	}
}

// TickResult reports the run after one tick.
type TickResult struct {
	Phase      Phase
	LevelIndex int
	Events     []Event
}

// Run is the state of one play-through: the current level and the player.
type Run struct {
	catalog    *Catalog
	settings   Settings
	levelIndex int
	level      *Level
	player     *Player
	phase      Phase
	ticks      uint64
}

// NewRun starts a run at the first level.
func NewRun(catalog *Catalog, settings Settings) *Run {
	r := &Run{
		catalog:  catalog,
		settings: settings,
		player:   NewPlayer(settings),
		phase:    PhasePlaying,
	}
	r.enterLevel(0)
	return r
}

// NewRunAt starts a run at the given level index.
func NewRunAt(catalog *Catalog, settings Settings, start int) (*Run, error) {
	if start < 0 || start >= catalog.Len() {
		return nil, invalid(CodeBadStart, "start level %d out of range [0, %d)", start, catalog.Len())
	}
	r := NewRun(catalog, settings)
	r.enterLevel(start)
	return r, nil
}

// enterLevel loads a fresh copy of the level and puts the player at spawn.
func (r *Run) enterLevel(i int) {
	r.levelIndex = i
	r.level = r.catalog.Level(i)
	r.player.Respawn()
}

// Tick advances the simulation by one fixed step.
// Terminal runs are left untouched.
func (r *Run) Tick(in Input) TickResult {
	if r.phase.Terminal() {
		return TickResult{Phase: r.phase, LevelIndex: r.levelIndex}
	}
	r.ticks++

	var events []Event
	p := r.player
	lvl := r.level

	p.Update(in, lvl.Platforms)

	// Contact is not debounced: sustained overlap costs a life every tick.
	for i := range lvl.Enemies {
		e := &lvl.Enemies[i]
		e.Patrol(lvl.Platforms)
		if p.Bounds.Overlaps(e.Bounds) {
			p.Lives--
			p.Respawn()
			events = append(events, Event{Kind: EventEnemyHit, LevelIndex: r.levelIndex, Lives: p.Lives})
		}
	}

	if h := lvl.Hazard; h != nil && p.Bounds.Overlaps(h.Bounds) {
		p.Lives -= h.Damage
		p.Respawn()
		events = append(events, Event{Kind: EventHazardHit, LevelIndex: r.levelIndex, Lives: p.Lives})
	}

	if p.Bounds.Overlaps(lvl.Goal) {
		events = append(events, Event{Kind: EventLevelCleared, LevelIndex: r.levelIndex, Lives: p.Lives})
		if r.levelIndex+1 < r.catalog.Len() {
			r.enterLevel(r.levelIndex + 1)
		} else {
			r.phase = PhaseVictory
		}
	}

	// The lives check has the final say over anything else this tick.
	if p.Lives <= 0 {
		r.phase = PhaseDefeat
	}

	switch r.phase {
	case PhaseVictory:
		events = append(events, Event{Kind: EventVictory, LevelIndex: r.levelIndex, Lives: p.Lives})
	case PhaseDefeat:
		events = append(events, Event{Kind: EventDefeat, LevelIndex: r.levelIndex, Lives: p.Lives})
	}

	return TickResult{Phase: r.phase, LevelIndex: r.levelIndex, Events: events}
}

// Phase returns the current phase.
func (r *Run) Phase() Phase {
	return r.phase
}

// LevelIndex returns the index of the current level.
func (r *Run) LevelIndex() int {
	return r.levelIndex
}

// LevelCount returns the number of levels in the run's catalog.
func (r *Run) LevelCount() int {
	return r.catalog.Len()
}

// Level returns the level being played.
func (r *Run) Level() *Level {
	return r.level
}

// Player returns the run's player.
func (r *Run) Player() *Player {
	return r.player
}

// Ticks returns the number of simulated ticks.
func (r *Run) Ticks() uint64 {
	return r.ticks
}

// Message returns the end-of-run message, or "" while playing.
func (r *Run) Message() string {
	switch r.phase {
	case PhaseVictory:
		return MessageVictory
	case PhaseDefeat:
		return MessageDefeat
	default:
		return ""
	}
}
