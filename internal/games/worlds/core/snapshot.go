package core

// Snapshot captures the run state with primitive types only, for
// determinism testing and debugging.
type Snapshot struct {
	Tick        uint64
	LevelIndex  int
	Phase       Phase
	PlayerX     int
	PlayerY     int
	PlayerVY2   int // Vertical velocity in half-pixel units
	OnGround    bool
	FacingRight bool
	Lives       int
	Score       int

	// Each enemy is 3 ints: X, Y, Direction
	EnemyData []int
}

// Snapshot returns the current run state as a Snapshot.
func (r *Run) Snapshot() Snapshot {
	p := r.player
	enemyData := make([]int, 0, len(r.level.Enemies)*3)
	for _, e := range r.level.Enemies {
		enemyData = append(enemyData, e.Bounds.X, e.Bounds.Y, e.Direction)
	}

	return Snapshot{
		Tick:        r.ticks,
		LevelIndex:  r.levelIndex,
		Phase:       r.phase,
		PlayerX:     p.Bounds.X,
		PlayerY:     p.Bounds.Y,
		PlayerVY2:   int(p.VY * 2),
		OnGround:    p.OnGround,
		FacingRight: p.FacingRight,
		Lives:       p.Lives,
		Score:       p.Score,
		EnemyData:   enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY2)  //#nosec G115 -- hash computation
	h = h*31 + boolHash(snap.OnGround)
	h = h*31 + boolHash(snap.FacingRight)
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolHash(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
