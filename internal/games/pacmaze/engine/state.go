package engine

// Status is the game state machine's current state.
// StatusPaused is the pre-initialization idle state; once a level is
// loaded the engine is StatusPlaying until it wins or loses. Pausing
// mid-game is the scheduler's concern: it simply stops calling Tick.
type Status uint8

const (
	StatusPaused Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// PowerUp is the global timed frightened effect.
type PowerUp struct {
	Active    bool
	TicksLeft int
}

// Snapshot is the committed engine state after a tick. All slices and
// maps are deep copies; callers never observe partial state.
type Snapshot struct {
	Tick         uint64
	Player       Player
	Ghosts       []Ghost
	Projectiles  []Projectile
	Pellets      map[Point]bool
	PowerPellets map[Point]bool
	PowerUp      PowerUp
	Score        int
	Status       Status
}

// Snapshot returns a deep copy of the current committed state.
func (e *Engine) Snapshot() Snapshot {
	ghosts := make([]Ghost, len(e.ghosts))
	copy(ghosts, e.ghosts)

	projectiles := make([]Projectile, len(e.projectiles))
	copy(projectiles, e.projectiles)

	pellets := make(map[Point]bool, len(e.pellets))
	for p := range e.pellets {
		pellets[p] = true
	}
	powerPellets := make(map[Point]bool, len(e.powerPellets))
	for p := range e.powerPellets {
		powerPellets[p] = true
	}

	return Snapshot{
		Tick:         e.tick,
		Player:       e.player,
		Ghosts:       ghosts,
		Projectiles:  projectiles,
		Pellets:      pellets,
		PowerPellets: powerPellets,
		PowerUp:      e.powerUp,
		Score:        e.score,
		Status:       e.status,
	}
}

// tickTxn collects every intermediate result of one tick so the
// engine can commit them in a single step. Loss short-circuits the
// tick: movement is committed but pellet and power-up effects are not.
type tickTxn struct {
	player      Player
	ghosts      []Ghost
	projectiles []Projectile
	powerUp     PowerUp
	scoreDelta  int
	atePellet   bool
	atePower    bool
	// resetGhosts marks ghosts sent back to spawn this tick by a
	// capture or projectile hit; their frightened flag must end the
	// tick false even if a power-pellet is eaten in the same tick.
	resetGhosts map[int]bool
}

func (e *Engine) beginTick() tickTxn {
	ghosts := make([]Ghost, len(e.ghosts))
	copy(ghosts, e.ghosts)
	return tickTxn{
		player:      e.player,
		ghosts:      ghosts,
		powerUp:     e.powerUp,
		resetGhosts: make(map[int]bool),
	}
}

func (e *Engine) commit(tx tickTxn, status Status) {
	e.player = tx.player
	e.ghosts = tx.ghosts
	e.projectiles = tx.projectiles
	e.score += tx.scoreDelta
	if status == StatusPlaying {
		if tx.atePellet {
			delete(e.pellets, tx.player.Pos)
		}
		if tx.atePower {
			delete(e.powerPellets, tx.player.Pos)
		}
		e.powerUp = tx.powerUp
	}
	e.status = status
}
