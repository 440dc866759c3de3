// Package engine implements the per-tick maze-chase simulation: player
// movement, stochastic ghost AI, projectiles, collisions, pellet
// scoring and power-up timing. It is UI-agnostic and deterministic
// given a seeded random source.
//
// The engine is single-threaded and cooperative: an external
// fixed-interval scheduler calls Tick, and each tick is an atomic
// transform from one committed snapshot to the next. SetDirection and
// Fire are the only out-of-band mutations; they touch nothing a tick
// reads mid-flight and are safe to interleave between ticks.
package engine

import "math/rand"

// Rules holds the per-level scoring constants and power-up length.
type Rules struct {
	PelletScore      int
	PowerPelletScore int
	CaptureScore     int
	HitScore         int
	PowerUpTicks     int // power-up duration divided by tick interval
}

// DefaultRules returns the standard scoring values.
func DefaultRules() Rules {
	return Rules{
		PelletScore:      10,
		PowerPelletScore: 50,
		CaptureScore:     200,
		HitScore:         100,
		PowerUpTicks:     40,
	}
}

// Engine owns one level's committed simulation state.
type Engine struct {
	grid  *Grid
	rules Rules
	rng   *rand.Rand

	tick             uint64
	status           Status
	score            int
	player           Player
	ghosts           []Ghost
	projectiles      []Projectile
	pellets          map[Point]bool
	powerPellets     map[Point]bool
	powerUp          PowerUp
	initialPellets   int
	nextProjectileID int
}

// New creates an engine for the given grid and enters StatusPlaying.
func New(grid *Grid, rules Rules, rng *rand.Rand) *Engine {
	e := &Engine{rng: rng}
	e.load(grid, rules)
	return e
}

// load (re)initializes entities and pellet sets from the grid's spawn
// markers. Score is untouched; callers decide whether it carries over.
func (e *Engine) load(grid *Grid, rules Rules) {
	e.grid = grid
	e.rules = rules
	e.tick = 0
	e.player = newPlayer(grid.PlayerSpawn())
	e.ghosts = newGhosts(grid.GhostSpawns())
	e.projectiles = nil
	e.pellets, e.powerPellets = grid.Pellets()
	e.initialPellets = len(e.pellets) + len(e.powerPellets)
	e.powerUp = PowerUp{}
	e.status = StatusPlaying
}

// AdvanceLevel swaps in the next level's grid, preserving the score.
func (e *Engine) AdvanceLevel(grid *Grid, rules Rules) {
	e.load(grid, rules)
}

// Restart re-enters StatusPlaying on the given grid with score reset
// to zero.
func (e *Engine) Restart(grid *Grid, rules Rules) {
	e.score = 0
	e.load(grid, rules)
}

// Grid returns the immutable level layout.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Tick advances the simulation by one step. It is a no-op unless the
// status is StatusPlaying. Resolution order is fixed: player movement,
// ghost AI, projectiles, player-ghost collisions, then pellets and
// power-up decay; every intermediate result lands in one transaction
// committed at the end.
func (e *Engine) Tick() {
	if e.status != StatusPlaying {
		return
	}
	e.tick++

	tx := e.beginTick()
	e.resolvePlayerMove(&tx)
	e.moveGhosts(&tx)
	e.advanceProjectiles(&tx)
	if e.resolveCollisions(&tx) {
		// A non-frightened ghost reached the player: the loss
		// commits movement but skips pellet and power-up effects.
		e.commit(tx, StatusLost)
		return
	}
	e.applyPellets(&tx)
	e.commit(tx, StatusPlaying)

	// Win detection runs against the committed state.
	if e.initialPellets > 0 && len(e.pellets) == 0 && len(e.powerPellets) == 0 {
		e.status = StatusWon
	}
}

// SetDirection queues a direction intent for the player. Intents only
// ever write the queued-direction field; they are dropped while not
// playing, and DirStop is never a valid intent.
func (e *Engine) SetDirection(d Direction) {
	if e.status != StatusPlaying || d == DirStop {
		return
	}
	e.player.NextDir = d
}

// Fire spawns a projectile at the player's cell along its facing
// direction (committed heading, falling back to the queued one).
// It is a no-op unless the status is StatusPlaying, fewer than
// MaxProjectiles are live, and a facing direction is established.
// Reports whether a projectile was created.
func (e *Engine) Fire() bool {
	if e.status != StatusPlaying || len(e.projectiles) >= MaxProjectiles {
		return false
	}
	dir := e.player.Dir
	if dir == DirStop {
		dir = e.player.NextDir
	}
	if dir == DirStop {
		return false
	}
	e.nextProjectileID++
	e.projectiles = append(e.projectiles, Projectile{
		ID:  e.nextProjectileID,
		Pos: e.player.Pos,
		Dir: dir,
	})
	return true
}
