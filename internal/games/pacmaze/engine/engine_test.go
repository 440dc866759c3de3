package engine

import (
	"math/rand"
	"testing"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	codes, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	g, err := NewGrid(codes)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func newTestEngine(t *testing.T, seed int64, rows ...string) *Engine {
	t.Helper()
	return New(mustGrid(t, rows...), DefaultRules(), rand.New(rand.NewSource(seed)))
}

func TestPelletConsumption(t *testing.T) {
	// Player at (0,1) facing right, single pellet at (1,1).
	e := newTestEngine(t, 1,
		"###",
		"P.#",
		"###",
	)

	e.SetDirection(DirRight)
	e.Tick()

	snap := e.Snapshot()
	if snap.Player.Pos != (Point{X: 1, Y: 1}) {
		t.Errorf("player at %v, want (1,1)", snap.Player.Pos)
	}
	if len(snap.Pellets) != 0 {
		t.Errorf("pellet set has %d entries, want 0", len(snap.Pellets))
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, want 10", snap.Score)
	}
	if snap.Status != StatusWon {
		t.Errorf("status = %v, want won (last pellet eaten)", snap.Status)
	}
}

func TestTunnelWrap(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"  P  ",
		"#####",
	)

	e.SetDirection(DirLeft)
	for range 3 {
		e.Tick()
	}

	// 2 -> 1 -> 0 -> wraps to 4.
	if got := e.Snapshot().Player.Pos; got != (Point{X: 4, Y: 1}) {
		t.Errorf("player at %v, want (4,1) after wrap", got)
	}
}

func TestBlockedMoveStopsPlayer(t *testing.T) {
	e := newTestEngine(t, 1,
		"###",
		"#P#",
		"# #",
		"###",
	)

	e.SetDirection(DirDown)
	e.Tick() // moves to (1,2)
	e.Tick() // blocked by the bottom wall

	snap := e.Snapshot()
	if snap.Player.Pos != (Point{X: 1, Y: 2}) {
		t.Errorf("player at %v, want (1,2)", snap.Player.Pos)
	}
	if snap.Player.Dir != DirStop {
		t.Errorf("dir = %v, want stop after blocked step", snap.Player.Dir)
	}
}

func TestQueuedTurnTakenWhenLegal(t *testing.T) {
	// L-shaped corridor: the queued down-turn is illegal at (1,1) and
	// becomes the committed direction as soon as the corner opens.
	e := newTestEngine(t, 1,
		"#####",
		"#P  #",
		"###.#",
		"#####",
	)

	e.SetDirection(DirRight)
	e.Tick()
	e.SetDirection(DirDown)
	e.Tick() // down blocked at (2,1): keeps going right
	snap := e.Snapshot()
	if snap.Player.Pos != (Point{X: 3, Y: 1}) {
		t.Fatalf("player at %v, want (3,1)", snap.Player.Pos)
	}
	if snap.Player.Dir != DirRight {
		t.Fatalf("dir = %v, want right while turn is illegal", snap.Player.Dir)
	}

	e.Tick() // at (3,1) the down-turn is open and wins over forward
	snap = e.Snapshot()
	if snap.Player.Pos != (Point{X: 3, Y: 2}) {
		t.Errorf("player at %v, want (3,2) after cornering", snap.Player.Pos)
	}
	if snap.Player.Dir != DirDown {
		t.Errorf("dir = %v, want down", snap.Player.Dir)
	}
}

func TestMouthToggle(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"#P..#",
		"#####",
	)

	open := e.Snapshot().Player.MouthOpen
	e.Tick()
	if e.Snapshot().Player.MouthOpen == open {
		t.Error("mouth toggle did not flip")
	}
	e.Tick()
	if e.Snapshot().Player.MouthOpen != open {
		t.Error("mouth toggle did not flip back")
	}
}

func TestLossShortCircuitsTick(t *testing.T) {
	// Ghost at (3,1) can only move left into (2,1); the player steps
	// onto the same pellet cell. Loss must leave the pellet and score
	// untouched.
	e := newTestEngine(t, 1,
		"#####",
		"#P.G#",
		"#####",
	)

	e.SetDirection(DirRight)
	e.Tick()

	snap := e.Snapshot()
	if snap.Status != StatusLost {
		t.Fatalf("status = %v, want lost", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, want 0 (pellet effects skipped)", snap.Score)
	}
	if len(snap.Pellets) != 1 {
		t.Errorf("pellet set has %d entries, want 1", len(snap.Pellets))
	}
}

func TestFrightenedCapture(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"#P.G#",
		"#####",
	)
	e.powerUp = PowerUp{Active: true, TicksLeft: 10}
	e.ghosts[0].Frightened = true

	e.SetDirection(DirRight)
	e.Tick()

	snap := e.Snapshot()
	if snap.Status != StatusPlaying {
		t.Fatalf("status = %v, want playing after capture", snap.Status)
	}
	gh := snap.Ghosts[0]
	if gh.Pos != gh.Spawn {
		t.Errorf("ghost at %v, want spawn %v", gh.Pos, gh.Spawn)
	}
	if gh.Frightened {
		t.Error("captured ghost should not be frightened")
	}
	// Capture score plus the pellet under the player.
	if snap.Score != 200+10 {
		t.Errorf("score = %d, want 210", snap.Score)
	}
}

func TestPowerPelletOverCapturedGhost(t *testing.T) {
	// The player eats a power-pellet in the same tick it captures a
	// ghost on that cell: the fresh frightened wave must skip the
	// just-reset ghost.
	e := newTestEngine(t, 1,
		"#####",
		"#PoG#",
		"#####",
	)
	e.powerUp = PowerUp{Active: true, TicksLeft: 3}
	e.ghosts[0].Frightened = true

	e.SetDirection(DirRight)
	e.Tick()

	snap := e.Snapshot()
	if snap.Status != StatusPlaying {
		t.Fatalf("status = %v, want playing", snap.Status)
	}
	if snap.Ghosts[0].Frightened {
		t.Error("ghost reset this tick must end the tick unfrightened")
	}
	if !snap.PowerUp.Active || snap.PowerUp.TicksLeft != e.rules.PowerUpTicks {
		t.Errorf("power-up = %+v, want fresh counter %d", snap.PowerUp, e.rules.PowerUpTicks)
	}
	if snap.Score != 200+50 {
		t.Errorf("score = %d, want 250", snap.Score)
	}
}

func TestPowerUpLifecycle(t *testing.T) {
	// The ghost and a spare pellet are boxed in so the run can
	// neither be lost nor won early.
	e := newTestEngine(t, 1,
		"#####",
		"#Po #",
		"#####",
		"#G#.#",
		"#####",
	)

	e.SetDirection(DirRight)
	e.Tick()

	snap := e.Snapshot()
	if !snap.PowerUp.Active {
		t.Fatal("power-up should be active after eating power-pellet")
	}
	if snap.PowerUp.TicksLeft != e.rules.PowerUpTicks {
		t.Fatalf("counter = %d, want %d", snap.PowerUp.TicksLeft, e.rules.PowerUpTicks)
	}
	for _, gh := range snap.Ghosts {
		if !gh.Frightened {
			t.Error("all ghosts should be frightened on activation")
		}
	}

	// The counter strictly decreases by one per tick, and frightened
	// clears exactly when it reaches zero.
	for left := e.rules.PowerUpTicks - 1; left > 0; left-- {
		e.Tick()
		if e.powerUp.TicksLeft != left {
			t.Fatalf("counter = %d, want %d", e.powerUp.TicksLeft, left)
		}
	}
	e.Tick()
	snap = e.Snapshot()
	if snap.PowerUp.Active {
		t.Error("power-up should deactivate when the counter hits zero")
	}
	for _, gh := range snap.Ghosts {
		if gh.Frightened {
			t.Error("frightened should clear with the power-up")
		}
	}
}

func TestProjectileCap(t *testing.T) {
	e := newTestEngine(t, 1,
		"#######",
		"#P....#",
		"#######",
	)
	e.SetDirection(DirRight)

	for i := range 5 {
		fired := e.Fire()
		if i < MaxProjectiles && !fired {
			t.Errorf("fire %d should succeed", i)
		}
		if i >= MaxProjectiles && fired {
			t.Errorf("fire %d should be a no-op", i)
		}
	}
	if got := len(e.Snapshot().Projectiles); got != MaxProjectiles {
		t.Errorf("%d live projectiles, want %d", got, MaxProjectiles)
	}
}

func TestFireNeedsFacingDirection(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"#P..#",
		"#####",
	)

	if e.Fire() {
		t.Error("fire with no facing direction should be a no-op")
	}
	e.SetDirection(DirRight)
	if !e.Fire() {
		t.Error("queued direction should establish facing")
	}
}

func TestProjectileDespawnsOnWall(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"#P  #",
		"#####",
	)
	e.SetDirection(DirRight)
	e.Fire()

	for range 5 {
		e.Tick()
	}
	if got := len(e.Snapshot().Projectiles); got != 0 {
		t.Errorf("%d live projectiles, want 0 after wall contact", got)
	}
}

func TestProjectileWrapsForever(t *testing.T) {
	// Open tunnel row: no wall, no ghost, so the projectile never
	// despawns and keeps wrapping.
	e := newTestEngine(t, 1,
		"#####",
		"  P  ",
		"#####",
	)
	e.player.Dir = DirRight
	e.Fire()
	e.player.Dir = DirStop // keep the player parked

	for range 12 {
		e.Tick()
	}
	snap := e.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("%d live projectiles, want 1", len(snap.Projectiles))
	}
	// 12 steps from x=2 on a width-5 row: (2+12) mod 5 = 4.
	if snap.Projectiles[0].Pos != (Point{X: 4, Y: 1}) {
		t.Errorf("projectile at %v, want (4,1)", snap.Projectiles[0].Pos)
	}
}

func TestProjectileHitResetsGhost(t *testing.T) {
	e := newTestEngine(t, 1,
		"######",
		"#P.G##",
		"######",
	)
	e.powerUp = PowerUp{Active: true, TicksLeft: 100}
	e.ghosts[0].Frightened = true

	e.player.Dir = DirRight
	e.Fire()
	e.Tick()

	snap := e.Snapshot()
	if len(snap.Projectiles) != 0 {
		t.Errorf("%d live projectiles, want 0 after hit", len(snap.Projectiles))
	}
	gh := snap.Ghosts[0]
	if gh.Pos != gh.Spawn {
		t.Errorf("ghost at %v, want spawn after hit", gh.Pos)
	}
	if gh.Frightened {
		t.Error("hit ghost should not be frightened")
	}
	if snap.Score < 100 {
		t.Errorf("score = %d, want at least the hit value", snap.Score)
	}
}

func TestInputDroppedWhileNotPlaying(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"#P.G#",
		"#####",
	)
	e.SetDirection(DirRight)
	e.Tick() // lost

	if e.Status() != StatusLost {
		t.Fatalf("status = %v, want lost", e.Status())
	}
	e.SetDirection(DirLeft)
	if e.player.NextDir == DirLeft {
		t.Error("direction intent should be dropped after loss")
	}
	if e.Fire() {
		t.Error("fire should be dropped after loss")
	}
	tick := e.tick
	e.Tick()
	if e.tick != tick {
		t.Error("tick should be a no-op while not playing")
	}
}

func TestScoreMonotonic(t *testing.T) {
	lv := GetLevel(0)
	grid, err := lv.Grid()
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(7))
	e := New(grid, lv.Rules(), rng)

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	prev := 0
	for i := 0; i < 2000 && e.Status() == StatusPlaying; i++ {
		e.SetDirection(dirs[rng.Intn(len(dirs))])
		if rng.Intn(10) == 0 {
			e.Fire()
		}
		e.Tick()
		if s := e.Score(); s < prev {
			t.Fatalf("score decreased from %d to %d at tick %d", prev, s, i)
		} else {
			prev = s
		}
	}
}

func TestPlayerNeverOnWall(t *testing.T) {
	lv := GetLevel(1)
	grid, err := lv.Grid()
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(99))
	e := New(grid, lv.Rules(), rng)

	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	for i := 0; i < 3000 && e.Status() == StatusPlaying; i++ {
		e.SetDirection(dirs[rng.Intn(len(dirs))])
		e.Tick()
		snap := e.Snapshot()
		if grid.IsWall(snap.Player.Pos) {
			t.Fatalf("player on wall at %v, tick %d", snap.Player.Pos, i)
		}
		for _, gh := range snap.Ghosts {
			if grid.IsWall(gh.Pos) {
				t.Fatalf("ghost %d on wall at %v, tick %d", gh.ID, gh.Pos, i)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	lv := GetLevel(0)
	grid1, _ := lv.Grid()
	grid2, _ := lv.Grid()
	e1 := New(grid1, lv.Rules(), rand.New(rand.NewSource(12345)))
	e2 := New(grid2, lv.Rules(), rand.New(rand.NewSource(12345)))

	for i := range 400 {
		if i == 20 {
			e1.SetDirection(DirRight)
			e2.SetDirection(DirRight)
		}
		if i == 60 {
			e1.SetDirection(DirUp)
			e2.SetDirection(DirUp)
			e1.Fire()
			e2.Fire()
		}
		e1.Tick()
		e2.Tick()
	}

	s1, s2 := e1.Snapshot(), e2.Snapshot()
	if s1.Player != s2.Player {
		t.Errorf("player mismatch: %+v vs %+v", s1.Player, s2.Player)
	}
	if s1.Score != s2.Score {
		t.Errorf("score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Status != s2.Status {
		t.Errorf("status mismatch: %v vs %v", s1.Status, s2.Status)
	}
	for i := range s1.Ghosts {
		if s1.Ghosts[i] != s2.Ghosts[i] {
			t.Errorf("ghost %d mismatch: %+v vs %+v", i, s1.Ghosts[i], s2.Ghosts[i])
		}
	}
}

func TestRestartAndAdvancePreserveScoreRules(t *testing.T) {
	lv := GetLevel(0)
	grid, _ := lv.Grid()
	e := New(grid, lv.Rules(), rand.New(rand.NewSource(3)))
	e.score = 500

	next := GetLevel(1)
	nextGrid, _ := next.Grid()
	e.AdvanceLevel(nextGrid, next.Rules())
	if e.Score() != 500 {
		t.Errorf("advance: score = %d, want 500 preserved", e.Score())
	}
	if e.Status() != StatusPlaying {
		t.Errorf("advance: status = %v, want playing", e.Status())
	}

	e.Restart(grid, lv.Rules())
	if e.Score() != 0 {
		t.Errorf("restart: score = %d, want 0", e.Score())
	}
	if len(e.projectiles) != 0 {
		t.Error("restart: projectiles should be cleared")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	e := newTestEngine(t, 1,
		"#####",
		"#P.G#",
		"#####",
	)
	snap := e.Snapshot()
	snap.Ghosts[0].Pos = Point{X: 9, Y: 9}
	for p := range snap.Pellets {
		delete(snap.Pellets, p)
	}

	if e.ghosts[0].Pos == (Point{X: 9, Y: 9}) {
		t.Error("snapshot ghosts alias engine state")
	}
	if len(e.pellets) == 0 {
		t.Error("snapshot pellet set aliases engine state")
	}
}
