package pacmaze

import (
	"testing"

	"github.com/vovakirdan/pacmaze/internal/core"
	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/engine"
	"github.com/vovakirdan/pacmaze/internal/registry"
)

// tinyLevel is a one-pellet maze with the ghost sealed away, so a
// single move to the right clears it.
var tinyLevel = engine.Level{
	Name:      "Tiny",
	TickMs:    200,
	PowerUpMs: 8000,
	Scoring:   engine.Scoring{Pellet: 10, PowerPellet: 50, Capture: 200, Hit: 100},
	Layout: []string{
		"#####",
		"#P. #",
		"#####",
		"#G###",
		"#####",
	},
}

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionRight)
		}
		if i == 120 {
			input.Set(core.ActionUp)
		}
		if i == 200 {
			input.Set(core.ActionFire)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshot mismatch:\n%+v\nvs\n%+v", snap1, snap2)
	}
}

func TestMoveCadence(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// 200ms per engine step at 60 platform ticks per second
	if g.moveEveryTicks != 12 {
		t.Fatalf("moveEveryTicks = %d, expected 12", g.moveEveryTicks)
	}

	input := core.NewInputFrame()
	for i := 0; i < 11; i++ {
		g.Step(input)
	}
	if g.moveTicker != 11 {
		t.Errorf("moveTicker = %d after 11 steps, expected 11", g.moveTicker)
	}
	g.Step(input)
	if g.moveTicker != 0 {
		t.Errorf("moveTicker = %d after the engine step, expected 0", g.moveTicker)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("expected game to be paused")
	}

	before := g.Snapshot()
	input.Clear()
	for i := 0; i < 50; i++ {
		g.Step(input)
	}
	after := g.Snapshot()
	if before.PlayerX != after.PlayerX || before.PlayerY != after.PlayerY || before.Score != after.Score {
		t.Error("simulation advanced while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("expected pause to toggle off")
	}
}

func TestCampaignLevelClearAndWin(t *testing.T) {
	SetCustomLevels([]engine.Level{tinyLevel})
	defer SetCustomLevels(nil)

	g := New()
	g.Reset(testConfig(5))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < g.moveEveryTicks; i++ {
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.State != StateLevelCleared {
		t.Fatalf("state = %v, expected level cleared", snap.State)
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected 10", snap.Score)
	}

	// Ride out the interstitial; the only level was the last one
	input.Clear()
	for i := 0; i < 91; i++ {
		g.Step(input)
	}
	if got := g.Snapshot().State; got != StateWin {
		t.Errorf("state = %v, expected win after the final maze", got)
	}
}

func TestEndlessAdvancesWithoutInterstitial(t *testing.T) {
	SetCustomLevels([]engine.Level{tinyLevel})
	defer SetCustomLevels(nil)

	g := NewEndless()
	g.Reset(testConfig(5))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < g.moveEveryTicks; i++ {
		g.Step(input)
	}

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Fatalf("state = %v, expected playing in the next maze", snap.State)
	}
	if snap.Level != 2 {
		t.Errorf("level = %d, expected 2", snap.Level)
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected the score to carry over", snap.Score)
	}
}

func TestFireSpawnsProjectile(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	input.Set(core.ActionFire)
	g.Step(input)

	if got := g.Snapshot().ProjectilesLive; got != 1 {
		t.Errorf("%d projectiles live, expected 1", got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))
	g.gameOver = true

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	snap := g.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("state = %v, expected playing after restart", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0 after restart", snap.Score)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("expected too-small flag for a 10x5 screen")
	}
	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("state = %v, expected paused for small window", got)
	}

	// Rendering the too-small overlay must not panic
	g.Render(core.NewScreen(10, 5))
}

func TestRegistryRegistration(t *testing.T) {
	for _, id := range []string{"pacmaze", "pacmaze_endless"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
			continue
		}
		game, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q): %v", id, err)
			continue
		}
		if game.ID() != id {
			t.Errorf("ID() = %q, expected %q", game.ID(), id)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The player glyph must be somewhere on screen
	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if r := screen.Get(x, y); r == 'C' || r == 'c' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("player glyph not rendered")
	}
}
