package levels_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pacmaze/internal/games/pacmaze/levels"
)

const gardenYAML = `id: garden
name: Garden
timing:
  tick_ms: 150
  powerup_ms: 6000
scoring:
  pellet: 20
  power_pellet: 80
  capture: 300
  hit: 150
rows:
  - "#######"
  - "#P...o#"
  - "#.###.#"
  - "#..G..#"
  - "#######"
`

const bareYAML = `id: bare
rows:
  - "#####"
  - "#P.G#"
  - "#####"
`

func writeTestdata(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"garden.yaml": gardenYAML,
		"bare.yml":    bareYAML,
		"notes.txt":   "not a level",
		"broken.yaml": "rows:\n  - \"#?#\"\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(writeTestdata(t))

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and notes.txt are skipped.
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(writeTestdata(t))

	lvl, err := loader.LoadByID("garden")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "Garden" {
		t.Errorf("expected Name 'Garden', got %q", lvl.Name)
	}
	if lvl.TickMs != 150 || lvl.PowerUpMs != 6000 {
		t.Errorf("timing = %d/%d, want 150/6000", lvl.TickMs, lvl.PowerUpMs)
	}
	if lvl.Scoring.Pellet != 20 || lvl.Scoring.Hit != 150 {
		t.Errorf("scoring = %+v, want the file values", lvl.Scoring)
	}

	def := lvl.Definition()
	grid, err := def.Grid()
	if err != nil {
		t.Fatalf("Definition().Grid(): %v", err)
	}
	if len(grid.GhostSpawns()) != 1 {
		t.Errorf("expected 1 ghost spawn, got %d", len(grid.GhostSpawns()))
	}

	if _, err := loader.LoadByID("nope"); err == nil {
		t.Error("unknown ID should fail")
	}
}

func TestLoaderDefaults(t *testing.T) {
	loader := levels.NewLoader(writeTestdata(t))

	lvl, err := loader.LoadByID("bare")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	if lvl.Name != "bare" {
		t.Errorf("name should default to the ID, got %q", lvl.Name)
	}
	if lvl.TickMs != 200 || lvl.PowerUpMs != 8000 {
		t.Errorf("timing defaults = %d/%d, want 200/8000", lvl.TickMs, lvl.PowerUpMs)
	}
	if lvl.Scoring.Pellet != 10 || lvl.Scoring.PowerPellet != 50 {
		t.Errorf("scoring defaults = %+v", lvl.Scoring)
	}
}

func TestLoaderListIDs(t *testing.T) {
	loader := levels.NewLoader(writeTestdata(t))

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	want := []string{"bare", "garden"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}
