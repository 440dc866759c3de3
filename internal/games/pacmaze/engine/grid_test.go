package engine

import "testing"

func TestNewGridValidation(t *testing.T) {
	if _, err := NewGrid(nil); err == nil {
		t.Error("empty layout should be rejected")
	}
	if _, err := NewGrid([][]int{{1, 1}, {1, 1}}); err == nil {
		t.Error("layout without a player spawn should be rejected")
	}
	if _, err := NewGrid([][]int{{3, 0, 3}}); err == nil {
		t.Error("layout with two player spawns should be rejected")
	}
	if _, err := NewGrid([][]int{{3, 9}}); err == nil {
		t.Error("invalid tile code should be rejected")
	}
}

func TestGridRaggedRowsPadded(t *testing.T) {
	g, err := NewGrid([][]int{
		{1, 1, 1, 1},
		{1, 3},
		{1, 1, 1, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("grid %dx%d, want 4x3", g.Width, g.Height)
	}
	// The short row's missing cells read as empty, not wall.
	if g.IsWall(Point{X: 3, Y: 1}) {
		t.Error("padded cell should be empty")
	}
}

func TestGridOutOfBoundsIsWall(t *testing.T) {
	g := mustGrid(t,
		"###",
		"#P#",
		"###",
	)
	for _, p := range []Point{
		{X: -1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 3},
	} {
		if !g.IsWall(p) {
			t.Errorf("out-of-bounds %v should read as wall", p)
		}
	}
}

func TestGridTunnelWrapHorizontalOnly(t *testing.T) {
	g := mustGrid(t,
		"   ",
		" P ",
		"   ",
	)
	if got := g.NextPosition(Point{X: 0, Y: 1}, DirLeft); got != (Point{X: 2, Y: 1}) {
		t.Errorf("left wrap gave %v, want (2,1)", got)
	}
	if got := g.NextPosition(Point{X: 2, Y: 1}, DirRight); got != (Point{X: 0, Y: 1}) {
		t.Errorf("right wrap gave %v, want (0,1)", got)
	}
	// No vertical wrap: the move goes out of bounds and reads as wall.
	if got := g.NextPosition(Point{X: 1, Y: 0}, DirUp); got != (Point{X: 1, Y: -1}) {
		t.Errorf("up from the top row gave %v, want (1,-1)", got)
	}
	if !g.IsWall(Point{X: 1, Y: -1}) {
		t.Error("cell above the top row should read as wall")
	}
}

func TestGhostRosterCap(t *testing.T) {
	g := mustGrid(t,
		"########",
		"#PGGGGGG",
		"########",
	)
	if got := len(g.GhostSpawns()); got != MaxGhosts {
		t.Errorf("%d ghost spawns, want cap of %d", got, MaxGhosts)
	}
	// The overflow markers become plain empty cells.
	if g.Tile(Point{X: 7, Y: 1}) != TileEmpty {
		t.Errorf("overflow spawn tile = %v, want empty", g.Tile(Point{X: 7, Y: 1}))
	}
}

func TestPelletsAreFreshSets(t *testing.T) {
	g := mustGrid(t,
		"#####",
		"#P.o#",
		"#####",
	)
	p1, pp1 := g.Pellets()
	if len(p1) != 1 || len(pp1) != 1 {
		t.Fatalf("got %d pellets and %d power-pellets, want 1 and 1", len(p1), len(pp1))
	}
	delete(p1, Point{X: 2, Y: 1})
	p2, _ := g.Pellets()
	if len(p2) != 1 {
		t.Error("Pellets should return independent sets per call")
	}
}

func TestParseLayoutRejectsUnknownChar(t *testing.T) {
	if _, err := ParseLayout([]string{"#P?#"}); err == nil {
		t.Error("unknown layout char should be rejected")
	}
}
