package engine

import "fmt"

// Tile is the kind of a single maze cell.
// The numeric values match the level tile codes.
type Tile uint8

const (
	TileEmpty       Tile = 0
	TileWall        Tile = 1
	TilePellet      Tile = 2
	TilePlayerSpawn Tile = 3
	TileGhostSpawn  Tile = 4
	TilePowerPellet Tile = 5
)

// MaxGhosts is the ghost roster size. Spawn markers beyond this
// count are treated as empty cells.
const MaxGhosts = 4

// Grid is the immutable wall/spawn layout of a level.
// Pellet presence is tracked separately as mutable sets (see Pellets),
// so a Grid can be shared between restarts.
type Grid struct {
	Width  int
	Height int

	tiles       []Tile // row-major, y*Width+x
	playerSpawn Point
	ghostSpawns []Point // roster order: top-to-bottom, left-to-right
}

// NewGrid builds a grid from numeric tile codes. Ragged rows are
// padded with empty cells. Exactly one player spawn is required.
func NewGrid(codes [][]int) (*Grid, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("engine: empty layout")
	}

	h := len(codes)
	w := 0
	for _, row := range codes {
		if len(row) > w {
			w = len(row)
		}
	}
	if w == 0 {
		return nil, fmt.Errorf("engine: layout has no columns")
	}

	g := &Grid{
		Width:  w,
		Height: h,
		tiles:  make([]Tile, w*h),
	}

	players := 0
	for y, row := range codes {
		for x, code := range row {
			if code < 0 || code > int(TilePowerPellet) {
				return nil, fmt.Errorf("engine: invalid tile code %d at (%d,%d)", code, x, y)
			}
			t := Tile(code)
			switch t {
			case TilePlayerSpawn:
				players++
				g.playerSpawn = Point{X: x, Y: y}
			case TileGhostSpawn:
				if len(g.ghostSpawns) >= MaxGhosts {
					t = TileEmpty
				} else {
					g.ghostSpawns = append(g.ghostSpawns, Point{X: x, Y: y})
				}
			}
			g.tiles[y*w+x] = t
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("engine: layout needs exactly one player spawn, found %d", players)
	}

	return g, nil
}

// Tile returns the tile kind at p, or TileWall for out-of-bounds
// coordinates so every query is total.
func (g *Grid) Tile(p Point) Tile {
	if p.X < 0 || p.X >= g.Width || p.Y < 0 || p.Y >= g.Height {
		return TileWall
	}
	return g.tiles[p.Y*g.Width+p.X]
}

// IsWall reports whether p is a wall. Anything outside the grid
// counts as a wall; tunnel wrap is applied by the caller before this
// check, so horizontal out-of-range never reaches here for normal
// entity movement.
func (g *Grid) IsWall(p Point) bool {
	return g.Tile(p) == TileWall
}

// NextPosition applies the unit delta for dir with horizontal tunnel
// wrap: x < 0 wraps to Width-1, x >= Width wraps to 0. There is no
// vertical wrap, and DirStop yields no displacement.
func (g *Grid) NextPosition(p Point, dir Direction) Point {
	dx, dy := dir.Delta()
	next := Point{X: p.X + dx, Y: p.Y + dy}
	if next.X < 0 {
		next.X = g.Width - 1
	} else if next.X >= g.Width {
		next.X = 0
	}
	return next
}

// PlayerSpawn returns the player's initial cell.
func (g *Grid) PlayerSpawn() Point {
	return g.playerSpawn
}

// GhostSpawns returns the ghost spawn cells in roster order.
func (g *Grid) GhostSpawns() []Point {
	spawns := make([]Point, len(g.ghostSpawns))
	copy(spawns, g.ghostSpawns)
	return spawns
}

// Pellets derives fresh mutable pellet and power-pellet sets from the
// layout. The two sets are disjoint by construction.
func (g *Grid) Pellets() (pellets, powerPellets map[Point]bool) {
	pellets = make(map[Point]bool)
	powerPellets = make(map[Point]bool)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{X: x, Y: y}
			switch g.Tile(p) {
			case TilePellet:
				pellets[p] = true
			case TilePowerPellet:
				powerPellets[p] = true
			}
		}
	}
	return pellets, powerPellets
}
