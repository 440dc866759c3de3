package engine

import "fmt"

// Scoring holds per-level score values.
type Scoring struct {
	Pellet      int
	PowerPellet int
	Capture     int
	Hit         int
}

// Level is one maze definition with its timing and scoring constants.
// Layout characters: '#' wall, '.' pellet, 'o' power-pellet,
// 'P' player spawn, 'G' ghost spawn, ' ' empty.
type Level struct {
	ID        int
	Name      string
	TickMs    int // simulation step interval
	PowerUpMs int // power-up duration
	Scoring   Scoring
	Layout    []string
}

// Rules derives the engine rules for this level. The frightened
// window is the power-up duration divided by the tick interval.
func (l *Level) Rules() Rules {
	ticks := 0
	if l.TickMs > 0 {
		ticks = l.PowerUpMs / l.TickMs
	}
	return Rules{
		PelletScore:      l.Scoring.Pellet,
		PowerPelletScore: l.Scoring.PowerPellet,
		CaptureScore:     l.Scoring.Capture,
		HitScore:         l.Scoring.Hit,
		PowerUpTicks:     ticks,
	}
}

// Grid parses the level layout into a Grid.
func (l *Level) Grid() (*Grid, error) {
	codes, err := ParseLayout(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	return NewGrid(codes)
}

// ParseLayout converts ASCII maze rows into numeric tile codes.
func ParseLayout(rows []string) ([][]int, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine: empty layout")
	}
	codes := make([][]int, len(rows))
	for y, row := range rows {
		codes[y] = make([]int, len(row))
		for x, ch := range []byte(row) {
			switch ch {
			case ' ':
				codes[y][x] = int(TileEmpty)
			case '#':
				codes[y][x] = int(TileWall)
			case '.':
				codes[y][x] = int(TilePellet)
			case 'P':
				codes[y][x] = int(TilePlayerSpawn)
			case 'G':
				codes[y][x] = int(TileGhostSpawn)
			case 'o':
				codes[y][x] = int(TilePowerPellet)
			default:
				return nil, fmt.Errorf("engine: unknown layout char %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return codes, nil
}

var defaultScoring = Scoring{Pellet: 10, PowerPellet: 50, Capture: 200, Hit: 100}

// Levels is the built-in campaign, ordered easiest first.
// Each maze has at least one horizontal tunnel.
var Levels = []Level{
	{
		ID:        1,
		Name:      "Backyard",
		TickMs:    200,
		PowerUpMs: 8000,
		Scoring:   defaultScoring,
		Layout: []string{
			"###############",
			"#......#......#",
			"#.####.#.####.#",
			"#.#..o...o..#.#",
			"#.#.###.###.#.#",
			"....#.G.G.#....",
			"#.#.#######.#.#",
			"#.#....P....#.#",
			"#.####.#.####.#",
			"#o...........o#",
			"###############",
		},
	},
	{
		ID:        2,
		Name:      "Crossroads",
		TickMs:    180,
		PowerUpMs: 7000,
		Scoring:   defaultScoring,
		Layout: []string{
			"###################",
			"#........#........#",
			"#o##.###.#.###.##o#",
			"#.................#",
			"#.##.#.#####.#.##.#",
			"#....#.G.G.G.#....#",
			"......##.#.##......",
			"#.##.#.#####.#.##.#",
			"#........P........#",
			"#.###.##.#.##.###.#",
			"#o..#....#....#..o#",
			"#.................#",
			"###################",
		},
	},
	{
		ID:        3,
		Name:      "Catacombs",
		TickMs:    160,
		PowerUpMs: 6000,
		Scoring:   defaultScoring,
		Layout: []string{
			"###################",
			"#o.......#.......o#",
			"#.##.###.#.###.##.#",
			"#.................#",
			"#.##.#.##.##.#.##.#",
			"#....#..G.G..#....#",
			".....##..#..##.....",
			"#.##.#.G...G.#.##.#",
			"#.................#",
			"#.###.##.#.##.###.#",
			"#...#....P....#...#",
			"#.#.#.###.###.#.#.#",
			"#.#.##.#.#.#.##.#.#",
			"#o...............o#",
			"###################",
		},
	},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the built-in level at index i, or nil.
func GetLevel(i int) *Level {
	if i < 0 || i >= len(Levels) {
		return nil
	}
	return &Levels[i]
}

// LevelNames returns the built-in level names in order.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = l.Name
	}
	return names
}
