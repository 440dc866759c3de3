package engine

// MaxProjectiles caps how many projectiles may be live at once.
const MaxProjectiles = 3

// Player is the single player-controlled entity.
// Dir is the committed heading; NextDir is the queued intent applied
// by the two-phase move resolution. MouthOpen is cosmetic and flips
// every tick.
type Player struct {
	Pos       Point
	Dir       Direction
	NextDir   Direction
	MouthOpen bool
}

// GhostColor is a ghost's display color, assigned by roster index.
type GhostColor uint8

const (
	GhostRed GhostColor = iota
	GhostPink
	GhostCyan
	GhostOrange
)

func (c GhostColor) String() string {
	switch c {
	case GhostRed:
		return "red"
	case GhostPink:
		return "pink"
	case GhostCyan:
		return "cyan"
	case GhostOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Ghost is one autonomous chaser. Ghosts are never destroyed: a
// captured or shot ghost is reset to Spawn, not removed.
type Ghost struct {
	ID         int
	Pos        Point
	Spawn      Point
	Dir        Direction
	Color      GhostColor
	Frightened bool
}

// Projectile is a transient entity fired by the player. Its direction
// is fixed at creation and it despawns on the first wall or ghost
// contact; there is no travel-distance limit.
type Projectile struct {
	ID  int
	Pos Point
	Dir Direction
}

func newPlayer(spawn Point) Player {
	return Player{Pos: spawn, Dir: DirStop, NextDir: DirStop}
}

func newGhosts(spawns []Point) []Ghost {
	ghosts := make([]Ghost, len(spawns))
	for i, spawn := range spawns {
		ghosts[i] = Ghost{
			ID:    i,
			Pos:   spawn,
			Spawn: spawn,
			Dir:   DirStop,
			Color: GhostColor(i % 4),
		}
	}
	return ghosts
}
