package engine

// Point is an integer grid cell coordinate.
type Point struct {
	X, Y int
}

// Direction represents a heading on the grid.
// DirStop means no committed heading.
type Direction uint8

const (
	DirStop Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// cardinal lists the four movement directions in a fixed order.
// Ghost AI iterates this order so seeded runs are reproducible.
var cardinal = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirStop has no reverse.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStop
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirStop:
		return "stop"
	default:
		return "unknown"
	}
}
