package world

// Side is one of the four walls of a room cell.
type Side int

// Side constants
const (
	Left Side = iota
	Right
	Up
	Down
)

// AllSides returns all valid sides for iteration
func AllSides() []Side {
	return []Side{Left, Right, Up, Down}
}

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// IsValid returns true if the side is one of the four walls
func (s Side) IsValid() bool {
	return s >= Left && s <= Down
}

// Opposite returns the side a neighbour shares with this one
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		return s
	}
}

// Delta returns the grid offset of the neighbour behind this side.
// Y grows with the descriptor row index, so Up is -1.
func (s Side) Delta() (dx, dy int) {
	switch s {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Position is a grid coordinate. Grids are centred, so coordinates may be negative.
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position behind the given side
func (p Position) Step(s Side) Position {
	dx, dy := s.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}
