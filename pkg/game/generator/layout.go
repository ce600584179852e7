package generator

import (
	"strings"

	"roomforge/pkg/game/descriptor"
)

type cell struct {
	row, col int
}

// layout is a level under construction. right[r][c] is the wall to the
// right of room (r,c), down[r][c] the wall below it.
type layout struct {
	width, height int
	rooms         [][]descriptor.RoomCode
	right         [][]descriptor.WallCode
	down          [][]descriptor.WallCode
}

// newLayout returns a layout with no rooms and every wall closed
func newLayout(width, height int) *layout {
	l := &layout{width: width, height: height}
	for r := 0; r < height; r++ {
		rooms := make([]descriptor.RoomCode, width)
		right := make([]descriptor.WallCode, width)
		down := make([]descriptor.WallCode, width)
		for c := 0; c < width; c++ {
			rooms[c] = descriptor.RoomNone
			right[c] = descriptor.WallVertical
			down[c] = descriptor.WallHorizontal
		}
		l.rooms = append(l.rooms, rooms)
		l.right = append(l.right, right)
		l.down = append(l.down, down)
	}
	return l
}

func (l *layout) inBounds(p cell) bool {
	return p.row >= 0 && p.row < l.height && p.col >= 0 && p.col < l.width
}

func (l *layout) isRoom(p cell) bool {
	return l.inBounds(p) && l.rooms[p.row][p.col] != descriptor.RoomNone
}

func (l *layout) carve(p cell) {
	if l.rooms[p.row][p.col] == descriptor.RoomNone {
		l.rooms[p.row][p.col] = descriptor.RoomEmpty
	}
}

// wallBetween returns the wall slot shared by two adjacent rooms
func (l *layout) wallBetween(a, b cell) *descriptor.WallCode {
	switch {
	case a.row == b.row && b.col == a.col+1:
		return &l.right[a.row][a.col]
	case a.row == b.row && b.col == a.col-1:
		return &l.right[b.row][b.col]
	case a.col == b.col && b.row == a.row+1:
		return &l.down[a.row][a.col]
	case a.col == b.col && b.row == a.row-1:
		return &l.down[b.row][b.col]
	}
	return nil
}

func (l *layout) open(a, b cell) {
	if w := l.wallBetween(a, b); w != nil {
		*w = descriptor.WallNone
	}
}

// neighbors returns the rooms reachable from p in one step, in a fixed order
func (l *layout) neighbors(p cell, through func(descriptor.WallCode) bool) []cell {
	var out []cell
	for _, d := range directions {
		n := cell{p.row + d.row, p.col + d.col}
		if !l.isRoom(n) {
			continue
		}
		if w := l.wallBetween(p, n); w != nil && through(*w) {
			out = append(out, n)
		}
	}
	return out
}

// distances runs a BFS from start and returns the step count to every
// reachable room. Rooms in blocked are never entered.
func (l *layout) distances(start cell, blocked map[cell]bool) map[cell]int {
	dist := map[cell]int{start: 0}
	queue := []cell{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range l.neighbors(p, passable) {
			if _, seen := dist[n]; seen || blocked[n] {
				continue
			}
			dist[n] = dist[p] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// roomsInOrder returns every room in row-major order
func (l *layout) roomsInOrder() []cell {
	var out []cell
	for r := 0; r < l.height; r++ {
		for c := 0; c < l.width; c++ {
			if l.isRoom(cell{r, c}) {
				out = append(out, cell{r, c})
			}
		}
	}
	return out
}

// raw encodes the layout in level book row format
func (l *layout) raw() descriptor.Raw {
	var rows []string
	for r := 0; r < l.height; r++ {
		var b strings.Builder
		for c := 0; c < l.width; c++ {
			b.WriteRune(rune(l.rooms[r][c]))
			if c < l.width-1 {
				b.WriteRune(rune(l.right[r][c]))
			}
		}
		rows = append(rows, b.String())

		if r == l.height-1 {
			break
		}
		b.Reset()
		for c := 0; c < l.width; c++ {
			b.WriteRune(rune(l.down[r][c]))
			if c < l.width-1 {
				b.WriteRune('+')
			}
		}
		rows = append(rows, b.String())
	}
	return descriptor.Raw{Rooms: rows}
}

func passable(w descriptor.WallCode) bool {
	return w.State().Passable()
}
