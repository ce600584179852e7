package generator

import (
	"fmt"
	"math/rand"

	"roomforge/pkg/game/descriptor"
)

// directions in the order lines are tried: up, right, down, left
var directions = []cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// LineWalkerGenerator generates levels by walking lines of rooms in
// random directions from the centre, with branching probability
type LineWalkerGenerator struct {
	BranchProbability float64
	MinRun            int
	MaxRun            int

	// Parts is how many parts are placed. The pedestal gets its own room.
	Parts int

	// SwitchWall puts a switch wall in front of the exit and a wall switch
	// in a room that can be reached without passing it
	SwitchWall bool
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a new level of the given size. The result is fully
// determined by rng.
func (g *LineWalkerGenerator) Generate(rng *rand.Rand, width, height int) (descriptor.Raw, error) {
	needed := g.Parts + 3 // start, exit, pedestal
	if g.SwitchWall {
		needed++
	}
	if width <= 0 || height <= 0 || width*height < needed {
		return descriptor.Raw{}, fmt.Errorf("%w: %dx%d needs %d rooms", ErrTooSmall, width, height, needed)
	}

	l := newLayout(width, height)
	start := cell{height / 2, width / 2}
	l.carve(start)

	// main lines in all four directions, in random order
	for _, i := range rng.Perm(len(directions)) {
		g.buildLine(rng, l, start, directions[i], g.BranchProbability)
	}
	g.grow(rng, l, start, needed)

	// the exit goes to the room furthest from the start
	dist := l.distances(start, nil)
	exit := start
	for _, p := range l.roomsInOrder() {
		if d, ok := dist[p]; ok && d > dist[exit] {
			exit = p
		}
	}

	l.rooms[start.row][start.col] = descriptor.RoomStart
	l.rooms[exit.row][exit.col] = descriptor.RoomEnd

	free := g.freeRooms(l, start, exit)
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	if g.SwitchWall {
		free = g.placeSwitch(l, start, exit, free)
	}
	for i := 0; i < g.Parts && len(free) > 0; i++ {
		p := free[0]
		free = free[1:]
		l.rooms[p.row][p.col] = descriptor.RoomPart
	}
	if len(free) > 0 {
		l.rooms[free[0].row][free[0].col] = descriptor.RoomPartAssembly
	}

	return l.raw(), nil
}

// buildLine carves a line of rooms from p in direction dir and returns
// where it ended
func (g *LineWalkerGenerator) buildLine(rng *rand.Rand, l *layout, p cell, dir cell, branchProbability float64) cell {
	distance := g.MinRun
	if g.MaxRun > g.MinRun {
		distance += rng.Intn(g.MaxRun - g.MinRun + 1)
	}

	for segment := 0; segment < distance; segment++ {
		next := cell{p.row + dir.row, p.col + dir.col}
		if !l.inBounds(next) {
			return p
		}
		l.carve(next)
		l.open(p, next)

		if rng.Float64() < branchProbability {
			g.buildLine(rng, l, next, directions[rng.Intn(len(directions))], branchProbability-0.1)
		}
		p = next
	}
	return p
}

// grow adds rooms next to existing ones until the layout has at least
// needed rooms
func (g *LineWalkerGenerator) grow(rng *rand.Rand, l *layout, start cell, needed int) {
	for len(l.roomsInOrder()) < needed {
		var frontier [][2]cell
		for _, p := range l.roomsInOrder() {
			for _, d := range directions {
				n := cell{p.row + d.row, p.col + d.col}
				if l.inBounds(n) && !l.isRoom(n) {
					frontier = append(frontier, [2]cell{p, n})
				}
			}
		}
		if len(frontier) == 0 {
			return
		}
		edge := frontier[rng.Intn(len(frontier))]
		l.carve(edge[1])
		l.open(edge[0], edge[1])
	}
}

// freeRooms returns the rooms other than start and exit, in row-major order
func (g *LineWalkerGenerator) freeRooms(l *layout, start, exit cell) []cell {
	var free []cell
	for _, p := range l.roomsInOrder() {
		if p != start && p != exit {
			free = append(free, p)
		}
	}
	return free
}

// placeSwitch turns the exit's open walls into switch walls and puts the
// wall switch in a free room that stays reachable. Returns the rooms that
// are still free.
func (g *LineWalkerGenerator) placeSwitch(l *layout, start, exit cell, free []cell) []cell {
	reachable := l.distances(start, map[cell]bool{exit: true})
	for i, p := range free {
		if _, ok := reachable[p]; !ok {
			continue
		}
		l.rooms[p.row][p.col] = descriptor.RoomWallSwitch
		for _, n := range l.neighbors(exit, passable) {
			*l.wallBetween(exit, n) = descriptor.WallSwitch
		}
		return append(free[:i:i], free[i+1:]...)
	}
	return free
}
