package world

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNotFound is returned when a position holds no cell
var ErrNotFound = errors.New("room not found")

// Grid is the level map: cells keyed by centred integer coordinates.
// Traversal follows insertion order.
type Grid struct {
	cells  map[Position]*Cell
	order  []Position
	width  int
	height int
}

// NewGrid creates an empty grid with the given dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	return &Grid{
		cells:  make(map[Position]*Cell, width*height),
		order:  make([]Position, 0, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells currently stored
func (g *Grid) Len() int {
	return len(g.order)
}

// Bounds returns the smallest and largest valid coordinates.
// Each axis ranges from -floor(size/2) to size-1-floor(size/2).
func (g *Grid) Bounds() (lo, hi Position) {
	lo = Position{X: -(g.width / 2), Y: -(g.height / 2)}
	hi = Position{X: g.width - 1 - g.width/2, Y: g.height - 1 - g.height/2}
	return lo, hi
}

// InBounds checks if a position lies inside the grid
func (g *Grid) InBounds(p Position) bool {
	lo, hi := g.Bounds()
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// PositionOf converts a descriptor row/column to a grid coordinate
func (g *Grid) PositionOf(row, col int) Position {
	return Position{X: col - g.width/2, Y: row - g.height/2}
}

// RowColOf converts a grid coordinate back to a descriptor row/column
func (g *Grid) RowColOf(p Position) (row, col int) {
	return p.Y + g.height/2, p.X + g.width/2
}

// Put inserts or replaces the cell at its position. Replacing keeps the
// original traversal slot. Returns false if the cell is nil or out of bounds.
func (g *Grid) Put(cell *Cell) bool {
	if cell == nil || !g.InBounds(cell.Position) {
		return false
	}
	if _, found := g.cells[cell.Position]; !found {
		g.order = append(g.order, cell.Position)
	}
	g.cells[cell.Position] = cell
	return true
}

// Get returns the cell at the given position and whether it exists
func (g *Grid) Get(p Position) (*Cell, bool) {
	if g == nil || g.cells == nil {
		return nil, false
	}
	c, found := g.cells[p]
	return c, found
}

// GetCell returns the cell at the given position, or nil if there is none
func (g *Grid) GetCell(p Position) *Cell {
	c, _ := g.Get(p)
	return c
}

// Lookup returns the cell at the given position or ErrNotFound
func (g *Grid) Lookup(p Position) (*Cell, error) {
	c, found := g.Get(p)
	if !found {
		return nil, fmt.Errorf("%w at %v", ErrNotFound, p)
	}
	return c, nil
}

// Exists returns true if a cell is stored at the position
func (g *Grid) Exists(p Position) bool {
	_, found := g.Get(p)
	return found
}

// AddIfMissing creates an empty cell at p unless one already exists.
// Returns the cell at p and whether it was created.
func (g *Grid) AddIfMissing(p Position) (*Cell, bool) {
	if c, found := g.Get(p); found {
		return c, false
	}
	c := NewCell(p)
	if !g.Put(c) {
		return nil, false
	}
	return c, true
}

// GetNeighbor returns the cell behind the given side of c, or nil
func (g *Grid) GetNeighbor(c *Cell, s Side) *Cell {
	if c == nil || !s.IsValid() {
		return nil
	}
	return g.GetCell(c.Position.Step(s))
}

// Clear removes every cell. Dimensions are kept.
func (g *Grid) Clear() {
	clear(g.cells)
	g.order = g.order[:0]
}

// ForEachCell iterates over all cells in insertion order
func (g *Grid) ForEachCell(fn func(p Position, cell *Cell)) {
	for _, p := range g.order {
		fn(p, g.cells[p])
	}
}

// Cells returns a restartable iterator over all cells in insertion order
func (g *Grid) Cells() iter.Seq2[Position, *Cell] {
	return func(yield func(Position, *Cell) bool) {
		for _, p := range g.order {
			if !yield(p, g.cells[p]) {
				return
			}
		}
	}
}

// CheckSharedWalls returns a description of every wall whose state differs
// from the mirrored side of its neighbour. Empty means consistent.
func (g *Grid) CheckSharedWalls() []string {
	var problems []string
	g.ForEachCell(func(p Position, cell *Cell) {
		for _, s := range []Side{Right, Down} {
			n := g.GetNeighbor(cell, s)
			if n == nil {
				continue
			}
			if cell.Wall(s) != n.Wall(s.Opposite()) {
				problems = append(problems, fmt.Sprintf("%v %v=%v but %v %v=%v",
					p, s, cell.Wall(s), n.Position, s.Opposite(), n.Wall(s.Opposite())))
			}
		}
	})
	return problems
}
