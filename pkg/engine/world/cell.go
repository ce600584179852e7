// Package world provides generic 2D room-grid primitives.
// These are engine-level constructs usable by any room-based level.
package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle identifies an object owned by the rendering side (a floor decoration
// or a placed object). The zero value means "no object".
type Handle = uuid.UUID

// NoHandle is the empty handle
var NoHandle = uuid.Nil

// WallState is the doorway condition of one side of a cell
type WallState int

const (
	WallOpen WallState = iota
	WallClosed
	WallSwitchControlled
)

// String returns the string representation of a wall state
func (w WallState) String() string {
	switch w {
	case WallOpen:
		return "open"
	case WallClosed:
		return "closed"
	case WallSwitchControlled:
		return "switch"
	default:
		return "unknown"
	}
}

// Passable returns true if a player can walk through the wall
func (w WallState) Passable() bool {
	return w == WallOpen
}

// ContentKind is what a room cell holds
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentStart
	ContentEnd
	ContentBlocker
	ContentPart
	ContentAssemblyPedestal
	ContentWallSwitchButton
	ContentInactive
)

// String returns the string representation of a content kind
func (k ContentKind) String() string {
	switch k {
	case ContentEmpty:
		return "empty"
	case ContentStart:
		return "start"
	case ContentEnd:
		return "end"
	case ContentBlocker:
		return "blocker"
	case ContentPart:
		return "part"
	case ContentAssemblyPedestal:
		return "pedestal"
	case ContentWallSwitchButton:
		return "wall-switch"
	case ContentInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// String returns "(x,y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell represents a single room of the level grid
type Cell struct {
	Position Position
	Content  ContentKind

	// Walls indexed by Side
	Walls [4]WallState

	// Decoration is the floor layer the renderer placed for this cell
	Decoration Handle

	// Active is false for cells that are not part of the playable space
	Active bool
}

// NewCell creates an active, empty cell with all walls closed
func NewCell(pos Position) *Cell {
	return &Cell{
		Position: pos,
		Content:  ContentEmpty,
		Walls:    [4]WallState{WallClosed, WallClosed, WallClosed, WallClosed},
		Active:   true,
	}
}

// Wall returns the state of the given side
func (c *Cell) Wall(s Side) WallState {
	if c == nil || !s.IsValid() {
		return WallClosed
	}
	return c.Walls[s]
}

// SetWall sets the state of the given side
func (c *Cell) SetWall(s Side, state WallState) {
	if c == nil || !s.IsValid() {
		return
	}
	c.Walls[s] = state
}

// HasSwitchWalls returns true if any side is switch controlled
func (c *Cell) HasSwitchWalls() bool {
	for _, w := range c.Walls {
		if w == WallSwitchControlled {
			return true
		}
	}
	return false
}

// IsPlayable returns true if the cell is part of the playable space
func (c *Cell) IsPlayable() bool {
	return c != nil && c.Active && c.Content != ContentInactive
}
