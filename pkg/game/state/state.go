// Package state holds the session state of one loaded level.
package state

import (
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/descriptor"
	"roomforge/pkg/game/entities"
	"roomforge/pkg/game/puzzle"
)

// Level is everything one LoadLevel call produced. It is discarded and
// rebuilt on the next load.
type Level struct {
	Bucket descriptor.Bucket
	Index  int

	Grid   *world.Grid
	Puzzle *puzzle.State

	StartingPosition world.Position
	HasStart         bool

	Exit      *entities.Exit
	Parts     []*entities.Part
	Pedestals []*entities.Pedestal
	Switches  []*entities.WallSwitch
	Blockers  []*entities.Blocker

	Dialogue []string
}

// NewLevel creates an empty level session over grid
func NewLevel(grid *world.Grid, p *puzzle.State) *Level {
	return &Level{
		Grid:   grid,
		Puzzle: p,
	}
}

// Detach drops every subscription held by the level's interactive objects
// and detaches the puzzle state, so neither stale objects nor a stale
// puzzle state can reach the next level.
func (l *Level) Detach() {
	if l == nil {
		return
	}
	l.Puzzle.Detach()
	if l.Exit != nil {
		l.Exit.Detach()
	}
	for _, p := range l.Parts {
		p.Detach()
	}
	for _, p := range l.Pedestals {
		p.Detach()
	}
	for _, s := range l.Switches {
		s.Detach()
	}
}

// PartsRemaining returns how many parts are still on the floor
func (l *Level) PartsRemaining() int {
	n := 0
	for _, p := range l.Parts {
		if !p.Collected {
			n++
		}
	}
	return n
}

// PartAt returns the uncollected part in the given room, or nil
func (l *Level) PartAt(cell world.Position) *entities.Part {
	for _, p := range l.Parts {
		if p.Cell == cell && !p.Collected {
			return p
		}
	}
	return nil
}

// SwitchAt returns the wall switch in the given room, or nil
func (l *Level) SwitchAt(cell world.Position) *entities.WallSwitch {
	for _, s := range l.Switches {
		if s.Cell == cell {
			return s
		}
	}
	return nil
}

// PedestalAt returns the pedestal in the given room, or nil
func (l *Level) PedestalAt(cell world.Position) *entities.Pedestal {
	for _, p := range l.Pedestals {
		if p.Cell == cell {
			return p
		}
	}
	return nil
}
