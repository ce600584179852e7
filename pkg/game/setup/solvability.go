package setup

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/state"
)

// reachableRooms returns all playable rooms reachable from start by BFS,
// moving only through open walls. With throughSwitchWalls, switch
// controlled walls count as open.
func reachableRooms(grid *world.Grid, start world.Position, throughSwitchWalls bool) mapset.Set[world.Position] {
	reachable := mapset.New[world.Position]()
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		cell := grid.GetCell(current)
		if !cell.IsPlayable() || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, side := range world.AllSides() {
			if !passable(cell.Wall(side), throughSwitchWalls) {
				continue
			}
			n := grid.GetNeighbor(cell, side)
			if n == nil || !n.IsPlayable() || reachable.Has(n.Position) {
				continue
			}
			if !passable(n.Wall(side.Opposite()), throughSwitchWalls) {
				continue
			}
			queue = append(queue, n.Position)
		}
	}

	return reachable
}

func passable(w world.WallState, throughSwitchWalls bool) bool {
	return w == world.WallOpen || (throughSwitchWalls && w == world.WallSwitchControlled)
}

// ReachableFromStart returns the rooms a player can walk to from the start,
// given the current state of the wall switch. Rooms behind switch walls
// count once a switch is reachable or already pressed.
func ReachableFromStart(lvl *state.Level) mapset.Set[world.Position] {
	if lvl == nil || !lvl.HasStart {
		return mapset.New[world.Position]()
	}
	open := lvl.Puzzle != nil && lvl.Puzzle.IsSwitchActivated()
	reachable := reachableRooms(lvl.Grid, lvl.StartingPosition, open)
	if open {
		return reachable
	}
	for _, sw := range lvl.Switches {
		if reachable.Has(sw.Cell) {
			return reachableRooms(lvl.Grid, lvl.StartingPosition, true)
		}
	}
	return reachable
}

// CheckSolvability lists the reasons a loaded level cannot be finished.
// An empty result means start, parts, pedestal and exit are connected and
// there are enough parts for the pedestal.
func CheckSolvability(lvl *state.Level, partsRequired int) []string {
	if lvl == nil {
		return []string{"no level loaded"}
	}
	var problems []string
	if !lvl.HasStart {
		problems = append(problems, "level has no start room")
	}
	if lvl.Exit == nil {
		problems = append(problems, "level has no exit")
	}
	if len(lvl.Pedestals) == 0 {
		problems = append(problems, "level has no assembly pedestal")
	}
	if len(lvl.Parts) < partsRequired {
		problems = append(problems, fmt.Sprintf("level has %d parts, pedestal needs %d", len(lvl.Parts), partsRequired))
	}
	if !lvl.HasStart {
		return problems
	}

	reachable := ReachableFromStart(lvl)
	if lvl.Exit != nil && !reachable.Has(lvl.Exit.Cell) {
		problems = append(problems, fmt.Sprintf("exit at %v is unreachable", lvl.Exit.Cell))
	}
	for _, p := range lvl.Parts {
		if !reachable.Has(p.Cell) {
			problems = append(problems, fmt.Sprintf("part %v at %v is unreachable", p.Variant, p.Cell))
		}
	}
	for _, p := range lvl.Pedestals {
		if !reachable.Has(p.Cell) {
			problems = append(problems, fmt.Sprintf("pedestal at %v is unreachable", p.Cell))
		}
	}
	return problems
}
