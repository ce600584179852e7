// Package puzzle tracks the completion state of one loaded level: parts
// collected, the assembly pedestal, the exit lock and the wall switch.
//
// Every transition is one-shot. Repeating an event after its transition is
// a no-op.
package puzzle

import (
	"go.uber.org/zap"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/entities"
)

// WallRenderer receives wall changes made by the switch
type WallRenderer interface {
	SetWallState(cell world.Position, side world.Side, state world.WallState)
}

// State is the puzzle state machine of one level session
type State struct {
	grid  *world.Grid
	walls WallRenderer
	log   *zap.Logger
	exit  *entities.Exit

	partsCollected   int
	assemblyComplete bool
	exitUnlocked     bool
	switchActivated  bool
	detached         bool
}

// New creates the puzzle state for a freshly loaded grid
func New(grid *world.Grid, walls WallRenderer, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	return &State{
		grid:  grid,
		walls: walls,
		log:   log,
	}
}

// BindExit sets the exit opened by assembly completion. Binding after the
// assembly already completed opens the new exit straight away.
func (s *State) BindExit(e *entities.Exit) {
	if s.detached {
		return
	}
	s.exit = e
	if e != nil && s.exitUnlocked {
		e.Open()
	}
}

// Exit returns the bound exit, or nil
func (s *State) Exit() *entities.Exit {
	return s.exit
}

// Detach cuts the state off from its grid, renderer and exit. Events
// arriving afterwards are ignored.
func (s *State) Detach() {
	if s == nil {
		return
	}
	s.detached = true
	s.grid = nil
	s.walls = nil
	s.exit = nil
}

// Detached returns whether Detach has been called
func (s *State) Detached() bool {
	return s.detached
}

// OnPartCollected counts one acquired part. There is no upper bound here;
// how many parts the pedestal needs is the pedestal's business.
func (s *State) OnPartCollected() {
	if s.detached {
		return
	}
	s.partsCollected++
	s.log.Debug("part collected", zap.Int("parts_collected", s.partsCollected))
}

// OnAssemblyComplete marks the pedestal complete and opens the exit
func (s *State) OnAssemblyComplete() {
	if s.assemblyComplete || s.detached {
		return
	}
	s.assemblyComplete = true
	s.exitUnlocked = true

	if s.exit == nil {
		s.log.Warn("assembly complete but level has no exit")
		return
	}
	s.exit.Open()
	s.log.Info("assembly complete, exit open",
		zap.Int("parts_collected", s.partsCollected),
		zap.Stringer("exit", s.exit.Cell))
}

// OnSwitchActivated opens every switch-controlled wall on the grid
func (s *State) OnSwitchActivated() {
	if s.switchActivated || s.detached {
		return
	}
	s.switchActivated = true

	opened := 0
	s.grid.ForEachCell(func(p world.Position, cell *world.Cell) {
		for _, side := range world.AllSides() {
			if cell.Wall(side) != world.WallSwitchControlled {
				continue
			}
			cell.SetWall(side, world.WallOpen)
			if s.walls != nil {
				s.walls.SetWallState(p, side, world.WallOpen)
			}
			opened++
		}
	})
	s.log.Info("wall switch activated", zap.Int("walls_opened", opened))
}

// PartsCollected returns how many parts have been picked up
func (s *State) PartsCollected() int {
	return s.partsCollected
}

// IsPedestalComplete returns whether the assembly has completed
func (s *State) IsPedestalComplete() bool {
	return s.assemblyComplete
}

// IsExitUnlocked returns whether the exit has been unlocked
func (s *State) IsExitUnlocked() bool {
	return s.exitUnlocked
}

// IsSwitchActivated returns whether the wall switch has fired
func (s *State) IsSwitchActivated() bool {
	return s.switchActivated
}
