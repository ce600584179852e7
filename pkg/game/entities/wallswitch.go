package entities

import (
	"roomforge/pkg/engine/event"
	"roomforge/pkg/engine/world"
)

// WallSwitch is a button that, once pressed, drops every switch wall
type WallSwitch struct {
	Handle  world.Handle
	Cell    world.Position
	Pressed bool

	Activated event.Signal
}

// NewWallSwitch creates a new unpressed switch
func NewWallSwitch(h world.Handle, cell world.Position) *WallSwitch {
	return &WallSwitch{
		Handle: h,
		Cell:   cell,
	}
}

// Press activates the switch. Returns false if it was already pressed.
func (s *WallSwitch) Press() bool {
	if s.Pressed {
		return false
	}
	s.Pressed = true
	s.Activated.Fire()
	return true
}

// Detach drops every subscriber
func (s *WallSwitch) Detach() {
	s.Activated.Detach()
}

// Blocker is a fixed obstacle sitting in the lower part of a room
type Blocker struct {
	Handle world.Handle
	Cell   world.Position
}

// NewBlocker creates a new blocker
func NewBlocker(h world.Handle, cell world.Position) *Blocker {
	return &Blocker{
		Handle: h,
		Cell:   cell,
	}
}
