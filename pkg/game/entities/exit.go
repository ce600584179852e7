// Package entities contains the interactive objects a level places in its rooms.
// Each one is a small state holder whose one-shot transitions are announced
// through an event.Signal.
package entities

import (
	"roomforge/pkg/engine/event"
	"roomforge/pkg/engine/world"
)

// Exit represents the stairs out of a level. It starts locked.
type Exit struct {
	Handle world.Handle
	Cell   world.Position
	Locked bool

	Opened event.Signal
}

// NewExit creates a new locked exit
func NewExit(h world.Handle, cell world.Position) *Exit {
	return &Exit{
		Handle: h,
		Cell:   cell,
		Locked: true,
	}
}

// Open unlocks the exit. Returns false if it was already open.
func (e *Exit) Open() bool {
	if !e.Locked {
		return false
	}
	e.Locked = false
	e.Opened.Fire()
	return true
}

// IsOpen returns whether the exit has been unlocked
func (e *Exit) IsOpen() bool {
	return !e.Locked
}

// Detach drops every subscriber
func (e *Exit) Detach() {
	e.Opened.Detach()
}
