package entities

import (
	"roomforge/pkg/engine/event"
	"roomforge/pkg/engine/world"
)

// Pedestal is the assembly point for collected parts. It signals completion
// once the required number of parts has been inserted, or when finished
// directly by its owner.
type Pedestal struct {
	Handle        world.Handle
	Cell          world.Position
	PartsRequired int
	PartsInserted int
	Complete      bool

	Completed event.Signal
}

// NewPedestal creates a new, empty pedestal
func NewPedestal(h world.Handle, cell world.Position, partsRequired int) *Pedestal {
	if partsRequired < 0 {
		partsRequired = 0
	}
	return &Pedestal{
		Handle:        h,
		Cell:          cell,
		PartsRequired: partsRequired,
	}
}

// PartsNeeded returns how many more parts are needed
func (p *Pedestal) PartsNeeded() int {
	needed := p.PartsRequired - p.PartsInserted
	if needed < 0 {
		return 0
	}
	return needed
}

// Insert adds parts to the pedestal, returns how many were actually inserted.
// Reaching the required count completes the pedestal.
func (p *Pedestal) Insert(count int) int {
	if p.Complete || count <= 0 {
		return 0
	}
	needed := p.PartsNeeded()
	if count > needed {
		count = needed
	}
	p.PartsInserted += count
	if p.PartsNeeded() == 0 {
		p.Finish()
	}
	return count
}

// Finish completes the pedestal. Returns false if it was already complete.
func (p *Pedestal) Finish() bool {
	if p.Complete {
		return false
	}
	p.Complete = true
	p.Completed.Fire()
	return true
}

// Detach drops every subscriber
func (p *Pedestal) Detach() {
	p.Completed.Detach()
}
