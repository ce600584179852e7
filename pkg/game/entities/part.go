package entities

import (
	"roomforge/pkg/engine/event"
	"roomforge/pkg/engine/world"
)

// PartVariant is the look of a collectible part
type PartVariant int

const (
	PartVariantNone PartVariant = iota // beyond the third part; renderer default
	PartVariantA
	PartVariantB
	PartVariantC
)

// String returns the string representation of a part variant
func (v PartVariant) String() string {
	switch v {
	case PartVariantA:
		return "A"
	case PartVariantB:
		return "B"
	case PartVariantC:
		return "C"
	default:
		return "-"
	}
}

// VariantForOrdinal returns the variant of the n-th part placed in a level
// (0-based). The counter does not wrap: the fourth part and later get none.
func VariantForOrdinal(n int) PartVariant {
	switch n {
	case 0:
		return PartVariantA
	case 1:
		return PartVariantB
	case 2:
		return PartVariantC
	default:
		return PartVariantNone
	}
}

// Part is a collectible piece of the statue
type Part struct {
	Handle    world.Handle
	Cell      world.Position
	Variant   PartVariant
	Collected bool

	OnCollected event.Signal
}

// NewPart creates a new uncollected part
func NewPart(h world.Handle, cell world.Position, variant PartVariant) *Part {
	return &Part{
		Handle:  h,
		Cell:    cell,
		Variant: variant,
	}
}

// Collect picks the part up. Returns false if it was already collected.
func (p *Part) Collect() bool {
	if p.Collected {
		return false
	}
	p.Collected = true
	p.OnCollected.Fire()
	return true
}

// Detach drops every subscriber
func (p *Part) Detach() {
	p.OnCollected.Detach()
}
