package renderer

import (
	"github.com/google/uuid"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/entities"
)

// Nop is a Renderer and Dialogue that draws nothing. It still mints unique
// handles so callers can tell objects apart.
type Nop struct{}

var (
	_ Renderer = Nop{}
	_ Dialogue = Nop{}
)

// PlaceDecoration returns a fresh handle
func (Nop) PlaceDecoration(world.Position, string) world.Handle {
	return uuid.New()
}

// DestroyDecoration does nothing
func (Nop) DestroyDecoration(world.Handle) {}

// ActivateCell does nothing
func (Nop) ActivateCell(world.Position) {}

// DeactivateCell does nothing
func (Nop) DeactivateCell(world.Position) {}

// PlaceObject returns a fresh handle
func (Nop) PlaceObject(ObjectKind, world.Handle, Vec2) world.Handle {
	return uuid.New()
}

// SetPartVariant does nothing
func (Nop) SetPartVariant(world.Handle, entities.PartVariant) {}

// SetWallState does nothing
func (Nop) SetWallState(world.Position, world.Side, world.WallState) {}

// OpenExit does nothing
func (Nop) OpenExit(world.Handle) {}

// SetText does nothing
func (Nop) SetText([]string) {}
