// Package renderer declares the collaborator surfaces the level loader drives:
// the rendering side that owns decorations and placed objects, and the
// dialogue box.
package renderer

import (
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/entities"
)

// ObjectKind is the kind of object placed inside a room
type ObjectKind int

const (
	ObjectExit ObjectKind = iota
	ObjectWallSwitchButton
	ObjectPart
	ObjectPedestal
	ObjectBlocker
)

// String returns the string representation of an object kind
func (k ObjectKind) String() string {
	switch k {
	case ObjectExit:
		return "exit"
	case ObjectWallSwitchButton:
		return "wall-switch"
	case ObjectPart:
		return "part"
	case ObjectPedestal:
		return "pedestal"
	case ObjectBlocker:
		return "blocker"
	default:
		return "unknown"
	}
}

// Vec2 is a position relative to the parent object, in room units
type Vec2 struct {
	X float64
	Y float64
}

// Renderer defines the rendering backend a level is built against.
// Implementations can include the text map, a GUI engine, or a test recorder.
type Renderer interface {
	// PlaceDecoration creates the floor layer of a room using the given
	// floor variant and returns its handle
	PlaceDecoration(cell world.Position, floor string) world.Handle

	// DestroyDecoration releases a floor layer and everything parented to it
	DestroyDecoration(h world.Handle)

	// ActivateCell makes a room part of the visible level
	ActivateCell(cell world.Position)

	// DeactivateCell hides a room that is not part of the playable space
	DeactivateCell(cell world.Position)

	// PlaceObject instantiates an object of kind under parent at local
	PlaceObject(kind ObjectKind, parent world.Handle, local Vec2) world.Handle

	// SetPartVariant picks the look of a placed part
	SetPartVariant(h world.Handle, v entities.PartVariant)

	// SetWallState shows or hides the barrier on one side of a room
	SetWallState(cell world.Position, side world.Side, state world.WallState)

	// OpenExit switches a placed exit to its open look
	OpenExit(h world.Handle)
}

// Dialogue is the text box shown when a level starts
type Dialogue interface {
	SetText(lines []string)
}
