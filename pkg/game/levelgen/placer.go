package levelgen

import (
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/descriptor"
	"roomforge/pkg/game/entities"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/state"
)

// DefaultBlockerOffset puts a blocker in the lower part of its room
var DefaultBlockerOffset = renderer.Vec2{X: 0, Y: -2.3}

// Placer turns room letters into placed objects and wires their signals
// into the level's puzzle state
type Placer struct {
	r             renderer.Renderer
	pick          *Picker
	partsRequired int
	blockerOffset renderer.Vec2

	partsPlaced int
}

// NewPlacer creates a placer. partsRequired is handed to every pedestal.
func NewPlacer(r renderer.Renderer, pick *Picker, partsRequired int, blockerOffset renderer.Vec2) *Placer {
	return &Placer{
		r:             r,
		pick:          pick,
		partsRequired: partsRequired,
		blockerOffset: blockerOffset,
	}
}

// Begin resets per-level counters. Call once before placing a new level.
func (p *Placer) Begin() {
	p.partsPlaced = 0
}

// Place applies the room letter code to cell
func (p *Placer) Place(lvl *state.Level, cell *world.Cell, code descriptor.RoomCode) {
	pos := cell.Position
	cell.Content = code.Kind()

	switch code {
	case descriptor.RoomNone:
		cell.Active = false
		p.r.DeactivateCell(pos)

	case descriptor.RoomStart:
		lvl.StartingPosition = pos
		lvl.HasStart = true

	case descriptor.RoomEnd:
		h := p.r.PlaceObject(renderer.ObjectExit, cell.Decoration, p.pick.ItemSlot())
		exit := entities.NewExit(h, pos)
		exit.Opened.Subscribe(func() { p.r.OpenExit(h) })
		lvl.Exit = exit
		lvl.Puzzle.BindExit(exit)

	case descriptor.RoomWallSwitch:
		h := p.r.PlaceObject(renderer.ObjectWallSwitchButton, cell.Decoration, p.pick.ItemSlot())
		sw := entities.NewWallSwitch(h, pos)
		sw.Activated.Subscribe(lvl.Puzzle.OnSwitchActivated)
		lvl.Switches = append(lvl.Switches, sw)

	case descriptor.RoomPart:
		h := p.r.PlaceObject(renderer.ObjectPart, cell.Decoration, p.pick.ItemSlot())
		variant := entities.VariantForOrdinal(p.partsPlaced)
		p.partsPlaced++
		if variant != entities.PartVariantNone {
			p.r.SetPartVariant(h, variant)
		}
		part := entities.NewPart(h, pos, variant)
		part.OnCollected.Subscribe(lvl.Puzzle.OnPartCollected)
		lvl.Parts = append(lvl.Parts, part)

	case descriptor.RoomPartAssembly:
		h := p.r.PlaceObject(renderer.ObjectPedestal, cell.Decoration, p.pick.ItemSlot())
		ped := entities.NewPedestal(h, pos, p.partsRequired)
		ped.Completed.Subscribe(lvl.Puzzle.OnAssemblyComplete)
		lvl.Pedestals = append(lvl.Pedestals, ped)

	case descriptor.RoomBlocker:
		h := p.r.PlaceObject(renderer.ObjectBlocker, cell.Decoration, p.blockerOffset)
		lvl.Blockers = append(lvl.Blockers, entities.NewBlocker(h, pos))
	}
}
