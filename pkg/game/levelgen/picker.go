// Package levelgen places the special content of a level: floor variants,
// the exit, parts, the pedestal, wall switches and blockers.
package levelgen

import (
	"math/rand"

	"roomforge/pkg/game/renderer"
)

// DefaultFloors are the floor variants used when none are configured
var DefaultFloors = []string{
	"FLOOR_COBBLESTONE",
	"FLOOR_MOSS",
	"FLOOR_CRACKED",
	"FLOOR_TILES",
}

// DefaultItemSlots are the sub-positions inside a room where items may stand
var DefaultItemSlots = []renderer.Vec2{
	{X: -1.5, Y: 1.0},
	{X: 1.5, Y: 1.0},
	{X: 0, Y: 0},
	{X: -1.5, Y: -1.0},
	{X: 1.5, Y: -1.0},
}

// Picker makes the random choices of a level build. All choices are uniform
// and come from one source, so reseeding replays a build exactly.
type Picker struct {
	rng    *rand.Rand
	floors []string
	slots  []renderer.Vec2
}

// NewPicker creates a picker over the given floors and item slots. Empty
// lists fall back to the defaults.
func NewPicker(seed int64, floors []string, slots []renderer.Vec2) *Picker {
	if len(floors) == 0 {
		floors = DefaultFloors
	}
	if len(slots) == 0 {
		slots = DefaultItemSlots
	}
	return &Picker{
		rng:    rand.New(rand.NewSource(seed)),
		floors: append([]string(nil), floors...),
		slots:  append([]renderer.Vec2(nil), slots...),
	}
}

// Reseed restarts the random sequence
func (p *Picker) Reseed(seed int64) {
	p.rng.Seed(seed)
}

// Floor returns a random floor variant
func (p *Picker) Floor() string {
	return p.floors[p.rng.Intn(len(p.floors))]
}

// ItemSlot returns a random item sub-position
func (p *Picker) ItemSlot() renderer.Vec2 {
	return p.slots[p.rng.Intn(len(p.slots))]
}
