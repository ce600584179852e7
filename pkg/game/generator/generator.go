// Package generator builds level descriptors procedurally, as an
// alternative to the hand-made levels of a level book.
package generator

import (
	"errors"
	"math/rand"

	"roomforge/pkg/game/descriptor"
)

// ErrTooSmall is returned when the grid cannot hold a start, an exit, a
// pedestal and the parts
var ErrTooSmall = errors.New("grid too small for a level")

// GridGenerator is an interface for level generation algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand, width, height int) (descriptor.Raw, error)
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{
		BranchProbability: 0.3,
		MinRun:            1,
		MaxRun:            3,
		Parts:             3,
		SwitchWall:        true,
	}
)

// DefaultGenerator is the default level generator
var DefaultGenerator GridGenerator = LineWalker
