// Package setup provides level setup functionality: it resets the previous
// level, decodes a descriptor into the room grid and wires the new level's
// interactive objects to its puzzle state.
package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/descriptor"
	"roomforge/pkg/game/levelgen"
	"roomforge/pkg/game/puzzle"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/state"
)

// ErrNoBook is returned when a level is requested by index without a level book
var ErrNoBook = errors.New("no level book loaded")

// Options configures a Loader
type Options struct {
	Width  int
	Height int

	// PartsRequired is how many parts a pedestal needs before it completes
	PartsRequired int

	Floors        []string
	ItemSlots     []renderer.Vec2
	BlockerOffset renderer.Vec2

	// Seed feeds the floor and item-slot choices. With ReseedEachLoad every
	// load starts from Seed, so loading the same descriptor twice gives the
	// same result.
	Seed           int64
	ReseedEachLoad bool
}

// DefaultOptions returns the options of the reference 5x5 level set
func DefaultOptions() Options {
	return Options{
		Width:         5,
		Height:        5,
		PartsRequired: 3,
		BlockerOffset: levelgen.DefaultBlockerOffset,
		Seed:          1,
	}
}

// Loader builds levels against a renderer and dialogue collaborator.
// It owns the room grid and the puzzle state of the current level; both
// are built fresh on every load.
// A Loader is not safe for concurrent use.
type Loader struct {
	opts     Options
	r        renderer.Renderer
	dialogue renderer.Dialogue
	book     *descriptor.Book
	log      *zap.Logger

	pick   *levelgen.Picker
	placer *levelgen.Placer

	grid        *world.Grid
	level       *state.Level
	deactivated mapset.Set[world.Position]
}

// NewLoader creates a loader. book may be nil if levels are only loaded
// from descriptors directly.
func NewLoader(opts Options, r renderer.Renderer, d renderer.Dialogue, book *descriptor.Book, log *zap.Logger) *Loader {
	if r == nil {
		r = renderer.Nop{}
	}
	if d == nil {
		d = renderer.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	pick := levelgen.NewPicker(opts.Seed, opts.Floors, opts.ItemSlots)
	return &Loader{
		opts:        opts,
		r:           r,
		dialogue:    d,
		book:        book,
		log:         log,
		pick:        pick,
		placer:      levelgen.NewPlacer(r, pick, opts.PartsRequired, opts.BlockerOffset),
		grid:        world.NewGrid(opts.Width, opts.Height),
		deactivated: mapset.New[world.Position](),
	}
}

// Reseed restarts the random choices of the next build
func (l *Loader) Reseed(seed int64) {
	l.pick.Reseed(seed)
}

// LoadTrainingLevel loads level index of the training bucket
func (l *Loader) LoadTrainingLevel(index int) error {
	return l.LoadFromBook(descriptor.BucketTraining, index)
}

// LoadNormalLevel loads level index of the normal bucket
func (l *Loader) LoadNormalLevel(index int) error {
	return l.LoadFromBook(descriptor.BucketNormal, index)
}

// LoadFromBook decodes and loads one level of the level book
func (l *Loader) LoadFromBook(bucket descriptor.Bucket, index int) error {
	if l.book == nil {
		return ErrNoBook
	}
	d, err := l.book.Level(bucket, index, l.opts.Width, l.opts.Height)
	if err != nil {
		l.log.Error("level rejected", zap.String("bucket", string(bucket)), zap.Int("index", index), zap.Error(err))
		return err
	}
	return l.LoadLevel(d)
}

// LoadLevel replaces the current level with d. The descriptor is checked
// against the grid size before anything is touched, so a rejected
// descriptor leaves the current level and the renderer unchanged.
func (l *Loader) LoadLevel(d *descriptor.Descriptor) error {
	if err := l.validate(d); err != nil {
		return err
	}
	if l.opts.ReseedEachLoad {
		l.pick.Reseed(l.opts.Seed)
	}

	l.reset()
	l.dialogue.SetText(append([]string(nil), d.Dialogue...))
	l.build(d)

	l.log.Info("level loaded",
		zap.String("bucket", string(d.Bucket)),
		zap.Int("index", d.Index),
		zap.Int("rooms", l.grid.Len()),
		zap.Int("parts", len(l.level.Parts)),
		zap.Stringer("start", l.level.StartingPosition))

	for _, problem := range CheckSolvability(l.level, l.opts.PartsRequired) {
		l.log.Warn("level may not be solvable", zap.String("problem", problem))
	}
	return nil
}

func (l *Loader) validate(d *descriptor.Descriptor) error {
	if d == nil {
		return &descriptor.FormatError{Row: -1, Reason: "nil descriptor"}
	}
	if d.Width != l.opts.Width || d.Height != l.opts.Height {
		return &descriptor.FormatError{
			Bucket: d.Bucket,
			Index:  d.Index,
			Row:    -1,
			Reason: fmt.Sprintf("descriptor is %dx%d, grid is %dx%d", d.Width, d.Height, l.opts.Width, l.opts.Height),
		}
	}
	return nil
}

// reset releases everything the previous level placed
func (l *Loader) reset() {
	l.level.Detach()

	l.grid.ForEachCell(func(p world.Position, cell *world.Cell) {
		if cell.Decoration != world.NoHandle {
			l.r.DestroyDecoration(cell.Decoration)
		}
	})
	l.grid.Clear()

	l.deactivated.Each(func(p world.Position) {
		l.r.ActivateCell(p)
	})
	l.deactivated = mapset.New[world.Position]()

	l.level = nil
}

// build walks the descriptor row by row and populates a fresh grid
func (l *Loader) build(d *descriptor.Descriptor) {
	l.grid = world.NewGrid(l.opts.Width, l.opts.Height)
	lvl := state.NewLevel(l.grid, puzzle.New(l.grid, l.r, l.log))
	lvl.Bucket = d.Bucket
	lvl.Index = d.Index
	lvl.Dialogue = append([]string(nil), d.Dialogue...)

	l.placer.Begin()
	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			pos := l.grid.PositionOf(row, col)
			cell := world.NewCell(pos)
			cell.Decoration = l.r.PlaceDecoration(pos, l.pick.Floor())
			l.grid.Put(cell)

			l.placer.Place(lvl, cell, d.Room(row, col))
			if !cell.Active {
				l.deactivated.Put(pos)
			}

			for _, side := range world.AllSides() {
				l.setWall(cell, side, d.Wall(row, col, side))
			}
		}
	}
	l.level = lvl
}

// setWall applies the doorway rule to one side of cell
func (l *Loader) setWall(cell *world.Cell, side world.Side, code descriptor.WallCode) {
	s := code.State()
	cell.SetWall(side, s)
	l.r.SetWallState(cell.Position, side, s)
}

// AddRoom adds an empty room with a fresh decoration at p if there is
// none yet. Returns false when p is taken or outside the grid.
func (l *Loader) AddRoom(p world.Position) bool {
	cell, added := l.grid.AddIfMissing(p)
	if !added {
		return false
	}
	cell.Decoration = l.r.PlaceDecoration(p, l.pick.Floor())
	for _, side := range world.AllSides() {
		l.r.SetWallState(p, side, cell.Wall(side))
	}
	l.log.Debug("adding room", zap.Stringer("position", p))
	return true
}

// GetRoomAt returns the room at p and whether it exists
func (l *Loader) GetRoomAt(p world.Position) (*world.Cell, bool) {
	return l.grid.Get(p)
}

// RoomExists returns true if the current level has a room at p
func (l *Loader) RoomExists(p world.Position) bool {
	return l.grid.Exists(p)
}

// StartingPosition returns where the player starts in the current level
func (l *Loader) StartingPosition() world.Position {
	if l.level == nil {
		return world.Position{}
	}
	return l.level.StartingPosition
}

// IsPedestalComplete returns whether the current level's assembly completed
func (l *Loader) IsPedestalComplete() bool {
	if l.level == nil {
		return false
	}
	return l.level.Puzzle.IsPedestalComplete()
}

// Puzzle returns the puzzle state of the current level, or nil before the first load
func (l *Loader) Puzzle() *puzzle.State {
	if l.level == nil {
		return nil
	}
	return l.level.Puzzle
}

// Level returns the current level session, or nil before the first load
func (l *Loader) Level() *state.Level {
	return l.level
}

// Grid returns the room grid of the current level. Every load replaces it.
func (l *Loader) Grid() *world.Grid {
	return l.grid
}

// Book returns the level book, which may be nil
func (l *Loader) Book() *descriptor.Book {
	return l.book
}
