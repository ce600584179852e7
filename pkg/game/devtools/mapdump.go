// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(lvl *state.Level, cell *world.Cell) rune {
	if cell == nil || !cell.IsPlayable() {
		return '#'
	}
	switch cell.Content {
	case world.ContentStart:
		return 'S'
	case world.ContentEnd:
		if lvl.Exit != nil && lvl.Exit.IsOpen() {
			return 'e'
		}
		return 'E'
	case world.ContentPart:
		if p := lvl.PartAt(cell.Position); p != nil {
			return 'm'
		}
		return '.'
	case world.ContentAssemblyPedestal:
		return 'M'
	case world.ContentWallSwitchButton:
		return 'd'
	case world.ContentBlocker:
		return 'B'
	default:
		return '.'
	}
}

// wallSymbol returns the symbol of one wall as seen from cell
func wallSymbol(cell *world.Cell, side world.Side) rune {
	if cell == nil {
		return '#'
	}
	switch cell.Wall(side) {
	case world.WallOpen:
		return ' '
	case world.WallSwitchControlled:
		return 'D'
	}
	if side == world.Left || side == world.Right {
		return '|'
	}
	return '-'
}

// writeMapGrid writes the level in the level book's row format, framed by
// the border walls
func writeMapGrid(w io.Writer, lvl *state.Level) {
	lo, hi := lvl.Grid.Bounds()
	g := lvl.Grid

	border := func(y int, side world.Side) {
		var b strings.Builder
		b.WriteRune('+')
		for x := lo.X; x <= hi.X; x++ {
			b.WriteRune(wallSymbol(g.GetCell(world.Pos(x, y)), side))
			b.WriteRune('+')
		}
		fmt.Fprintln(w, b.String())
	}

	border(lo.Y, world.Up)
	for y := lo.Y; y <= hi.Y; y++ {
		var b strings.Builder
		b.WriteRune(wallSymbol(g.GetCell(world.Pos(lo.X, y)), world.Left))
		for x := lo.X; x <= hi.X; x++ {
			cell := g.GetCell(world.Pos(x, y))
			b.WriteRune(cellSymbol(lvl, cell))
			b.WriteRune(wallSymbol(cell, world.Right))
		}
		fmt.Fprintln(w, b.String())
		border(y, world.Down)
	}
}

// DumpLevel writes a full debug dump of lvl: metadata, legend, map, wall
// list and entities. Format is human-readable (sections, key: value).
func DumpLevel(w io.Writer, lvl *state.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("no level loaded")
	}
	g := lvl.Grid
	lo, hi := g.Bounds()

	// --- Metadata ---
	fmt.Fprintln(w, "=== LEVEL DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "bucket: %s\n", lvl.Bucket)
	fmt.Fprintf(w, "index: %d\n", lvl.Index)
	fmt.Fprintf(w, "grid_width: %d\n", g.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Height())
	fmt.Fprintf(w, "coordinate_system: x,y centred (x from %d to %d, y from %d to %d, y grows down)\n", lo.X, hi.X, lo.Y, hi.Y)
	if lvl.HasStart {
		fmt.Fprintf(w, "start_cell: %v\n", lvl.StartingPosition)
	} else {
		fmt.Fprintln(w, "start_cell: none")
	}
	if lvl.Puzzle != nil {
		fmt.Fprintf(w, "parts_collected: %d\n", lvl.Puzzle.PartsCollected())
		fmt.Fprintf(w, "pedestal_complete: %v\n", lvl.Puzzle.IsPedestalComplete())
		fmt.Fprintf(w, "exit_unlocked: %v\n", lvl.Puzzle.IsExitUnlocked())
		fmt.Fprintf(w, "switch_activated: %v\n", lvl.Puzzle.IsSwitchActivated())
	}
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = empty room  # = inactive  S = start  E = exit (locked)  e = exit (open)  m = part  M = pedestal  d = wall switch  B = blocker  | - = wall  D = switch wall")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, lvl)
	fmt.Fprintln(w, "")

	// --- Dialogue ---
	fmt.Fprintln(w, "Dialogue:")
	if len(lvl.Dialogue) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, line := range lvl.Dialogue {
		fmt.Fprintf(w, "  line: %q\n", line)
	}
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities (all with x,y and state) ---")

	fmt.Fprintln(w, "Exit:")
	if lvl.Exit != nil {
		fmt.Fprintf(w, "  cell: %v open: %v\n", lvl.Exit.Cell, lvl.Exit.IsOpen())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Parts:")
	for _, p := range lvl.Parts {
		fmt.Fprintf(w, "  cell: %v variant: %v collected: %v\n", p.Cell, p.Variant, p.Collected)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Pedestals:")
	for _, p := range lvl.Pedestals {
		fmt.Fprintf(w, "  cell: %v parts_inserted: %d parts_required: %d complete: %v\n", p.Cell, p.PartsInserted, p.PartsRequired, p.Complete)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Wall switches:")
	for _, s := range lvl.Switches {
		fmt.Fprintf(w, "  cell: %v pressed: %v\n", s.Cell, s.Pressed)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Blockers:")
	for _, b := range lvl.Blockers {
		fmt.Fprintf(w, "  cell: %v\n", b.Cell)
	}
	fmt.Fprintln(w, "")

	// --- Walls that are not plain closed ---
	fmt.Fprintln(w, "Open and switch walls:")
	g.ForEachCell(func(p world.Position, cell *world.Cell) {
		for _, side := range world.AllSides() {
			if s := cell.Wall(side); s != world.WallClosed {
				fmt.Fprintf(w, "  cell: %v side: %v state: %v\n", p, side, s)
			}
		}
	})
	fmt.Fprintln(w, "")

	if problems := g.CheckSharedWalls(); len(problems) > 0 {
		fmt.Fprintln(w, "Wall mismatches:")
		for _, p := range problems {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprintln(w, "")
	}

	_, err := fmt.Fprintln(w, "=== END LEVEL DUMP ===")
	return err
}

// DumpLevelToFile writes DumpLevel output to map.txt in dir and returns the
// absolute path of the file
func DumpLevelToFile(dir string, lvl *state.Level) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLevel(f, lvl); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
