// Package descriptor decodes textual level descriptors into a room/wall matrix.
//
// A level is 2*height-1 strings. Even rows hold room letters at even offsets
// and the walls between horizontally adjacent rooms at odd offsets. Odd rows
// hold the walls between vertically adjacent rooms at even offsets; their odd
// offsets are filler. Every row is 2*width-1 characters long.
package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"roomforge/pkg/engine/world"
)

// ErrFormat is the sentinel wrapped by every FormatError
var ErrFormat = errors.New("malformed level descriptor")

// FormatError reports a descriptor whose shape does not match the grid
type FormatError struct {
	Bucket Bucket
	Index  int
	Row    int // -1 when the problem is not tied to a row
	Reason string
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("level")
	if e.Bucket != "" {
		fmt.Fprintf(&b, " %s[%d]", e.Bucket, e.Index)
	}
	if e.Row >= 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// Raw is one level entry as it appears in the level book
type Raw struct {
	Dialogue []string `yaml:"dialogue" json:"dialogue"`
	Rooms    []string `yaml:"rooms" json:"rooms"`
}

// Descriptor is a validated level layout
type Descriptor struct {
	Bucket   Bucket
	Index    int
	Width    int
	Height   int
	Dialogue []string

	rows [][]rune
}

// Parse validates raw against a width x height grid and decodes it.
// It has no side effects.
func Parse(raw Raw, width, height int) (*Descriptor, error) {
	if width <= 0 || height <= 0 {
		return nil, &FormatError{Row: -1, Reason: fmt.Sprintf("invalid grid size %dx%d", width, height)}
	}
	wantRows := 2*height - 1
	if len(raw.Rooms) != wantRows {
		return nil, &FormatError{Row: -1, Reason: fmt.Sprintf("has %d rows, want %d for height %d", len(raw.Rooms), wantRows, height)}
	}

	wantLen := 2*width - 1
	rows := make([][]rune, len(raw.Rooms))
	for i, line := range raw.Rooms {
		row := []rune(line)
		if len(row) != wantLen {
			kind := "content"
			if i%2 == 1 {
				kind = "wall"
			}
			return nil, &FormatError{Row: i, Reason: fmt.Sprintf("%s row %q has %d characters, want %d", kind, line, len(row), wantLen)}
		}
		rows[i] = row
	}

	dialogue := make([]string, len(raw.Dialogue))
	copy(dialogue, raw.Dialogue)

	return &Descriptor{
		Width:    width,
		Height:   height,
		Dialogue: dialogue,
		rows:     rows,
	}, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(raw Raw, width, height int) *Descriptor {
	d, err := Parse(raw, width, height)
	if err != nil {
		panic(err)
	}
	return d
}

// Room returns the room letter at row, col. Out of range reads as RoomNone.
func (d *Descriptor) Room(row, col int) RoomCode {
	if !d.inRange(row, col) {
		return RoomNone
	}
	return RoomCode(d.rows[2*row][2*col])
}

// Wall returns the wall code on the given side of the room at row, col.
// Sides on the outer edge read from a synthetic closed border.
func (d *Descriptor) Wall(row, col int, side world.Side) WallCode {
	if !d.inRange(row, col) {
		return borderFor(side)
	}
	switch side {
	case world.Left:
		if col > 0 {
			return WallCode(d.rows[2*row][2*col-1])
		}
	case world.Right:
		if col < d.Width-1 {
			return WallCode(d.rows[2*row][2*col+1])
		}
	case world.Up:
		if row > 0 {
			return WallCode(d.rows[2*row-1][2*col])
		}
	case world.Down:
		if row < d.Height-1 {
			return WallCode(d.rows[2*row+1][2*col])
		}
	}
	return borderFor(side)
}

// Rows returns the descriptor text, one string per row
func (d *Descriptor) Rows() []string {
	out := make([]string, len(d.rows))
	for i, r := range d.rows {
		out[i] = string(r)
	}
	return out
}

// CountRooms returns how many rooms carry the given letter
func (d *Descriptor) CountRooms(code RoomCode) int {
	n := 0
	for r := 0; r < d.Height; r++ {
		for c := 0; c < d.Width; c++ {
			if d.Room(r, c) == code {
				n++
			}
		}
	}
	return n
}

func (d *Descriptor) inRange(row, col int) bool {
	return row >= 0 && row < d.Height && col >= 0 && col < d.Width
}

func borderFor(side world.Side) WallCode {
	if side == world.Up || side == world.Down {
		return WallHorizontal
	}
	return WallVertical
}

// BorderRow returns the all-closed wall row used above the first and below
// the last content row, e.g. "-+-+-+-+-" for width 5.
func BorderRow(width int) string {
	var b strings.Builder
	for c := 0; c < 2*width-1; c++ {
		if c%2 == 0 {
			b.WriteRune(rune(WallHorizontal))
		} else {
			b.WriteRune(rune(wallFiller))
		}
	}
	return b.String()
}
