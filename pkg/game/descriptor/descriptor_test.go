package descriptor

import (
	"errors"
	"strings"
	"testing"

	"roomforge/pkg/engine/world"
)

// closedLevel builds a width x height descriptor whose content rows are all
// '1' except for the given overrides, with every wall closed.
func closedLevel(t *testing.T, width, height int, rooms map[[2]int]RoomCode) Raw {
	t.Helper()
	var raw Raw
	for r := 0; r < 2*height-1; r++ {
		var b strings.Builder
		for c := 0; c < 2*width-1; c++ {
			switch {
			case r%2 == 1 && c%2 == 0:
				b.WriteRune(rune(WallHorizontal))
			case r%2 == 1:
				b.WriteRune(rune(wallFiller))
			case c%2 == 1:
				b.WriteRune(rune(WallVertical))
			default:
				code, ok := rooms[[2]int{r / 2, c / 2}]
				if !ok {
					code = RoomNone
				}
				b.WriteRune(rune(code))
			}
		}
		raw.Rooms = append(raw.Rooms, b.String())
	}
	return raw
}

func TestParse_Valid(t *testing.T) {
	raw := closedLevel(t, 5, 5, map[[2]int]RoomCode{{0, 0}: RoomStart, {4, 4}: RoomEnd})
	raw.Dialogue = []string{"a", "b"}
	d, err := Parse(raw, 5, 5)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d.Room(0, 0) != RoomStart {
		t.Errorf("Room(0,0) = %q, want %q", d.Room(0, 0), RoomStart)
	}
	if d.Room(4, 4) != RoomEnd {
		t.Errorf("Room(4,4) = %q, want %q", d.Room(4, 4), RoomEnd)
	}
	if d.Room(2, 2) != RoomNone {
		t.Errorf("Room(2,2) = %q, want %q", d.Room(2, 2), RoomNone)
	}
	if len(d.Dialogue) != 2 || d.Dialogue[0] != "a" {
		t.Errorf("Dialogue = %v, want [a b]", d.Dialogue)
	}
}

func TestParse_DialogueIsCopied(t *testing.T) {
	raw := closedLevel(t, 2, 2, nil)
	raw.Dialogue = []string{"first"}
	d := MustParse(raw, 2, 2)
	raw.Dialogue[0] = "changed"
	if d.Dialogue[0] != "first" {
		t.Errorf("Dialogue[0] = %q, want %q", d.Dialogue[0], "first")
	}
}

func TestParse_FormatErrors(t *testing.T) {
	good := closedLevel(t, 3, 3, nil)

	tests := []struct {
		name   string
		rooms  []string
		width  int
		height int
		row    int
	}{
		{"too few rows", good.Rooms[:4], 3, 3, -1},
		{"too many rows", append(append([]string{}, good.Rooms...), "1|1|1"), 3, 3, -1},
		{"short content row", []string{good.Rooms[0], good.Rooms[1], "1|1", good.Rooms[3], good.Rooms[4]}, 3, 3, 2},
		{"long wall row", []string{good.Rooms[0], "-+-+-+", good.Rooms[2], good.Rooms[3], good.Rooms[4]}, 3, 3, 1},
		{"height mismatch", good.Rooms, 3, 4, -1},
		{"width mismatch", good.Rooms, 4, 3, 0},
		{"zero size", good.Rooms, 0, 3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(Raw{Rooms: tt.rooms}, tt.width, tt.height)
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("Parse() error = %v, want ErrFormat", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Parse() error is %T, want *FormatError", err)
			}
			if fe.Row != tt.row {
				t.Errorf("FormatError.Row = %d, want %d (%v)", fe.Row, tt.row, err)
			}
		})
	}
}

func TestWall_InteriorCodes(t *testing.T) {
	raw := Raw{Rooms: []string{
		"S  D1",
		"-+ +-",
		"1|E  ",
	}}
	d := MustParse(raw, 3, 2)

	tests := []struct {
		row, col int
		side     world.Side
		want     WallCode
	}{
		{0, 0, world.Right, WallNone},
		{0, 1, world.Left, WallNone},
		{0, 1, world.Right, WallSwitch},
		{0, 2, world.Left, WallSwitch},
		{0, 0, world.Down, WallHorizontal},
		{1, 0, world.Up, WallHorizontal},
		{0, 1, world.Down, WallNone},
		{1, 1, world.Up, WallNone},
		{1, 0, world.Right, WallVertical},
		{1, 1, world.Right, WallNone},
	}
	for _, tt := range tests {
		if got := d.Wall(tt.row, tt.col, tt.side); got != tt.want {
			t.Errorf("Wall(%d,%d,%v) = %q, want %q", tt.row, tt.col, tt.side, got, tt.want)
		}
	}
}

func TestWall_BorderIsAlwaysClosed(t *testing.T) {
	// every code on the grid is open, so only the synthetic border can close a side
	raw := Raw{Rooms: []string{
		"S   E",
		"     ",
		"     ",
	}}
	d := MustParse(raw, 3, 2)
	for c := 0; c < 3; c++ {
		if got := d.Wall(0, c, world.Up).State(); got != world.WallClosed {
			t.Errorf("Wall(0,%d,Up) = %v, want closed", c, got)
		}
		if got := d.Wall(1, c, world.Down).State(); got != world.WallClosed {
			t.Errorf("Wall(1,%d,Down) = %v, want closed", c, got)
		}
	}
	for r := 0; r < 2; r++ {
		if got := d.Wall(r, 0, world.Left).State(); got != world.WallClosed {
			t.Errorf("Wall(%d,0,Left) = %v, want closed", r, got)
		}
		if got := d.Wall(r, 2, world.Right).State(); got != world.WallClosed {
			t.Errorf("Wall(%d,2,Right) = %v, want closed", r, got)
		}
	}
}

func TestWallCode_State(t *testing.T) {
	tests := []struct {
		code WallCode
		want world.WallState
	}{
		{WallHorizontal, world.WallClosed},
		{WallVertical, world.WallClosed},
		{WallSwitch, world.WallSwitchControlled},
		{WallNone, world.WallOpen},
		{wallFiller, world.WallOpen},
		{'x', world.WallOpen},
	}
	for _, tt := range tests {
		if got := tt.code.State(); got != tt.want {
			t.Errorf("WallCode(%q).State() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRoomCode_Kind(t *testing.T) {
	tests := []struct {
		code RoomCode
		want world.ContentKind
	}{
		{RoomNone, world.ContentInactive},
		{RoomStart, world.ContentStart},
		{RoomEnd, world.ContentEnd},
		{RoomBlocker, world.ContentBlocker},
		{RoomPart, world.ContentPart},
		{RoomPartAssembly, world.ContentAssemblyPedestal},
		{RoomWallSwitch, world.ContentWallSwitchButton},
		{RoomSwitch, world.ContentEmpty},
		{RoomPowerupPart, world.ContentEmpty},
		{RoomEmpty, world.ContentEmpty},
	}
	for _, tt := range tests {
		if got := tt.code.Kind(); got != tt.want {
			t.Errorf("RoomCode(%q).Kind() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestBorderRow(t *testing.T) {
	if got := BorderRow(5); got != "-+-+-+-+-" {
		t.Errorf("BorderRow(5) = %q, want %q", got, "-+-+-+-+-")
	}
}

func TestCountRooms(t *testing.T) {
	raw := closedLevel(t, 3, 3, map[[2]int]RoomCode{{0, 0}: RoomPart, {1, 1}: RoomPart, {2, 2}: RoomStart})
	d := MustParse(raw, 3, 3)
	if got := d.CountRooms(RoomPart); got != 2 {
		t.Errorf("CountRooms(m) = %d, want 2", got)
	}
}
