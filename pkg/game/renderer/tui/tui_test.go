package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/descriptor"
	"roomforge/pkg/game/entities"
	"roomforge/pkg/game/renderer"
	"roomforge/pkg/game/setup"
)

func fixedWidth(w int) func() int {
	return func() int { return w }
}

func render(t *testing.T, r *TUIRenderer, f Frame) string {
	t.Helper()
	var b strings.Builder
	if err := r.Render(&b, f); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return color.ClearCode(b.String())
}

// twoRooms places a floor room and an exit room side by side
func twoRooms(r *TUIRenderer) (world.Handle, world.Handle) {
	left := world.Pos(0, 0)
	right := world.Pos(1, 0)
	r.PlaceDecoration(left, "FLOOR_MOSS")
	deco := r.PlaceDecoration(right, "FLOOR_TILES")

	r.SetWallState(left, world.Left, world.WallClosed)
	r.SetWallState(left, world.Right, world.WallOpen)
	r.SetWallState(left, world.Up, world.WallClosed)
	r.SetWallState(left, world.Down, world.WallClosed)
	r.SetWallState(right, world.Left, world.WallOpen)
	r.SetWallState(right, world.Right, world.WallClosed)
	r.SetWallState(right, world.Up, world.WallClosed)
	r.SetWallState(right, world.Down, world.WallSwitchControlled)

	exit := r.PlaceObject(renderer.ObjectExit, deco, renderer.Vec2{})
	return deco, exit
}

func TestRender_Map(t *testing.T) {
	r := New()
	r.Width = fixedWidth(5)
	_, exit := twoRooms(r)
	f := Frame{Lo: world.Pos(0, 0), Hi: world.Pos(1, 0)}

	want := "+-+-+\n|· ▲|\n+-+D+\n"
	if got := render(t, r, f); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}

	r.OpenExit(exit)
	want = "+-+-+\n|· △|\n+-+D+\n"
	if got := render(t, r, f); got != want {
		t.Errorf("Render() after OpenExit =\n%s\nwant\n%s", got, want)
	}

	f.ShowPlayer = true
	f.Player = world.Pos(0, 0)
	if got := render(t, r, f); !strings.Contains(got, "|@ △|") {
		t.Errorf("Render() with player =\n%s", got)
	}
}

func TestRender_CentresInWidth(t *testing.T) {
	r := New()
	r.Width = fixedWidth(9)
	twoRooms(r)

	got := render(t, r, Frame{Lo: world.Pos(0, 0), Hi: world.Pos(1, 0), Title: "abc"})
	lines := strings.Split(got, "\n")
	if lines[0] != "   abc" {
		t.Errorf("title line = %q, want %q", lines[0], "   abc")
	}
	if lines[2] != "  +-+-+" {
		t.Errorf("first map line = %q, want %q", lines[2], "  +-+-+")
	}
}

func TestDestroyDecoration_DropsChildren(t *testing.T) {
	r := New()
	r.Width = fixedWidth(5)
	deco, _ := twoRooms(r)
	r.PlaceObject(renderer.ObjectBlocker, deco, renderer.Vec2{Y: -2.3})

	r.DestroyDecoration(deco)
	if r.LiveObjects() != 0 {
		t.Errorf("LiveObjects() = %d, want 0", r.LiveObjects())
	}
	if r.LiveDecorations() != 1 {
		t.Errorf("LiveDecorations() = %d, want 1", r.LiveDecorations())
	}
	if _, ok := r.Floor(world.Pos(1, 0)); ok {
		t.Error("destroyed room still has a floor")
	}

	// unknown handles are ignored
	r.DestroyDecoration(deco)

	got := render(t, r, Frame{Lo: world.Pos(0, 0), Hi: world.Pos(1, 0)})
	if !strings.Contains(got, "|·  |") {
		t.Errorf("Render() after destroy =\n%s", got)
	}
}

func TestDeactivateCell_HidesRoom(t *testing.T) {
	r := New()
	r.Width = fixedWidth(5)
	twoRooms(r)

	r.DeactivateCell(world.Pos(1, 0))
	f := Frame{Lo: world.Pos(0, 0), Hi: world.Pos(1, 0)}
	if got := render(t, r, f); !strings.Contains(got, "|·  |") {
		t.Errorf("Render() with hidden room =\n%s", got)
	}

	r.ActivateCell(world.Pos(1, 0))
	if got := render(t, r, f); !strings.Contains(got, "|· ▲|") {
		t.Errorf("Render() after re-activation =\n%s", got)
	}
}

func TestSetPartVariant(t *testing.T) {
	r := New()
	deco := r.PlaceDecoration(world.Pos(0, 0), "FLOOR_MOSS")
	part := r.PlaceObject(renderer.ObjectPart, deco, renderer.Vec2{})
	r.SetPartVariant(part, entities.PartVariantB)
	if got := r.objects[part].variant; got != entities.PartVariantB {
		t.Errorf("variant = %v, want B", got)
	}
}

func TestLoader_NoLeaksAcrossLoads(t *testing.T) {
	r := New()
	l := setup.NewLoader(setup.DefaultOptions(), r, nil, nil, nil)

	levels := []descriptor.Raw{
		{Rooms: []string{
			"S m m M E",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|m|B",
		}},
		{Rooms: []string{
			"S|1|1|1|E",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
			"-+-+-+-+-",
			"1|1|1|1|1",
		}},
	}
	wantObjects := []int{6, 1}

	for i, raw := range levels {
		if err := l.LoadLevel(descriptor.MustParse(raw, 5, 5)); err != nil {
			t.Fatalf("LoadLevel(%d) error = %v", i, err)
		}
		if r.LiveDecorations() != 25 {
			t.Errorf("level %d: LiveDecorations() = %d, want 25", i, r.LiveDecorations())
		}
		if r.LiveObjects() != wantObjects[i] {
			t.Errorf("level %d: LiveObjects() = %d, want %d", i, r.LiveObjects(), wantObjects[i])
		}
	}

	lo, hi := l.Grid().Bounds()
	r.Width = fixedWidth(11)
	got := render(t, r, Frame{Lo: lo, Hi: hi})
	if lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n"); len(lines) != 11 {
		t.Errorf("map has %d lines, want 11", len(lines))
	}
	if !strings.Contains(got, "|·|") || !strings.Contains(got, IconExitLocked+"|") {
		t.Errorf("Render() =\n%s", got)
	}
}
