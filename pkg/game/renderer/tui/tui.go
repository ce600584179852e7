// Package tui is a headless text renderer. It keeps a model of everything
// the level loader placed and prints it as a coloured map.
package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"roomforge/pkg/engine/terminal"
	"roomforge/pkg/engine/world"
	"roomforge/pkg/game/entities"
	"roomforge/pkg/game/renderer"
)

// Map icons
const (
	PlayerIcon       = "@"
	IconVoid         = " "
	IconFloor        = "·"
	IconExitLocked   = "▲"
	IconExitUnlocked = "△"
	IconPart         = "◆"
	IconPedestal     = "◎"
	IconSwitch       = "▫"
	IconBlocker      = "▒"
	IconCorner       = "+"
)

// Wall glyphs, indexed by orientation
const (
	wallHorizontal = "-"
	wallVertical   = "|"
	wallSwitch     = "D"
	wallOpen       = " "
)

type decoration struct {
	cell  world.Position
	floor string
}

type object struct {
	kind    renderer.ObjectKind
	parent  world.Handle
	local   renderer.Vec2
	variant entities.PartVariant
	open    bool
}

type wallKey struct {
	cell world.Position
	side world.Side
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor      color.Style
	colorWall       color.Style
	colorSwitchWall color.Style
	colorSubtle     color.Style
	colorPlayer     color.Style
	colorExitLocked color.Style
	colorExitOpen   color.Style
	colorPedestal   color.Style
	colorSwitch     color.Style
	colorBlocker    color.Style
	colorParts      map[entities.PartVariant]color.Style

	// Width reports the line width the map is centred in
	Width func() int

	decorations map[world.Handle]decoration
	byCell      map[world.Position]world.Handle
	objects     map[world.Handle]*object
	walls       map[wallKey]world.WallState
	inactive    mapset.Set[world.Position]
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{
		colorFloor:      color.Style{color.FgGray},
		colorWall:       color.Style{color.FgGray, color.OpBold},
		colorSwitchWall: color.Style{color.FgYellow, color.OpBold},
		colorSubtle:     color.Style{color.FgGray},
		colorPlayer:     color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		colorExitLocked: color.Style{color.FgRed, color.OpBold},
		colorExitOpen:   color.Style{color.FgGreen},
		colorPedestal:   color.Style{color.FgMagenta, color.OpBold},
		colorSwitch:     color.Style{color.FgCyan},
		colorBlocker:    color.Style{color.FgRed},
		colorParts: map[entities.PartVariant]color.Style{
			entities.PartVariantNone: {color.FgWhite},
			entities.PartVariantA:    {color.FgBlue, color.OpBold},
			entities.PartVariantB:    {color.FgYellow},
			entities.PartVariantC:    {color.FgMagenta},
		},
		Width:       terminal.GetWidth,
		decorations: make(map[world.Handle]decoration),
		byCell:      make(map[world.Position]world.Handle),
		objects:     make(map[world.Handle]*object),
		walls:       make(map[wallKey]world.WallState),
		inactive:    mapset.New[world.Position](),
	}
}

// PlaceDecoration records the floor of a room
func (t *TUIRenderer) PlaceDecoration(cell world.Position, floor string) world.Handle {
	h := uuid.New()
	t.decorations[h] = decoration{cell: cell, floor: floor}
	t.byCell[cell] = h
	return h
}

// DestroyDecoration drops a floor and every object placed under it
func (t *TUIRenderer) DestroyDecoration(h world.Handle) {
	d, ok := t.decorations[h]
	if !ok {
		return
	}
	for oh, o := range t.objects {
		if o.parent == h {
			delete(t.objects, oh)
		}
	}
	if t.byCell[d.cell] == h {
		delete(t.byCell, d.cell)
		for _, side := range world.AllSides() {
			delete(t.walls, wallKey{d.cell, side})
		}
	}
	delete(t.decorations, h)
}

// ActivateCell shows a room again
func (t *TUIRenderer) ActivateCell(cell world.Position) {
	t.inactive.Remove(cell)
}

// DeactivateCell hides a room
func (t *TUIRenderer) DeactivateCell(cell world.Position) {
	t.inactive.Put(cell)
}

// PlaceObject records an object under parent
func (t *TUIRenderer) PlaceObject(kind renderer.ObjectKind, parent world.Handle, local renderer.Vec2) world.Handle {
	h := uuid.New()
	t.objects[h] = &object{kind: kind, parent: parent, local: local}
	return h
}

// SetPartVariant sets the colour a part is drawn with
func (t *TUIRenderer) SetPartVariant(h world.Handle, v entities.PartVariant) {
	if o, ok := t.objects[h]; ok {
		o.variant = v
	}
}

// SetWallState records one side of a room
func (t *TUIRenderer) SetWallState(cell world.Position, side world.Side, state world.WallState) {
	t.walls[wallKey{cell, side}] = state
}

// OpenExit switches an exit to its open icon
func (t *TUIRenderer) OpenExit(h world.Handle) {
	if o, ok := t.objects[h]; ok && o.kind == renderer.ObjectExit {
		o.open = true
	}
}

// LiveDecorations returns how many floors are currently placed
func (t *TUIRenderer) LiveDecorations() int {
	return len(t.decorations)
}

// LiveObjects returns how many objects are currently placed
func (t *TUIRenderer) LiveObjects() int {
	return len(t.objects)
}

// Floor returns the floor variant of the room at cell
func (t *TUIRenderer) Floor(cell world.Position) (string, bool) {
	h, ok := t.byCell[cell]
	if !ok {
		return "", false
	}
	return t.decorations[h].floor, true
}

// Frame describes one map print
type Frame struct {
	Lo, Hi world.Position

	// Player is drawn when ShowPlayer is set
	Player     world.Position
	ShowPlayer bool

	Title string
}

// Render prints the map of the rooms between f.Lo and f.Hi, centred in
// t.Width columns
func (t *TUIRenderer) Render(w io.Writer, f Frame) error {
	cols := f.Hi.X - f.Lo.X + 1
	mapWidth := 2*cols + 1
	indent := strings.Repeat(" ", terminal.CenterIndent(t.width(), mapWidth))

	var b strings.Builder
	if f.Title != "" {
		pad := terminal.CenterIndent(t.width(), len([]rune(f.Title)))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(t.colorPedestal.Sprint(f.Title))
		b.WriteString("\n\n")
	}

	for y := f.Lo.Y; y <= f.Hi.Y; y++ {
		// the top edge of this row
		b.WriteString(indent)
		b.WriteString(t.colorSubtle.Sprint(IconCorner))
		for x := f.Lo.X; x <= f.Hi.X; x++ {
			b.WriteString(t.wallGlyph(world.Pos(x, y), world.Up, wallHorizontal))
			b.WriteString(t.colorSubtle.Sprint(IconCorner))
		}
		b.WriteString("\n")

		b.WriteString(indent)
		b.WriteString(t.wallGlyph(world.Pos(f.Lo.X, y), world.Left, wallVertical))
		for x := f.Lo.X; x <= f.Hi.X; x++ {
			p := world.Pos(x, y)
			if f.ShowPlayer && p == f.Player {
				b.WriteString(t.colorPlayer.Sprint(PlayerIcon))
			} else {
				b.WriteString(t.roomGlyph(p))
			}
			b.WriteString(t.wallGlyph(p, world.Right, wallVertical))
		}
		b.WriteString("\n")
	}

	b.WriteString(indent)
	b.WriteString(t.colorSubtle.Sprint(IconCorner))
	for x := f.Lo.X; x <= f.Hi.X; x++ {
		b.WriteString(t.wallGlyph(world.Pos(x, f.Hi.Y), world.Down, wallHorizontal))
		b.WriteString(t.colorSubtle.Sprint(IconCorner))
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Legend prints what the map icons mean
func (t *TUIRenderer) Legend(w io.Writer) error {
	entries := []string{
		t.colorPlayer.Sprint(PlayerIcon) + " you",
		t.colorExitLocked.Sprint(IconExitLocked) + " exit (locked)",
		t.colorExitOpen.Sprint(IconExitUnlocked) + " exit (open)",
		t.colorParts[entities.PartVariantA].Sprint(IconPart) + " part",
		t.colorPedestal.Sprint(IconPedestal) + " pedestal",
		t.colorSwitch.Sprint(IconSwitch) + " wall switch",
		t.colorBlocker.Sprint(IconBlocker) + " blocker",
		t.colorSwitchWall.Sprint(wallSwitch) + " switch wall",
	}
	_, err := fmt.Fprintln(w, strings.Join(entries, t.colorSubtle.Sprint(", ")))
	return err
}

func (t *TUIRenderer) width() int {
	if t.Width == nil {
		return terminal.DefaultWidth
	}
	return t.Width()
}

// wallGlyph returns the glyph for one side of the room at p. Sides of
// rooms that were never placed render as closed.
func (t *TUIRenderer) wallGlyph(p world.Position, side world.Side, closed string) string {
	state, ok := t.walls[wallKey{p, side}]
	if !ok {
		state = world.WallClosed
	}
	switch state {
	case world.WallOpen:
		return wallOpen
	case world.WallSwitchControlled:
		return t.colorSwitchWall.Sprint(wallSwitch)
	default:
		return t.colorWall.Sprint(closed)
	}
}

// roomGlyph returns the icon of the room at p
func (t *TUIRenderer) roomGlyph(p world.Position) string {
	h, ok := t.byCell[p]
	if !ok || t.inactive.Has(p) {
		return IconVoid
	}

	obj := t.topObject(h)
	if obj == nil {
		return t.colorFloor.Sprint(IconFloor)
	}

	switch obj.kind {
	case renderer.ObjectExit:
		if obj.open {
			return t.colorExitOpen.Sprint(IconExitUnlocked)
		}
		return t.colorExitLocked.Sprint(IconExitLocked)
	case renderer.ObjectPart:
		return t.colorParts[obj.variant].Sprint(IconPart)
	case renderer.ObjectPedestal:
		return t.colorPedestal.Sprint(IconPedestal)
	case renderer.ObjectWallSwitchButton:
		return t.colorSwitch.Sprint(IconSwitch)
	case renderer.ObjectBlocker:
		return t.colorBlocker.Sprint(IconBlocker)
	default:
		return t.colorFloor.Sprint(IconFloor)
	}
}

// topObject picks the object to draw for a room when several share it.
// Lower kinds win, so an exit is never hidden behind a blocker.
func (t *TUIRenderer) topObject(parent world.Handle) *object {
	var found []*object
	for _, o := range t.objects {
		if o.parent == parent {
			found = append(found, o)
		}
	}
	if len(found) == 0 {
		return nil
	}
	sort.Slice(found, func(i, j int) bool { return found[i].kind < found[j].kind })
	return found[0]
}
