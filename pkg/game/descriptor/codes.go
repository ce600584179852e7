package descriptor

import "roomforge/pkg/engine/world"

// RoomCode is the letter describing what a room holds
type RoomCode rune

// Room letters. 's', 'p' and 'P' are reserved and place nothing.
const (
	RoomEmpty           RoomCode = ' '
	RoomNone            RoomCode = '1'
	RoomStart           RoomCode = 'S'
	RoomEnd             RoomCode = 'E'
	RoomBlocker         RoomCode = 'B'
	RoomPart            RoomCode = 'm'
	RoomPartAssembly    RoomCode = 'M'
	RoomSwitch          RoomCode = 's'
	RoomPowerupPart     RoomCode = 'p'
	RoomPowerupAssembly RoomCode = 'P'
	RoomWallSwitch      RoomCode = 'd'
)

// Kind maps the letter to the content it produces
func (r RoomCode) Kind() world.ContentKind {
	switch r {
	case RoomNone:
		return world.ContentInactive
	case RoomStart:
		return world.ContentStart
	case RoomEnd:
		return world.ContentEnd
	case RoomBlocker:
		return world.ContentBlocker
	case RoomPart:
		return world.ContentPart
	case RoomPartAssembly:
		return world.ContentAssemblyPedestal
	case RoomWallSwitch:
		return world.ContentWallSwitchButton
	default:
		return world.ContentEmpty
	}
}

// WallCode is the character describing one wall between two rooms
type WallCode rune

// Wall characters
const (
	WallNone       WallCode = ' '
	WallVertical   WallCode = '|'
	WallHorizontal WallCode = '-'
	WallSwitch     WallCode = 'D'
	wallFiller     WallCode = '+'
)

// State applies the doorway rule: '-' and '|' close the side, 'D' makes it
// switch controlled, anything else leaves it open.
func (w WallCode) State() world.WallState {
	switch w {
	case WallVertical, WallHorizontal:
		return world.WallClosed
	case WallSwitch:
		return world.WallSwitchControlled
	default:
		return world.WallOpen
	}
}
