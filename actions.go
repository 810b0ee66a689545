package widget

import "septago-crossword/widget/internal/net/proto"

// Direction is an arrow-key movement direction.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// delta returns the per-step row/column offsets for the direction.
func (d Direction) delta() (int, int, bool) {
	switch d {
	case DirectionLeft:
		return 0, -1, true
	case DirectionRight:
		return 0, 1, true
	case DirectionUp:
		return -1, 0, true
	case DirectionDown:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// implied returns the orientation the direction implies.
func (d Direction) implied() Orientation {
	if d == DirectionUp || d == DirectionDown {
		return OrientationDown
	}
	return OrientationAcross
}

// Action is a discrete user input applied by the reducer. Exactly one
// concrete variant exists per event type; each carries only its own fields.
type Action interface {
	// EventType returns the wire identifier for the action.
	EventType() string
}

// ClickCell focuses a playable cell, toggling orientation on a repeated
// click at an intersection.
type ClickCell struct {
	Cell CellID
}

// ToggleOrientation flips between across and down at an intersection.
type ToggleOrientation struct{}

// Arrow moves the active cell one playable step in a direction.
type Arrow struct {
	Direction Direction
}

// TypeChar writes a letter into the active cell.
type TypeChar struct {
	Char rune
}

// Backspace clears the active cell or steps backward within the slot.
type Backspace struct{}

// Tab advances the active slot through the cycling order.
type Tab struct{}

// ShiftTab moves the active slot backward through the cycling order.
type ShiftTab struct{}

func (ClickCell) EventType() string         { return proto.TypeClickCell }
func (ToggleOrientation) EventType() string { return proto.TypeToggleOrientation }
func (Arrow) EventType() string             { return proto.TypeArrow }
func (TypeChar) EventType() string          { return proto.TypeTypeChar }
func (Backspace) EventType() string         { return proto.TypeBackspace }
func (Tab) EventType() string               { return proto.TypeTab }
func (ShiftTab) EventType() string          { return proto.TypeShiftTab }
