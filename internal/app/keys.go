package app

import (
	"strings"

	widget "septago-crossword/widget"
)

// ParseKey translates one line of keyboard input into an action. Single
// letters type, named keys navigate, "click r,c" focuses a cell. Unknown
// input yields no action.
func ParseKey(line string) (widget.Action, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}

	lower := strings.ToLower(line)
	switch lower {
	case "tab", "enter":
		return widget.Tab{}, true
	case "shift-tab", "backtab":
		return widget.ShiftTab{}, true
	case "backspace", "bs":
		return widget.Backspace{}, true
	case "space", "toggle":
		return widget.ToggleOrientation{}, true
	case "left", "right", "up", "down":
		return widget.Arrow{Direction: widget.Direction(lower)}, true
	}

	if cell, ok := strings.CutPrefix(lower, "click "); ok {
		id := widget.CellID(strings.TrimSpace(cell))
		if _, _, ok := id.RowCol(); !ok {
			return nil, false
		}
		return widget.ClickCell{Cell: id}, true
	}

	runes := []rune(line)
	if len(runes) == 1 {
		return widget.TypeChar{Char: runes[0]}, true
	}
	return nil, false
}
