package widget

import "septago-crossword/widget/internal/net/proto"

// CheckState is the host-supplied validation paint state for a cell.
type CheckState string

const (
	CheckNone CheckState = "none"
	CheckOK   CheckState = "ok"
	CheckBad  CheckState = "bad"
)

// FocusState is the navigation cursor: active cell, active slot, and the
// orientation governing arrow input.
type FocusState struct {
	ActiveCell  CellID
	ActiveSlot  SlotID
	Orientation Orientation
}

// Behavior carries the interaction flags in effect for the current state.
type Behavior struct {
	CaptureKeyboard     bool
	AllowEditGivenCells bool
	AdvanceOnType       bool
	SkipBlackCells      bool
}

// LocalState is the widget's locally predicted projection of the puzzle.
// It is rebuilt wholesale whenever a snapshot is adopted and mutated one
// action at a time in between.
type LocalState struct {
	Meta     GridMetadata
	Focus    FocusState
	Letters  map[CellID]string
	Checks   map[CellID]CheckState
	Behavior Behavior
}

// ProjectLocalState rebuilds the local projection from an adopted snapshot.
// Letter and check entries exist only for playable cells; the focus is
// clamped onto the playable set so the active-cell invariant always holds.
func ProjectLocalState(meta GridMetadata, snap proto.Snapshot, cfg Config) LocalState {
	st := LocalState{
		Meta:     meta,
		Letters:  make(map[CellID]string, len(meta.Playable)),
		Checks:   make(map[CellID]CheckState, len(meta.Playable)),
		Behavior: cfg.normalized().behaviorDefaults(),
	}

	if snap.Grid != nil {
		for _, cell := range snap.Grid.Cells {
			id := CellID(cell.ID)
			if id == "" {
				id = MakeCellID(cell.R, cell.C)
			}
			if !meta.Playable[id] {
				continue
			}
			st.Letters[id] = cell.Letter
			st.Checks[id] = parseCheckState(cell.Highlight.CheckState)
		}
	}
	for id := range meta.Playable {
		if _, ok := st.Letters[id]; !ok {
			st.Letters[id] = ""
			st.Checks[id] = CheckNone
		}
	}

	if snap.Behavior != nil {
		st.Behavior = Behavior{
			CaptureKeyboard:     snap.Behavior.CaptureKeyboard,
			AllowEditGivenCells: snap.Behavior.AllowEditGivenCells,
			AdvanceOnType:       snap.Behavior.AdvanceOnType,
			SkipBlackCells:      snap.Behavior.SkipBlackCells,
		}
	}

	st.Focus = projectFocus(meta, snap.Focus)
	return st
}

func projectFocus(meta GridMetadata, focus *proto.FocusSection) FocusState {
	out := FocusState{Orientation: OrientationAcross}
	if focus != nil {
		if o := Orientation(focus.Orientation); o == OrientationAcross || o == OrientationDown {
			out.Orientation = o
		}
		out.ActiveCell = CellID(focus.ActiveCellID)
		out.ActiveSlot = SlotID(focus.ActiveSlot)
	}

	if !meta.Playable[out.ActiveCell] {
		if first, ok := meta.FirstPlayable(); ok {
			out.ActiveCell = first
		} else {
			out.ActiveCell = ""
		}
		out.ActiveSlot = ""
	}
	if out.ActiveCell != "" {
		if _, ok := meta.SlotIndex[out.ActiveSlot][out.ActiveCell]; !ok {
			out.ActiveSlot = resolveActiveSlot(meta, out.ActiveCell, out.Orientation, false)
		}
	}
	return out
}

func parseCheckState(raw string) CheckState {
	switch CheckState(raw) {
	case CheckOK, CheckBad:
		return CheckState(raw)
	default:
		return CheckNone
	}
}

// cloneLetters copies the letter map before a mutation so prior states
// handed to collaborators stay stable.
func cloneLetters(src map[CellID]string) map[CellID]string {
	out := make(map[CellID]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func clearedChecks(src map[CellID]CheckState) map[CellID]CheckState {
	out := make(map[CellID]CheckState, len(src))
	for k := range src {
		out[k] = CheckNone
	}
	return out
}
