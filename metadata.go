package widget

import (
	"fmt"
	"strconv"
	"strings"

	"septago-crossword/widget/internal/net/proto"
)

// CellID identifies a grid cell as "row,col".
type CellID string

// SlotID identifies an answer slot (e.g. h1, v2, hw).
type SlotID string

// Orientation selects the directional interpretation of input.
type Orientation string

const (
	OrientationAcross Orientation = "H"
	OrientationDown   Orientation = "V"
)

// SlotKind classifies a slot by its cell geometry.
type SlotKind string

const (
	SlotKindAcross   SlotKind = "across"
	SlotKindDown     SlotKind = "down"
	SlotKindCombined SlotKind = "combined"
)

// MakeCellID builds the canonical cell identifier for a row/column pair.
func MakeCellID(r, c int) CellID {
	return CellID(fmt.Sprintf("%d,%d", r, c))
}

// RowCol parses a cell identifier back into coordinates.
func (id CellID) RowCol() (int, int, bool) {
	raw := string(id)
	sep := strings.IndexByte(raw, ',')
	if sep <= 0 || sep == len(raw)-1 {
		return 0, 0, false
	}
	r, err := strconv.Atoi(raw[:sep])
	if err != nil {
		return 0, 0, false
	}
	c, err := strconv.Atoi(raw[sep+1:])
	if err != nil {
		return 0, 0, false
	}
	return r, c, true
}

// GridMetadata is the derived, read-only projection of one authoritative
// snapshot: everything the reducer needs for O(1) navigation lookups.
type GridMetadata struct {
	Size     int
	PuzzleID string
	StateID  string

	Playable map[CellID]bool
	Given    map[CellID]bool

	Slots     map[SlotID][]CellID
	CellSlots map[CellID][]SlotID
	SlotIndex map[SlotID]map[CellID]int
	SlotKinds map[SlotID]SlotKind
	SlotOrder []SlotID

	Styling proto.Styling
}

// BuildGridMetadata projects a host snapshot into indexed lookup structures.
// It reports false when the snapshot carries no usable grid; it never
// rejects a snapshot for missing optional fields.
func BuildGridMetadata(snap proto.Snapshot, cfg Config) (GridMetadata, bool) {
	grid := snap.Grid
	if grid == nil || grid.Size <= 0 || len(grid.Cells) == 0 {
		return GridMetadata{}, false
	}
	cfg = cfg.normalized()

	meta := GridMetadata{
		Size:      grid.Size,
		Playable:  make(map[CellID]bool),
		Given:     make(map[CellID]bool),
		Slots:     make(map[SlotID][]CellID, len(grid.Slots)),
		CellSlots: make(map[CellID][]SlotID),
		SlotIndex: make(map[SlotID]map[CellID]int, len(grid.Slots)),
		SlotKinds: make(map[SlotID]SlotKind, len(grid.Slots)),
		Styling:   grid.Styling,
	}
	if snap.Sync != nil {
		meta.PuzzleID = snap.Sync.PuzzleID
		meta.StateID = snap.Sync.StateID
	}

	for _, cell := range grid.Cells {
		id := CellID(cell.ID)
		if id == "" {
			id = MakeCellID(cell.R, cell.C)
		}
		if cell.IsPlayable && !cell.IsBlack {
			meta.Playable[id] = true
			if cell.IsGiven {
				meta.Given[id] = true
			}
		}
	}

	for rawID, rawCells := range grid.Slots {
		sid := SlotID(rawID)
		cells := make([]CellID, 0, len(rawCells))
		index := make(map[CellID]int, len(rawCells))
		for i, raw := range rawCells {
			cid := CellID(raw)
			cells = append(cells, cid)
			index[cid] = i
		}
		meta.Slots[sid] = cells
		meta.SlotIndex[sid] = index
		meta.SlotKinds[sid] = classifySlot(cells)
	}

	if len(grid.CellToSlots) > 0 {
		for rawCell, rawSlots := range grid.CellToSlots {
			slots := make([]SlotID, 0, len(rawSlots))
			for _, raw := range rawSlots {
				slots = append(slots, SlotID(raw))
			}
			meta.CellSlots[CellID(rawCell)] = slots
		}
	} else {
		// Host omitted the reverse map; derive it from the slot lists.
		for sid, cells := range meta.Slots {
			for _, cid := range cells {
				meta.CellSlots[cid] = append(meta.CellSlots[cid], sid)
			}
		}
	}

	if len(grid.SlotOrder) > 0 {
		meta.SlotOrder = make([]SlotID, 0, len(grid.SlotOrder))
		for _, raw := range grid.SlotOrder {
			meta.SlotOrder = append(meta.SlotOrder, SlotID(raw))
		}
	} else {
		meta.SlotOrder = append([]SlotID(nil), cfg.SlotOrder...)
	}

	return meta, true
}

// classifySlot derives a slot's kind from its cell coordinates: constant
// row is across, constant column is down, anything else is combined.
func classifySlot(cells []CellID) SlotKind {
	if len(cells) == 0 {
		return SlotKindCombined
	}
	r0, c0, ok := cells[0].RowCol()
	if !ok {
		return SlotKindCombined
	}
	sameRow, sameCol := true, true
	for _, cid := range cells[1:] {
		r, c, ok := cid.RowCol()
		if !ok {
			return SlotKindCombined
		}
		if r != r0 {
			sameRow = false
		}
		if c != c0 {
			sameCol = false
		}
	}
	switch {
	case sameRow && !sameCol:
		return SlotKindAcross
	case sameCol && !sameRow:
		return SlotKindDown
	case sameRow && sameCol:
		// Single-cell slot; treat as across for cycling purposes.
		return SlotKindAcross
	default:
		return SlotKindCombined
	}
}

// IsPlayableAt reports whether the given coordinates land on a playable cell.
func (m GridMetadata) IsPlayableAt(r, c int) bool {
	if r < 0 || c < 0 || r >= m.Size || c >= m.Size {
		return false
	}
	return m.Playable[MakeCellID(r, c)]
}

// SlotPosition returns a cell's offset within a slot using the
// precomputed index.
func (m GridMetadata) SlotPosition(slot SlotID, cell CellID) (int, bool) {
	index, ok := m.SlotIndex[slot]
	if !ok {
		return 0, false
	}
	pos, ok := index[cell]
	return pos, ok
}

// FirstPlayable returns the first playable cell in row-major order.
func (m GridMetadata) FirstPlayable() (CellID, bool) {
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			id := MakeCellID(r, c)
			if m.Playable[id] {
				return id, true
			}
		}
	}
	return "", false
}

// firstAcrossSlot returns the first across slot in the cycling order. This
// is the defensive fallback target for cells with no slot membership.
func (m GridMetadata) firstAcrossSlot() SlotID {
	for _, sid := range m.SlotOrder {
		if m.SlotKinds[sid] == SlotKindAcross {
			return sid
		}
	}
	if len(m.SlotOrder) > 0 {
		return m.SlotOrder[0]
	}
	return ""
}

// slotSupports reports whether any slot containing the cell matches the
// given kind.
func (m GridMetadata) slotSupports(cell CellID, kind SlotKind) bool {
	for _, sid := range m.CellSlots[cell] {
		if m.SlotKinds[sid] == kind {
			return true
		}
	}
	return false
}
