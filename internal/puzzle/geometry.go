package puzzle

import (
	widget "septago-crossword/widget"
)

// Geometry is the fixed grid layout a puzzle document is validated
// against: playable mask plus slot cell lists.
type Geometry struct {
	Size         int
	PlayableMask [][]bool
	Slots        map[widget.SlotID][]widget.CellID
	CellToSlots  map[widget.CellID][]widget.SlotID
	SlotLengths  map[widget.SlotID]int
	SlotOrder    []widget.SlotID
}

// DefaultGeometry returns the canonical 5x5 layout: playable rows 1 and 3,
// playable columns 1 and 3, two across slots (h1, h2), two down slots
// (v1, v2), and the combined slot hw over the four intersections read
// clockwise.
func DefaultGeometry() Geometry {
	const size = 5
	playableRows := map[int]bool{1: true, 3: true}
	playableCols := map[int]bool{1: true, 3: true}

	mask := make([][]bool, size)
	for r := 0; r < size; r++ {
		mask[r] = make([]bool, size)
		for c := 0; c < size; c++ {
			mask[r][c] = playableRows[r] || playableCols[c]
		}
	}

	row := func(r int) []widget.CellID {
		cells := make([]widget.CellID, 0, size)
		for c := 0; c < size; c++ {
			cells = append(cells, widget.MakeCellID(r, c))
		}
		return cells
	}
	col := func(c int) []widget.CellID {
		cells := make([]widget.CellID, 0, size)
		for r := 0; r < size; r++ {
			cells = append(cells, widget.MakeCellID(r, c))
		}
		return cells
	}

	slots := map[widget.SlotID][]widget.CellID{
		"h1": row(1),
		"h2": row(3),
		"v1": col(1),
		"v2": col(3),
		"hw": {
			widget.MakeCellID(1, 1),
			widget.MakeCellID(1, 3),
			widget.MakeCellID(3, 3),
			widget.MakeCellID(3, 1),
		},
	}

	cellToSlots := make(map[widget.CellID][]widget.SlotID)
	lengths := make(map[widget.SlotID]int, len(slots))
	order := []widget.SlotID{"h1", "h2", "v1", "v2", "hw"}
	for _, sid := range order {
		cells := slots[sid]
		lengths[sid] = len(cells)
		for _, cell := range cells {
			cellToSlots[cell] = append(cellToSlots[cell], sid)
		}
	}

	return Geometry{
		Size:         size,
		PlayableMask: mask,
		Slots:        slots,
		CellToSlots:  cellToSlots,
		SlotLengths:  lengths,
		SlotOrder:    order,
	}
}

// IsPlayable reports whether a cell is inside the grid and playable.
func (g Geometry) IsPlayable(cell widget.CellID) bool {
	r, c, ok := cell.RowCol()
	if !ok || r < 0 || c < 0 || r >= g.Size || c >= g.Size {
		return false
	}
	return g.PlayableMask[r][c]
}

// FirstPlayable returns the first playable cell in row-major order.
func (g Geometry) FirstPlayable() (widget.CellID, bool) {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.PlayableMask[r][c] {
				return widget.MakeCellID(r, c), true
			}
		}
	}
	return "", false
}
