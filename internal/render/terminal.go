package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	widget "septago-crossword/widget"
)

// Terminal paints the local projected state as a character grid. It only
// reads the state it is handed; all transition logic lives upstream.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer

	lastRows int
	lastCols int

	activeCell *color.Color
	activeSlot *color.Color
	givenCell  *color.Color
	okCell     *color.Color
	badCell    *color.Color
	blackCell  *color.Color
}

// NewTerminal constructs a painter writing to the provided writer.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:        out,
		activeCell: color.New(color.FgBlack, color.BgYellow, color.Bold),
		activeSlot: color.New(color.FgBlack, color.BgCyan),
		givenCell:  color.New(color.FgWhite, color.Faint),
		okCell:     color.New(color.FgGreen),
		badCell:    color.New(color.FgRed),
		blackCell:  color.New(color.FgWhite, color.BgBlack),
	}
}

// Repaint draws the full grid. It is called synchronously after every
// accepted action, before the corresponding event reaches the host.
func (t *Terminal) Repaint(st widget.LocalState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	size := st.Meta.Size
	activeSlotCells := st.Meta.SlotIndex[st.Focus.ActiveSlot]

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			id := widget.MakeCellID(r, c)
			b.WriteString(t.paintCell(st, id, activeSlotCells))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "active=%s slot=%s orientation=%s\n",
		st.Focus.ActiveCell, st.Focus.ActiveSlot, st.Focus.Orientation)

	t.lastRows = size + 1
	t.lastCols = size * 4
	io.WriteString(t.out, b.String())
}

func (t *Terminal) paintCell(st widget.LocalState, id widget.CellID, activeSlotCells map[widget.CellID]int) string {
	if !st.Meta.Playable[id] {
		return t.blackCell.Sprint("[■]") + " "
	}

	letter := st.Letters[id]
	if letter == "" {
		letter = "·"
	}
	cell := "[" + letter + "]"

	_, inActiveSlot := activeSlotCells[id]
	switch {
	case id == st.Focus.ActiveCell:
		cell = t.activeCell.Sprint(cell)
	case st.Checks[id] == widget.CheckOK:
		cell = t.okCell.Sprint(cell)
	case st.Checks[id] == widget.CheckBad:
		cell = t.badCell.Sprint(cell)
	case st.Meta.Given[id]:
		cell = t.givenCell.Sprint(cell)
	case inActiveSlot:
		cell = t.activeSlot.Sprint(cell)
	}
	return cell + " "
}

// Clear surfaces the "no data" placeholder.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastRows = 1
	t.lastCols = 0
	io.WriteString(t.out, "no puzzle data\n")
}

// FrameSize reports the dimensions of the last painted frame, in
// character cells. Used for the host frame-size notification.
func (t *Terminal) FrameSize() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastCols, t.lastRows
}
