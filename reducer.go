package widget

// Apply is the pure navigation transition: one action mapped onto the local
// projected state, producing the next state. The bool reports whether the
// action was accepted; rejected inputs (non-letters, edits on given cells,
// clicks on black squares) leave the state untouched and are not emitted.
func Apply(st LocalState, action Action) (LocalState, bool) {
	if st.Meta.Size <= 0 || st.Focus.ActiveCell == "" {
		return st, false
	}
	switch a := action.(type) {
	case ClickCell:
		return applyClick(st, a.Cell)
	case ToggleOrientation:
		return applyToggle(st)
	case Arrow:
		return applyArrow(st, a.Direction)
	case TypeChar:
		return applyTypeChar(st, a.Char)
	case Backspace:
		return applyBackspace(st)
	case Tab:
		return applyCycle(st, 1)
	case ShiftTab:
		return applyCycle(st, -1)
	default:
		return st, false
	}
}

// resolveActiveSlot picks the active slot for a cell: prefer a slot
// matching the desired orientation, optionally prefer the combined slot,
// then fall back across -> down -> combined. A cell with no slot
// membership lands on the first across slot in the cycling order even
// though that slot does not contain it; this mirrors the host's own
// fallback and is preserved as observed.
func resolveActiveSlot(meta GridMetadata, cell CellID, orientation Orientation, preferCombined bool) SlotID {
	var across, down, combined []SlotID
	for _, sid := range meta.CellSlots[cell] {
		switch meta.SlotKinds[sid] {
		case SlotKindAcross:
			across = append(across, sid)
		case SlotKindDown:
			down = append(down, sid)
		default:
			combined = append(combined, sid)
		}
	}

	if orientation == OrientationAcross && len(across) > 0 {
		return across[0]
	}
	if orientation == OrientationDown && len(down) > 0 {
		return down[0]
	}
	if preferCombined && len(combined) > 0 {
		return combined[0]
	}
	if len(across) > 0 {
		return across[0]
	}
	if len(down) > 0 {
		return down[0]
	}
	if len(combined) > 0 {
		return combined[0]
	}
	return meta.firstAcrossSlot()
}

func applyClick(st LocalState, cell CellID) (LocalState, bool) {
	if !st.Meta.Playable[cell] {
		return st, false
	}

	orientation := st.Focus.Orientation
	hasAcross := st.Meta.slotSupports(cell, SlotKindAcross)
	hasDown := st.Meta.slotSupports(cell, SlotKindDown)

	switch {
	case cell == st.Focus.ActiveCell && hasAcross && hasDown:
		orientation = orientation.flipped()
	case orientation == OrientationAcross && !hasAcross && hasDown:
		orientation = OrientationDown
	case orientation == OrientationDown && !hasDown && hasAcross:
		orientation = OrientationAcross
	}

	st.Focus = FocusState{
		ActiveCell:  cell,
		ActiveSlot:  resolveActiveSlot(st.Meta, cell, orientation, false),
		Orientation: orientation,
	}
	return st, true
}

func applyToggle(st LocalState) (LocalState, bool) {
	cell := st.Focus.ActiveCell
	if !st.Meta.slotSupports(cell, SlotKindAcross) || !st.Meta.slotSupports(cell, SlotKindDown) {
		return st, false
	}
	orientation := st.Focus.Orientation.flipped()
	st.Focus.Orientation = orientation
	st.Focus.ActiveSlot = resolveActiveSlot(st.Meta, cell, orientation, false)
	return st, true
}

func applyArrow(st LocalState, dir Direction) (LocalState, bool) {
	dr, dc, ok := dir.delta()
	if !ok {
		return st, false
	}
	orientation := dir.implied()

	r, c, ok := st.Focus.ActiveCell.RowCol()
	if !ok {
		return st, false
	}

	for i := 0; i < st.Meta.Size*st.Meta.Size; i++ {
		r += dr
		c += dc
		if r < 0 || c < 0 || r >= st.Meta.Size || c >= st.Meta.Size {
			// Boundary exceeded: the cursor stays put but the
			// orientation still follows the arrow.
			st.Focus.Orientation = orientation
			st.Focus.ActiveSlot = resolveActiveSlot(st.Meta, st.Focus.ActiveCell, orientation, false)
			return st, true
		}
		if st.Meta.IsPlayableAt(r, c) {
			cell := MakeCellID(r, c)
			st.Focus = FocusState{
				ActiveCell:  cell,
				ActiveSlot:  resolveActiveSlot(st.Meta, cell, orientation, false),
				Orientation: orientation,
			}
			return st, true
		}
	}
	return st, true
}

func applyTypeChar(st LocalState, ch rune) (LocalState, bool) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if ch < 'A' || ch > 'Z' {
		return st, false
	}
	cell := st.Focus.ActiveCell
	if st.Meta.Given[cell] {
		return st, false
	}

	letters := cloneLetters(st.Letters)
	letters[cell] = string(ch)
	st.Letters = letters
	st.Checks = clearedChecks(st.Checks)

	if st.Behavior.AdvanceOnType {
		st.Focus.ActiveCell = advanceWithinSlot(st.Meta, st.Focus.ActiveSlot, cell, 1)
	}
	return st, true
}

func applyBackspace(st LocalState) (LocalState, bool) {
	cell := st.Focus.ActiveCell
	if st.Meta.Given[cell] {
		return st, false
	}

	if st.Letters[cell] != "" {
		letters := cloneLetters(st.Letters)
		letters[cell] = ""
		st.Letters = letters
		st.Checks = clearedChecks(st.Checks)
		return st, true
	}

	prev := advanceWithinSlot(st.Meta, st.Focus.ActiveSlot, cell, -1)
	if prev == cell {
		return st, true
	}
	st.Focus.ActiveCell = prev
	if st.Meta.Given[prev] {
		return st, true
	}
	letters := cloneLetters(st.Letters)
	letters[prev] = ""
	st.Letters = letters
	st.Checks = clearedChecks(st.Checks)
	return st, true
}

func applyCycle(st LocalState, step int) (LocalState, bool) {
	order := st.Meta.SlotOrder
	if len(order) == 0 {
		return st, false
	}

	idx := 0
	for i, sid := range order {
		if sid == st.Focus.ActiveSlot {
			idx = i
			break
		}
	}
	target := order[((idx+step)%len(order)+len(order))%len(order)]
	cells := st.Meta.Slots[target]
	if len(cells) == 0 {
		return st, false
	}

	orientation := st.Focus.Orientation
	switch st.Meta.SlotKinds[target] {
	case SlotKindAcross:
		orientation = OrientationAcross
	case SlotKindDown:
		orientation = OrientationDown
	}

	st.Focus = FocusState{
		ActiveCell:  cells[0],
		ActiveSlot:  target,
		Orientation: orientation,
	}
	return st, true
}

// advanceWithinSlot steps a cell's position inside a slot using the
// precomputed index. A cell outside the slot snaps to the slot's first
// cell; stepping past either end stays put.
func advanceWithinSlot(meta GridMetadata, slot SlotID, cell CellID, step int) CellID {
	cells := meta.Slots[slot]
	if len(cells) == 0 {
		return cell
	}
	pos, ok := meta.SlotPosition(slot, cell)
	if !ok {
		return cells[0]
	}
	next := pos + step
	if next < 0 || next >= len(cells) {
		return cell
	}
	return cells[next]
}

func (o Orientation) flipped() Orientation {
	if o == OrientationAcross {
		return OrientationDown
	}
	return OrientationAcross
}
