package widget

import "testing"

func TestApplyRejectsWithoutState(t *testing.T) {
	if _, ok := Apply(LocalState{}, ClickCell{Cell: "1,1"}); ok {
		t.Fatalf("expected rejection without a projected grid")
	}
}

func TestClickFocusesCell(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, ClickCell{Cell: "1,1"})
	if !ok {
		t.Fatalf("expected click on playable cell to apply")
	}
	if next.Focus.ActiveCell != "1,1" || next.Focus.ActiveSlot != "h1" || next.Focus.Orientation != OrientationAcross {
		t.Fatalf("unexpected focus after click: %+v", next.Focus)
	}
}

func TestClickSameIntersectionTogglesOrientation(t *testing.T) {
	st := testState(t)

	st, _ = Apply(st, ClickCell{Cell: "1,1"})
	next, ok := Apply(st, ClickCell{Cell: "1,1"})
	if !ok {
		t.Fatalf("expected repeated click to apply")
	}
	if next.Focus.Orientation != OrientationDown || next.Focus.ActiveSlot != "v1" {
		t.Fatalf("expected toggle to down/v1, got %+v", next.Focus)
	}
}

func TestClickSwitchesOrientationWhenUnsupported(t *testing.T) {
	st := testState(t)

	// 0,1 belongs only to the down slot; the across orientation cannot hold.
	next, ok := Apply(st, ClickCell{Cell: "0,1"})
	if !ok {
		t.Fatalf("expected click to apply")
	}
	if next.Focus.Orientation != OrientationDown || next.Focus.ActiveSlot != "v1" {
		t.Fatalf("expected orientation switch to down/v1, got %+v", next.Focus)
	}
}

func TestClickBlackCellRejected(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, ClickCell{Cell: "0,0"})
	if ok {
		t.Fatalf("expected click on black cell to be rejected")
	}
	if next.Focus != st.Focus {
		t.Fatalf("rejected click must not move focus")
	}
}

func TestToggleOrientation(t *testing.T) {
	st := testState(t)

	// 1,0 sits only on the across slot; there is nothing to toggle to.
	if _, ok := Apply(st, ToggleOrientation{}); ok {
		t.Fatalf("expected toggle without a crossing slot to be rejected")
	}

	st, _ = Apply(st, ClickCell{Cell: "1,1"})
	next, ok := Apply(st, ToggleOrientation{})
	if !ok {
		t.Fatalf("expected toggle at intersection to apply")
	}
	if next.Focus.Orientation != OrientationDown || next.Focus.ActiveSlot != "v1" || next.Focus.ActiveCell != "1,1" {
		t.Fatalf("unexpected focus after toggle: %+v", next.Focus)
	}
}

func TestArrowMovesToAdjacentPlayable(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, Arrow{Direction: DirectionRight})
	if !ok {
		t.Fatalf("expected arrow to apply")
	}
	if next.Focus.ActiveCell != "1,1" || next.Focus.Orientation != OrientationAcross || next.Focus.ActiveSlot != "h1" {
		t.Fatalf("unexpected focus after right arrow: %+v", next.Focus)
	}

	next, ok = Apply(next, Arrow{Direction: DirectionDown})
	if !ok {
		t.Fatalf("expected arrow to apply")
	}
	if next.Focus.ActiveCell != "2,1" || next.Focus.Orientation != OrientationDown || next.Focus.ActiveSlot != "v1" {
		t.Fatalf("unexpected focus after down arrow: %+v", next.Focus)
	}
}

func TestArrowSkipsBlackCells(t *testing.T) {
	st := testState(t)
	st, _ = Apply(st, ClickCell{Cell: "0,1"})

	// 0,2 is black; the cursor lands on the next playable cell in line.
	next, ok := Apply(st, Arrow{Direction: DirectionRight})
	if !ok {
		t.Fatalf("expected arrow to apply")
	}
	if next.Focus.ActiveCell != "0,3" {
		t.Fatalf("expected skip to 0,3, got %s", next.Focus.ActiveCell)
	}
	// 0,3 has no across slot, so the resolution falls through to down.
	if next.Focus.ActiveSlot != "v2" {
		t.Fatalf("expected slot v2, got %s", next.Focus.ActiveSlot)
	}
}

func TestArrowAtBoundaryKeepsCellUpdatesOrientation(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, Arrow{Direction: DirectionLeft})
	if !ok {
		t.Fatalf("boundary arrow still counts as applied")
	}
	if next.Focus.ActiveCell != "1,0" {
		t.Fatalf("expected cursor to stay at 1,0, got %s", next.Focus.ActiveCell)
	}

	st, _ = Apply(st, ClickCell{Cell: "0,1"})
	next, ok = Apply(st, Arrow{Direction: DirectionUp})
	if !ok {
		t.Fatalf("boundary arrow still counts as applied")
	}
	if next.Focus.ActiveCell != "0,1" || next.Focus.Orientation != OrientationDown {
		t.Fatalf("expected 0,1/down at top boundary, got %+v", next.Focus)
	}
}

func TestTypeCharWritesAndAdvances(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, TypeChar{Char: 'q'})
	if !ok {
		t.Fatalf("expected letter to apply")
	}
	if next.Letters["1,0"] != "Q" {
		t.Fatalf("expected lowercase input stored uppercase, got %q", next.Letters["1,0"])
	}
	if next.Focus.ActiveCell != "1,1" {
		t.Fatalf("expected advance within slot to 1,1, got %s", next.Focus.ActiveCell)
	}
	if st.Letters["1,0"] != "" {
		t.Fatalf("prior state must not be mutated")
	}
}

func TestTypeCharRejectsNonLetters(t *testing.T) {
	st := testState(t)
	for _, ch := range []rune{'3', ' ', '!', 'é'} {
		if _, ok := Apply(st, TypeChar{Char: ch}); ok {
			t.Fatalf("expected %q to be rejected", ch)
		}
	}
}

func TestTypeCharRejectsGivenCell(t *testing.T) {
	st := testState(t)
	st, _ = Apply(st, ClickCell{Cell: "1,2"})

	next, ok := Apply(st, TypeChar{Char: 'x'})
	if ok {
		t.Fatalf("expected edit on given cell to be rejected")
	}
	if next.Letters["1,2"] != "C" {
		t.Fatalf("given letter must be untouched, got %q", next.Letters["1,2"])
	}
}

func TestTypeCharClearsChecks(t *testing.T) {
	st := testState(t)
	st.Checks["3,3"] = CheckOK
	st.Checks["1,0"] = CheckBad

	next, ok := Apply(st, TypeChar{Char: 'a'})
	if !ok {
		t.Fatalf("expected letter to apply")
	}
	for id, check := range next.Checks {
		if check != CheckNone {
			t.Fatalf("expected check cleared at %s, got %s", id, check)
		}
	}
}

func TestTypeCharNoAdvanceWhenDisabled(t *testing.T) {
	st := testState(t)
	st.Behavior.AdvanceOnType = false

	next, ok := Apply(st, TypeChar{Char: 'a'})
	if !ok {
		t.Fatalf("expected letter to apply")
	}
	if next.Focus.ActiveCell != "1,0" {
		t.Fatalf("expected cursor to stay put, got %s", next.Focus.ActiveCell)
	}
}

func TestBackspaceClearsNonEmptyAndStays(t *testing.T) {
	st := testState(t)
	st.Letters["1,0"] = "A"

	next, ok := Apply(st, Backspace{})
	if !ok {
		t.Fatalf("expected backspace to apply")
	}
	if next.Letters["1,0"] != "" || next.Focus.ActiveCell != "1,0" {
		t.Fatalf("expected clear in place, got letter=%q cell=%s", next.Letters["1,0"], next.Focus.ActiveCell)
	}
}

func TestBackspaceOnEmptyMovesBackAndClears(t *testing.T) {
	st := testState(t)
	st, _ = Apply(st, ClickCell{Cell: "1,1"})
	st.Letters["1,0"] = "A"

	next, ok := Apply(st, Backspace{})
	if !ok {
		t.Fatalf("expected backspace to apply")
	}
	if next.Focus.ActiveCell != "1,0" || next.Letters["1,0"] != "" {
		t.Fatalf("expected move back and clear, got cell=%s letter=%q", next.Focus.ActiveCell, next.Letters["1,0"])
	}
}

func TestBackspaceAtSlotStartStays(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, Backspace{})
	if !ok {
		t.Fatalf("backspace at slot start still counts as applied")
	}
	if next.Focus.ActiveCell != "1,0" {
		t.Fatalf("expected cursor to stay at slot start, got %s", next.Focus.ActiveCell)
	}
}

func TestBackspaceMovesOntoGivenWithoutClearing(t *testing.T) {
	st := testState(t)
	st, _ = Apply(st, ClickCell{Cell: "1,3"})

	next, ok := Apply(st, Backspace{})
	if !ok {
		t.Fatalf("expected backspace to apply")
	}
	if next.Focus.ActiveCell != "1,2" {
		t.Fatalf("expected move onto given predecessor, got %s", next.Focus.ActiveCell)
	}
	if next.Letters["1,2"] != "C" {
		t.Fatalf("given letter must survive backspace, got %q", next.Letters["1,2"])
	}
}

func TestBackspaceRejectsGivenCell(t *testing.T) {
	st := testState(t)
	st, _ = Apply(st, ClickCell{Cell: "1,2"})

	if _, ok := Apply(st, Backspace{}); ok {
		t.Fatalf("expected backspace on given cell to be rejected")
	}
}

func TestTabCyclesSlots(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, Tab{})
	if !ok {
		t.Fatalf("expected tab to apply")
	}
	if next.Focus.ActiveSlot != "h2" || next.Focus.ActiveCell != "3,0" || next.Focus.Orientation != OrientationAcross {
		t.Fatalf("unexpected focus after tab: %+v", next.Focus)
	}

	next, _ = Apply(next, Tab{})
	if next.Focus.ActiveSlot != "v1" || next.Focus.ActiveCell != "0,1" || next.Focus.Orientation != OrientationDown {
		t.Fatalf("expected down slot v1 from head, got %+v", next.Focus)
	}
}

func TestShiftTabWrapsToCombinedSlot(t *testing.T) {
	st := testState(t)

	next, ok := Apply(st, ShiftTab{})
	if !ok {
		t.Fatalf("expected shift-tab to apply")
	}
	if next.Focus.ActiveSlot != "hw" || next.Focus.ActiveCell != "1,1" {
		t.Fatalf("expected wrap to hw head, got %+v", next.Focus)
	}
	// A combined slot has no inherent direction; the orientation is kept.
	if next.Focus.Orientation != OrientationAcross {
		t.Fatalf("expected orientation preserved on combined slot, got %s", next.Focus.Orientation)
	}
}

func TestTabFromUnknownSlotStartsAtHead(t *testing.T) {
	st := testState(t)
	st.Focus.ActiveSlot = "bogus"

	next, ok := Apply(st, Tab{})
	if !ok {
		t.Fatalf("expected tab to apply")
	}
	if next.Focus.ActiveSlot != "h2" {
		t.Fatalf("expected step from order head, got %s", next.Focus.ActiveSlot)
	}
}

func TestResolveActiveSlotFallsBackToFirstAcross(t *testing.T) {
	st := testState(t)

	// A cell with no slot membership still resolves somewhere stable.
	got := resolveActiveSlot(st.Meta, "4,4", OrientationAcross, false)
	if got != "h1" {
		t.Fatalf("expected first across fallback h1, got %s", got)
	}
}
