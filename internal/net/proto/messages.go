package proto

import (
	"encoding/json"
	"fmt"
)

// Schema identifiers for the documents exchanged with the embedding host.
const (
	SchemaSnapshot = "crosswordgridprops.v1"
	SchemaEvent    = "crosswordgridevent.v1"
)

// Outbound event type identifiers.
const (
	TypeClickCell         = "click-cell"
	TypeToggleOrientation = "toggle-orientation"
	TypeArrow             = "arrow"
	TypeTypeChar          = "type-char"
	TypeBackspace         = "backspace"
	TypeTab               = "tab"
	TypeShiftTab          = "shift-tab"
)

// Host lifecycle message type identifiers.
const (
	TypeWidgetReady = "widgetReady"
	TypeFrameSize   = "frameSize"
)

// Snapshot is the authoritative state document pushed by the host. Every
// section is optional on the wire; consumers must tolerate absent fields.
type Snapshot struct {
	SchemaVersion string           `json:"schema_version"`
	Grid          *GridSection     `json:"grid,omitempty"`
	Focus         *FocusSection    `json:"focus,omitempty"`
	Behavior      *BehaviorSection `json:"behavior,omitempty"`
	Sync          *SyncSection     `json:"sync,omitempty"`
}

// GridSection carries the cell grid plus the slot geometry the local
// reducer needs for navigation.
type GridSection struct {
	Size        int                 `json:"size"`
	Cells       []CellPayload       `json:"cells"`
	Styling     Styling             `json:"styling"`
	Slots       map[string][]string `json:"slots"`
	CellToSlots map[string][]string `json:"cell_to_slots"`
	SlotOrder   []string            `json:"slot_order,omitempty"`
}

// CellPayload describes one grid cell.
type CellPayload struct {
	ID         string    `json:"id"`
	R          int       `json:"r"`
	C          int       `json:"c"`
	IsBlack    bool      `json:"is_black"`
	IsPlayable bool      `json:"is_playable"`
	Letter     string    `json:"letter"`
	IsGiven    bool      `json:"is_given"`
	Highlight  Highlight `json:"highlight"`
}

// Highlight carries the host-computed paint hints for a cell.
type Highlight struct {
	ActiveCell bool   `json:"active_cell"`
	ActiveSlot bool   `json:"active_slot"`
	CheckState string `json:"check_state"`
}

// Styling carries the host theming parameters. The controller passes these
// through to the presentation layer untouched.
type Styling struct {
	OuterBorderPx       int    `json:"outer_border_px"`
	InnerBorderPx       int    `json:"inner_border_px"`
	OuterBorderColor    string `json:"outer_border_color"`
	InnerBorderColor    string `json:"inner_border_color"`
	BlackCellColor      string `json:"black_cell_color"`
	WhiteCellColor      string `json:"white_cell_color"`
	ActiveCellOutlinePx int    `json:"active_cell_outline_px"`
	ActiveSlotFillColor string `json:"active_slot_fill_color"`
	GivenCellFillColor  string `json:"given_cell_fill_color"`
	OKFillColor         string `json:"ok_fill_color"`
	BadFillColor        string `json:"bad_fill_color"`
	BadTextColor        string `json:"bad_text_color"`
}

// FocusSection carries the host's view of the focus state.
type FocusSection struct {
	ActiveCellID string `json:"active_cell_id"`
	ActiveSlot   string `json:"active_slot"`
	Orientation  string `json:"orientation"`
}

// BehaviorSection carries interaction flags negotiated with the host.
type BehaviorSection struct {
	CaptureKeyboard     bool `json:"capture_keyboard"`
	AllowEditGivenCells bool `json:"allow_edit_given_cells"`
	AdvanceOnType       bool `json:"advance_on_type"`
	SkipBlackCells      bool `json:"skip_black_cells"`
}

// SyncSection carries the reconciliation metadata: the opaque state
// generation id and the highest client sequence the host has processed.
type SyncSection struct {
	LastClientSeq uint64 `json:"last_client_seq"`
	PuzzleID      string `json:"puzzle_id"`
	StateID       string `json:"state_id"`
}

// DecodeSnapshot converts a raw host frame into a structured snapshot.
// Absent sections are fine; an unrecognised schema version is not.
func DecodeSnapshot(payload []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return snap, err
	}
	if snap.SchemaVersion != "" && snap.SchemaVersion != SchemaSnapshot {
		return snap, fmt.Errorf("unsupported snapshot schema %q", snap.SchemaVersion)
	}
	return snap, nil
}

// OutboundEvent is the envelope the widget sends to the host for every
// locally applied action.
type OutboundEvent struct {
	SchemaVersion string       `json:"schema_version"`
	EventID       string       `json:"event_id"`
	TimestampMS   int64        `json:"timestamp_ms"`
	Type          string       `json:"type"`
	Payload       EventPayload `json:"payload"`
}

// EventPayload carries the action fields plus the sync metadata the host
// uses to acknowledge and order client edits.
type EventPayload struct {
	CellID    string `json:"cell_id,omitempty"`
	Dir       string `json:"dir,omitempty"`
	Char      string `json:"char,omitempty"`
	ClientSeq uint64 `json:"client_seq"`
	StateID   string `json:"state_id"`
}

// EncodeEvent renders an outbound event frame, stamping the schema version.
func EncodeEvent(ev OutboundEvent) ([]byte, error) {
	ev.SchemaVersion = SchemaEvent
	return json.Marshal(ev)
}

// ReadyMessage is the one-shot readiness handshake sent at startup.
type ReadyMessage struct {
	Type          string `json:"type"`
	SchemaVersion string `json:"schema_version"`
}

// EncodeReady renders the readiness handshake frame.
func EncodeReady() ([]byte, error) {
	return json.Marshal(ReadyMessage{Type: TypeWidgetReady, SchemaVersion: SchemaEvent})
}

// FrameSizeMessage notifies the host of the painted frame dimensions.
type FrameSizeMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// EncodeFrameSize renders a frame-size notification.
func EncodeFrameSize(width, height int) ([]byte, error) {
	return json.Marshal(FrameSizeMessage{Type: TypeFrameSize, Width: width, Height: height})
}
