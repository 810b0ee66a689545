package proto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshotToleratesAbsentSections(t *testing.T) {
	snap, err := DecodeSnapshot([]byte(`{"schema_version":"crosswordgridprops.v1"}`))
	require.NoError(t, err)
	require.Nil(t, snap.Grid)
	require.Nil(t, snap.Focus)
	require.Nil(t, snap.Sync)
}

func TestDecodeSnapshotAcceptsEmptySchemaVersion(t *testing.T) {
	snap, err := DecodeSnapshot([]byte(`{"grid":{"size":5,"cells":[]}}`))
	require.NoError(t, err)
	require.NotNil(t, snap.Grid)
	require.Equal(t, 5, snap.Grid.Size)
}

func TestDecodeSnapshotRejectsForeignSchema(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"schema_version":"somethingelse.v2"}`))
	require.Error(t, err)
}

func TestDecodeSnapshotRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"grid":`))
	require.Error(t, err)
}

func TestDecodeSnapshotFullDocument(t *testing.T) {
	raw := `{
		"schema_version": "crosswordgridprops.v1",
		"grid": {
			"size": 5,
			"cells": [{"id": "1,1", "r": 1, "c": 1, "is_playable": true, "letter": "A", "highlight": {"check_state": "ok"}}],
			"slots": {"h1": ["1,0", "1,1"]},
			"cell_to_slots": {"1,1": ["h1"]},
			"slot_order": ["h1"]
		},
		"focus": {"active_cell_id": "1,1", "active_slot": "h1", "orientation": "H"},
		"behavior": {"capture_keyboard": true, "advance_on_type": true},
		"sync": {"last_client_seq": 3, "puzzle_id": "p1", "state_id": "g1"}
	}`
	snap, err := DecodeSnapshot([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "1,1", snap.Grid.Cells[0].ID)
	require.Equal(t, "ok", snap.Grid.Cells[0].Highlight.CheckState)
	require.Equal(t, []string{"1,0", "1,1"}, snap.Grid.Slots["h1"])
	require.Equal(t, "H", snap.Focus.Orientation)
	require.True(t, snap.Behavior.AdvanceOnType)
	require.Equal(t, uint64(3), snap.Sync.LastClientSeq)
}

func TestEncodeEventStampsSchema(t *testing.T) {
	data, err := EncodeEvent(OutboundEvent{
		EventID:     "id-1",
		TimestampMS: 42,
		Type:        TypeTypeChar,
		Payload:     EventPayload{Char: "Q", ClientSeq: 9, StateID: "g1"},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, SchemaEvent, decoded["schema_version"])
	require.Equal(t, TypeTypeChar, decoded["type"])

	payload, ok := decoded["payload"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Q", payload["char"])
	require.Equal(t, float64(9), payload["client_seq"])
	require.Equal(t, "g1", payload["state_id"])
	// Action fields not relevant to the event stay off the wire.
	require.NotContains(t, payload, "cell_id")
	require.NotContains(t, payload, "dir")
}

func TestEncodeReady(t *testing.T) {
	data, err := EncodeReady()
	require.NoError(t, err)

	var msg ReadyMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, TypeWidgetReady, msg.Type)
	require.Equal(t, SchemaEvent, msg.SchemaVersion)
}

func TestEncodeFrameSize(t *testing.T) {
	data, err := EncodeFrameSize(20, 6)
	require.NoError(t, err)

	var msg FrameSizeMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	require.Equal(t, TypeFrameSize, msg.Type)
	require.Equal(t, 20, msg.Width)
	require.Equal(t, 6, msg.Height)
}
