package widget

import (
	"testing"
	"time"

	"septago-crossword/widget/internal/net/proto"
)

func fixedEmitter() *Emitter {
	return &Emitter{
		newID: func() string { return "id-1" },
		now:   func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func TestEmitterStampsEnvelope(t *testing.T) {
	ev := fixedEmitter().Event(ToggleOrientation{}, 7, "gen-1")

	if ev.SchemaVersion != proto.SchemaEvent {
		t.Fatalf("unexpected schema version %q", ev.SchemaVersion)
	}
	if ev.EventID != "id-1" || ev.TimestampMS != 1700000000000 {
		t.Fatalf("unexpected envelope identity: %+v", ev)
	}
	if ev.Type != proto.TypeToggleOrientation {
		t.Fatalf("unexpected event type %q", ev.Type)
	}
	if ev.Payload.ClientSeq != 7 || ev.Payload.StateID != "gen-1" {
		t.Fatalf("unexpected sync payload: %+v", ev.Payload)
	}
}

func TestEmitterActionPayloads(t *testing.T) {
	e := fixedEmitter()

	cases := []struct {
		name    string
		action  Action
		check   func(proto.EventPayload) bool
		summary string
	}{
		{
			name:    "click carries cell id",
			action:  ClickCell{Cell: "1,3"},
			check:   func(p proto.EventPayload) bool { return p.CellID == "1,3" && p.Dir == "" && p.Char == "" },
			summary: "cell_id=1,3",
		},
		{
			name:    "arrow carries direction",
			action:  Arrow{Direction: DirectionLeft},
			check:   func(p proto.EventPayload) bool { return p.Dir == "left" && p.CellID == "" },
			summary: "dir=left",
		},
		{
			name:    "type carries character",
			action:  TypeChar{Char: 'Q'},
			check:   func(p proto.EventPayload) bool { return p.Char == "Q" },
			summary: "char=Q",
		},
		{
			name:    "backspace carries nothing extra",
			action:  Backspace{},
			check:   func(p proto.EventPayload) bool { return p.CellID == "" && p.Dir == "" && p.Char == "" },
			summary: "empty payload",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := e.Event(tc.action, 1, "gen-1")
			if !tc.check(ev.Payload) {
				t.Fatalf("expected %s, got %+v", tc.summary, ev.Payload)
			}
		})
	}
}
