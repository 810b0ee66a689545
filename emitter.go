package widget

import (
	"time"

	"github.com/google/uuid"

	"septago-crossword/widget/internal/net/proto"
)

// EventSink receives outbound events bound for the host. Implementations
// must not block: the repaint has already happened by the time Emit is
// called and the host round trip is strictly fire-and-forget.
type EventSink interface {
	Emit(proto.OutboundEvent)
}

// EventSinkFunc adapts a function into an EventSink.
type EventSinkFunc func(proto.OutboundEvent)

func (f EventSinkFunc) Emit(ev proto.OutboundEvent) {
	if f == nil {
		return
	}
	f(ev)
}

// NopSink discards events.
func NopSink() EventSink {
	return EventSinkFunc(nil)
}

// Emitter packages applied actions into outbound host events, stamping
// each with a unique id, a timestamp, and the sync metadata.
type Emitter struct {
	newID func() string
	now   func() time.Time
}

// NewEmitter constructs an emitter backed by uuid ids and the wall clock.
func NewEmitter() *Emitter {
	return &Emitter{newID: uuid.NewString, now: time.Now}
}

// Event builds the outbound envelope for an applied action.
func (e *Emitter) Event(action Action, clientSeq uint64, stateID string) proto.OutboundEvent {
	ev := proto.OutboundEvent{
		SchemaVersion: proto.SchemaEvent,
		EventID:       e.newID(),
		TimestampMS:   e.now().UnixMilli(),
		Type:          action.EventType(),
		Payload: proto.EventPayload{
			ClientSeq: clientSeq,
			StateID:   stateID,
		},
	}

	switch a := action.(type) {
	case ClickCell:
		ev.Payload.CellID = string(a.Cell)
	case Arrow:
		ev.Payload.Dir = string(a.Direction)
	case TypeChar:
		ev.Payload.Char = string(a.Char)
	}
	return ev
}
