package sync

import (
	"context"

	"septago-crossword/widget/logging"
)

const (
	// EventSnapshotAdopted is emitted when an inbound snapshot replaces
	// the local projection.
	EventSnapshotAdopted logging.EventType = "sync.snapshot_adopted"
	// EventSnapshotKept is emitted when a snapshot is held back because
	// the host acknowledgement lags the local high-water mark.
	EventSnapshotKept logging.EventType = "sync.snapshot_kept"
	// EventResync is emitted when a state-generation change discards all
	// pending local predictions.
	EventResync logging.EventType = "sync.resync"
	// EventSnapshotInvalid is emitted when a snapshot carries no usable grid.
	EventSnapshotInvalid logging.EventType = "sync.snapshot_invalid"
)

// SnapshotPayload captures the reconciliation inputs for one snapshot.
type SnapshotPayload struct {
	StateID   string `json:"stateId"`
	PuzzleID  string `json:"puzzleId,omitempty"`
	AckSeq    uint64 `json:"ackSeq"`
	HighWater uint64 `json:"highWater"`
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, severity logging.Severity, seq uint64, payload SnapshotPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Seq:      seq,
		Actor:    logging.EntityRef{ID: payload.StateID, Kind: logging.EntityKindHost},
		Severity: severity,
		Category: logging.CategorySync,
		Payload:  payload,
	})
}

// SnapshotAdopted publishes a debug event when a snapshot is adopted.
func SnapshotAdopted(ctx context.Context, pub logging.Publisher, seq uint64, payload SnapshotPayload) {
	publish(ctx, pub, EventSnapshotAdopted, logging.SeverityDebug, seq, payload)
}

// SnapshotKept publishes a debug event when the local projection is retained.
func SnapshotKept(ctx context.Context, pub logging.Publisher, seq uint64, payload SnapshotPayload) {
	publish(ctx, pub, EventSnapshotKept, logging.SeverityDebug, seq, payload)
}

// Resync publishes an info event when a generation change forces a rebuild.
func Resync(ctx context.Context, pub logging.Publisher, seq uint64, payload SnapshotPayload) {
	publish(ctx, pub, EventResync, logging.SeverityInfo, seq, payload)
}

// SnapshotInvalid publishes a warning when a snapshot has no usable grid.
func SnapshotInvalid(ctx context.Context, pub logging.Publisher, seq uint64, payload SnapshotPayload) {
	publish(ctx, pub, EventSnapshotInvalid, logging.SeverityWarn, seq, payload)
}
