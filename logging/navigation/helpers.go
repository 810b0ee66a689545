package navigation

import (
	"context"

	"septago-crossword/widget/logging"
)

const (
	// EventActionApplied is emitted when the reducer accepts a user action.
	EventActionApplied logging.EventType = "navigation.action_applied"
	// EventActionRejected is emitted when an action is treated as a no-op.
	EventActionRejected logging.EventType = "navigation.action_rejected"
)

// ActionPayload captures the focus outcome of one applied action.
type ActionPayload struct {
	Action      string `json:"action"`
	ActiveCell  string `json:"activeCell"`
	ActiveSlot  string `json:"activeSlot"`
	Orientation string `json:"orientation"`
}

// ActionApplied publishes a debug event for an accepted action.
func ActionApplied(ctx context.Context, pub logging.Publisher, seq uint64, eventID string, payload ActionPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventActionApplied,
		Seq:      seq,
		Actor:    logging.EntityRef{ID: payload.ActiveCell, Kind: logging.EntityKindCell},
		Severity: logging.SeverityDebug,
		Category: logging.CategoryNavigation,
		Payload:  payload,
		EventID:  eventID,
	})
}

// ActionRejected publishes a debug event for a discarded action.
func ActionRejected(ctx context.Context, pub logging.Publisher, seq uint64, action string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventActionRejected,
		Seq:      seq,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryNavigation,
		Payload:  ActionPayload{Action: action},
	})
}
