package network

import (
	"context"

	"septago-crossword/widget/logging"
)

const (
	// EventConnected is emitted when the host connection is established.
	EventConnected logging.EventType = "network.connected"
	// EventDisconnected is emitted when the host connection drops.
	EventDisconnected logging.EventType = "network.disconnected"
	// EventAckAdvanced is emitted when a snapshot acknowledges a newer
	// client sequence than previously recorded.
	EventAckAdvanced logging.EventType = "network.ack_advanced"
)

// ConnectionPayload captures host connection details.
type ConnectionPayload struct {
	URL    string `json:"url"`
	Reason string `json:"reason,omitempty"`
}

// AckPayload captures acknowledgement progression details.
type AckPayload struct {
	Previous uint64 `json:"previous"`
	Ack      uint64 `json:"ack"`
}

// Connected publishes an info event when the host connection comes up.
func Connected(ctx context.Context, pub logging.Publisher, url string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventConnected,
		Actor:    logging.EntityRef{Kind: logging.EntityKindHost},
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  ConnectionPayload{URL: url},
	})
}

// Disconnected publishes a warning event when the host connection drops.
func Disconnected(ctx context.Context, pub logging.Publisher, url, reason string) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDisconnected,
		Actor:    logging.EntityRef{Kind: logging.EntityKindHost},
		Severity: logging.SeverityWarn,
		Category: logging.CategorySystem,
		Payload:  ConnectionPayload{URL: url, Reason: reason},
	})
}

// AckAdvanced publishes a debug event when the host acknowledgement advances.
func AckAdvanced(ctx context.Context, pub logging.Publisher, seq uint64, payload AckPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventAckAdvanced,
		Seq:      seq,
		Actor:    logging.EntityRef{Kind: logging.EntityKindHost},
		Severity: logging.SeverityDebug,
		Category: logging.CategorySystem,
		Payload:  payload,
	})
}
