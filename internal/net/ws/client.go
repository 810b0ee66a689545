package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"septago-crossword/widget/internal/net/proto"
	"septago-crossword/widget/internal/telemetry"
)

const (
	writeWait        = 10 * time.Second
	handshakeTimeout = 10 * time.Second
)

// Client is the widget's connection to the embedding host: snapshots in,
// events and lifecycle notifications out.
type Client struct {
	conn   *websocket.Conn
	logger telemetry.Logger
}

// Dial connects to the host and sends the one-shot readiness handshake.
func Dial(ctx context.Context, url string, logger telemetry.Logger) (*Client, error) {
	if logger == nil {
		logger = telemetry.LoggerFunc(nil)
	}
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	c := &Client{conn: conn, logger: logger}
	ready, err := proto.EncodeReady()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := c.write(ready); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) write(data []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Emit sends an outbound event frame. Errors are logged, never surfaced:
// the local repaint already happened and emission is fire-and-forget.
func (c *Client) Emit(ev proto.OutboundEvent) {
	data, err := proto.EncodeEvent(ev)
	if err != nil {
		c.logger.Printf("failed to marshal event %s: %v", ev.EventID, err)
		return
	}
	if err := c.write(data); err != nil {
		c.logger.Printf("failed to send event %s: %v", ev.EventID, err)
	}
}

// NotifyFrameSize reports the painted frame dimensions to the host. This
// is a pass-through lifecycle notification, not part of the sync protocol.
func (c *Client) NotifyFrameSize(width, height int) {
	data, err := proto.EncodeFrameSize(width, height)
	if err != nil {
		c.logger.Printf("failed to marshal frame size: %v", err)
		return
	}
	if err := c.write(data); err != nil {
		c.logger.Printf("failed to send frame size: %v", err)
	}
}

// ReadSnapshots decodes inbound frames onto the provided channel until the
// connection drops or the context is cancelled. Malformed frames are
// discarded with a log line; they never terminate the session.
func (c *Client) ReadSnapshots(ctx context.Context, out chan<- proto.Snapshot) error {
	defer close(out)
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}
		snap, err := proto.DecodeSnapshot(payload)
		if err != nil {
			c.logger.Printf("discarding malformed snapshot: %v", err)
			continue
		}
		select {
		case out <- snap:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close tears the connection down.
func (c *Client) Close() error {
	return c.conn.Close()
}
