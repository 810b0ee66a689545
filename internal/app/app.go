package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	widget "septago-crossword/widget"
	"septago-crossword/widget/internal/net/proto"
	"septago-crossword/widget/internal/net/ws"
	"septago-crossword/widget/internal/render"
	"septago-crossword/widget/internal/telemetry"
	"septago-crossword/widget/logging"
	lognet "septago-crossword/widget/logging/network"
	loggingSinks "septago-crossword/widget/logging/sinks"
)

// Config carries the process-level wiring for Run.
type Config struct {
	ConfigPath string
	HostURL    string
	Logger     telemetry.Logger
	Input      io.Reader
	Output     io.Writer
}

// Run wires the controller to a live host connection and drives it from
// keyboard input until the context is cancelled or the connection drops.
// The session itself is single-threaded: this loop feeds it exactly one
// stimulus at a time.
func Run(ctx context.Context, cfg Config) error {
	telemetryLogger := cfg.Logger
	if telemetryLogger == nil {
		telemetryLogger = telemetry.WrapLogger(log.Default())
	}
	input := cfg.Input
	if input == nil {
		input = os.Stdin
	}
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	fileCfg, err := LoadFileConfig(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	hostURL := fileCfg.HostURL
	if cfg.HostURL != "" {
		hostURL = cfg.HostURL
	}
	if raw := os.Getenv("WIDGET_HOST_URL"); raw != "" {
		hostURL = raw
	}

	router, err := buildRouter(fileCfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(context.Background()); cerr != nil {
			telemetryLogger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	client, err := ws.Dial(ctx, hostURL, telemetryLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to host %s: %w", hostURL, err)
	}
	defer client.Close()
	lognet.Connected(ctx, router, hostURL)
	defer func() {
		reason := ""
		if err != nil {
			reason = err.Error()
		}
		lognet.Disconnected(context.Background(), router, hostURL, reason)
	}()

	terminal := render.NewTerminal(output)
	presenter := &framePresenter{terminal: terminal, client: client}
	session := widget.NewSession(fileCfg.WidgetConfig(), presenter, client, router)

	err = runLoop(ctx, session, client, input, telemetryLogger)
	return err
}

// runLoop serializes all stimuli onto the session: inbound snapshots and
// parsed keyboard actions arrive on channels and are dispatched one at a
// time. It returns when the context is cancelled, input ends, or the host
// connection drops.
func runLoop(ctx context.Context, session *widget.Session, client *ws.Client, input io.Reader, logger telemetry.Logger) error {
	snapshots := make(chan proto.Snapshot, 4)
	readErr := make(chan error, 1)
	go func() {
		readErr <- client.ReadSnapshots(ctx, snapshots)
	}()

	actions := make(chan widget.Action, 4)
	go func() {
		defer close(actions)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			action, ok := ParseKey(scanner.Text())
			if !ok {
				continue
			}
			select {
			case actions <- action:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("host connection lost: %w", err)
			}
			return err
		case snap, ok := <-snapshots:
			if !ok {
				snapshots = nil
				continue
			}
			session.HandleSnapshot(ctx, snap)
		case action, ok := <-actions:
			if !ok {
				logger.Printf("input closed, shutting down")
				return nil
			}
			session.HandleAction(ctx, action)
		}
	}
}

func buildRouter(cfg LoggingConfig) (*logging.Router, error) {
	logCfg := logging.DefaultConfig()
	logCfg.EnabledSinks = cfg.Sinks
	logCfg.MinimumSeverity = cfg.LoggingSeverity()
	if cfg.JSONPath != "" {
		logCfg.JSON.FilePath = cfg.JSONPath
	}

	var named []logging.NamedSink
	if logCfg.HasSink("console") {
		named = append(named, logging.NamedSink{
			Name: "console",
			Sink: loggingSinks.NewConsoleSink(os.Stderr, logCfg.Console),
		})
	}
	if logCfg.HasSink("json") && logCfg.JSON.FilePath != "" {
		file, err := os.OpenFile(logCfg.JSON.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		named = append(named, logging.NamedSink{
			Name: "json",
			Sink: loggingSinks.NewJSON(file, logCfg.JSON.FlushInterval),
		})
	}

	return logging.NewRouter(logging.SystemClock{}, logCfg, named)
}

// framePresenter repaints the terminal and then reports the painted frame
// dimensions to the host, so the embedding surface can resize with us.
type framePresenter struct {
	terminal *render.Terminal
	client   *ws.Client
}

func (p *framePresenter) Repaint(st widget.LocalState) {
	p.terminal.Repaint(st)
	p.client.NotifyFrameSize(p.terminal.FrameSize())
}

func (p *framePresenter) Clear() {
	p.terminal.Clear()
	p.client.NotifyFrameSize(p.terminal.FrameSize())
}
