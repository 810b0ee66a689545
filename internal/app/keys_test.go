package app

import (
	"os"
	"testing"

	widget "septago-crossword/widget"
	"septago-crossword/widget/logging"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		input  string
		want   widget.Action
		wantOK bool
	}{
		{"a", widget.TypeChar{Char: 'a'}, true},
		{"Q", widget.TypeChar{Char: 'Q'}, true},
		{"left", widget.Arrow{Direction: widget.DirectionLeft}, true},
		{"DOWN", widget.Arrow{Direction: widget.DirectionDown}, true},
		{"tab", widget.Tab{}, true},
		{"shift-tab", widget.ShiftTab{}, true},
		{"backtab", widget.ShiftTab{}, true},
		{"backspace", widget.Backspace{}, true},
		{"space", widget.ToggleOrientation{}, true},
		{"toggle", widget.ToggleOrientation{}, true},
		{"click 1,3", widget.ClickCell{Cell: "1,3"}, true},
		{"click  2,0 ", widget.ClickCell{Cell: "2,0"}, true},
		{"click nowhere", nil, false},
		{"", nil, false},
		{"   ", nil, false},
		{"unknown-command", nil, false},
	}
	for _, tc := range cases {
		got, ok := ParseKey(tc.input)
		if ok != tc.wantOK {
			t.Fatalf("ParseKey(%q) ok=%v, expected %v", tc.input, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseKey(%q) = %#v, expected %#v", tc.input, got, tc.want)
		}
	}
}

func TestLoadFileConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadFileConfig(t.TempDir() + "/absent.yaml")
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if cfg.HostURL == "" || len(cfg.Logging.Sinks) == 0 {
		t.Fatalf("expected stock defaults, got %+v", cfg)
	}
}

func TestLoadFileConfigParsesYAML(t *testing.T) {
	path := t.TempDir() + "/widget.yaml"
	raw := "host_url: ws://example:9000/widget\nslot_order: [h1, hw]\nlogging:\n  sinks: [json]\n  min_severity: warn\n  json_path: /tmp/widget.log\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HostURL != "ws://example:9000/widget" {
		t.Fatalf("unexpected host url %q", cfg.HostURL)
	}
	if len(cfg.SlotOrder) != 2 || cfg.SlotOrder[1] != "hw" {
		t.Fatalf("unexpected slot order %v", cfg.SlotOrder)
	}
	if cfg.Logging.MinSeverity != "warn" || cfg.Logging.JSONPath != "/tmp/widget.log" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if got := cfg.Logging.LoggingSeverity(); got != logging.SeverityWarn {
		t.Fatalf("unexpected severity %v", got)
	}
}

func TestFileConfigWidgetProjection(t *testing.T) {
	cfg := DefaultFileConfig()
	cfg.SlotOrder = []string{"v1", "h1"}

	projected := cfg.WidgetConfig()
	if len(projected.SlotOrder) != 2 || projected.SlotOrder[0] != "v1" {
		t.Fatalf("expected configured slot order, got %v", projected.SlotOrder)
	}
	if !projected.AdvanceOnType {
		t.Fatalf("behavior defaults must survive projection")
	}
}
