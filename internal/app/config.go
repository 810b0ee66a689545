package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	widget "septago-crossword/widget"
	"septago-crossword/widget/logging"
)

// FileConfig is the widget's on-disk configuration.
type FileConfig struct {
	HostURL   string        `yaml:"host_url"`
	SlotOrder []string      `yaml:"slot_order"`
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects sinks and verbosity for the event router.
type LoggingConfig struct {
	Sinks       []string `yaml:"sinks"`
	MinSeverity string   `yaml:"min_severity"`
	JSONPath    string   `yaml:"json_path"`
}

// DefaultFileConfig returns the stock configuration used when no file exists.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		HostURL: "ws://localhost:8501/widget",
		Logging: LoggingConfig{
			Sinks:       []string{"console"},
			MinSeverity: "info",
		},
	}
}

// LoadFileConfig reads a yaml config file; a missing file yields defaults.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// WidgetConfig projects the file config onto the controller config.
func (c FileConfig) WidgetConfig() widget.Config {
	cfg := widget.DefaultConfig()
	if len(c.SlotOrder) > 0 {
		order := make([]widget.SlotID, 0, len(c.SlotOrder))
		for _, raw := range c.SlotOrder {
			order = append(order, widget.SlotID(raw))
		}
		cfg.SlotOrder = order
	}
	return cfg
}

// LoggingSeverity parses the configured minimum severity.
func (c LoggingConfig) LoggingSeverity() logging.Severity {
	switch c.MinSeverity {
	case "debug":
		return logging.SeverityDebug
	case "warn":
		return logging.SeverityWarn
	case "error":
		return logging.SeverityError
	default:
		return logging.SeverityInfo
	}
}
