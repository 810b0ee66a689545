package widget

// Config carries the declared defaults the controller falls back to when a
// snapshot omits optional fields. Hosts construct one via DefaultConfig and
// override selectively.
type Config struct {
	// SlotOrder is the cycling order used by Tab/ShiftTab when the
	// snapshot does not provide one.
	SlotOrder []SlotID

	// Interaction flags applied when the snapshot omits its behavior
	// section.
	CaptureKeyboard     bool
	AllowEditGivenCells bool
	AdvanceOnType       bool
	SkipBlackCells      bool
}

// DefaultConfig returns the stock configuration: the canonical five-slot
// cycling order (two across, two down, one combined) and the standard
// interaction flags.
func DefaultConfig() Config {
	return Config{
		SlotOrder:       []SlotID{"h1", "h2", "v1", "v2", "hw"},
		CaptureKeyboard: true,
		AdvanceOnType:   true,
		SkipBlackCells:  true,
	}
}

// normalized fills in zero-value fields so the builder never has to guess.
func (c Config) normalized() Config {
	if len(c.SlotOrder) == 0 {
		c.SlotOrder = DefaultConfig().SlotOrder
	}
	return c
}

// behaviorDefaults projects the config flags into a behavior block for
// snapshots that omit one.
func (c Config) behaviorDefaults() Behavior {
	return Behavior{
		CaptureKeyboard:     c.CaptureKeyboard,
		AllowEditGivenCells: c.AllowEditGivenCells,
		AdvanceOnType:       c.AdvanceOnType,
		SkipBlackCells:      c.SkipBlackCells,
	}
}
