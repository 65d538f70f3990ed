package config

import (
	"sort"
	"time"
)

// LoaderPreset defines named loading screen timing.
type LoaderPreset struct {
	TickInterval time.Duration
	Step         int
	GraceDelay   time.Duration
}

// LoaderPresets contains predefined loading screen timings.
var LoaderPresets = map[string]LoaderPreset{
	"reference": {
		TickInterval: DefaultTickInterval,
		Step:         DefaultStep,
		GraceDelay:   DefaultGraceDelay,
	},
	"snappy": {
		TickInterval: 80 * time.Millisecond,
		Step:         20,
		GraceDelay:   250 * time.Millisecond,
	},
	"calm": {
		TickInterval: 500 * time.Millisecond,
		Step:         5,
		GraceDelay:   1500 * time.Millisecond,
	},
}

// ApplyPreset applies a timing preset to the LoaderConfig.
// Returns true if preset was applied successfully, false if preset not found.
func (l *LoaderConfig) ApplyPreset(preset string) bool {
	p, ok := LoaderPresets[preset]
	if !ok {
		return false
	}

	l.TickInterval = p.TickInterval
	l.Step = p.Step
	l.GraceDelay = p.GraceDelay
	return true
}

// IsValidPreset checks if a preset name is valid.
func IsValidPreset(preset string) bool {
	_, ok := LoaderPresets[preset]
	return ok
}

// ListPresets returns all available preset names, sorted.
func ListPresets() []string {
	presets := make([]string, 0, len(LoaderPresets))
	for name := range LoaderPresets {
		presets = append(presets, name)
	}
	sort.Strings(presets)
	return presets
}
