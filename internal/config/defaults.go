package config

import "time"

// Default configuration values.
const (
	// Loading screen
	DefaultTickInterval = 300 * time.Millisecond
	DefaultStep         = 10
	DefaultGraceDelay   = 1 * time.Second
	DefaultMaxWait      = 10 * time.Second
	DefaultJoin         = "immediate"

	// Content reloads
	DefaultDebounceMs = 300

	// Portfolio view
	DefaultTheme           = "dark"
	DefaultRevealThreshold = 0.3
	DefaultRevealStagger   = 200 * time.Millisecond
	DefaultCodeStyle       = "monokai"
	DefaultScrolledOffset  = 3
	DefaultNarrowWidth     = 60
	DefaultSceneInterval   = 100 * time.Millisecond
	DefaultToastDuration   = 3 * time.Second
)
