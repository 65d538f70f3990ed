package config

import "time"

// Config represents the main application configuration.
type Config struct {
	Loader  LoaderConfig  `yaml:"loader"`
	Content ContentConfig `yaml:"content"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`

	// Runtime version information
	Version string `yaml:"-"`
}

// LoaderConfig holds loading screen timing.
type LoaderConfig struct {
	Preset       string        `yaml:"preset,omitempty"` // Timing preset: reference, snappy, calm
	TickInterval time.Duration `yaml:"tick_interval"`    // Time between progress steps (default: 300ms)
	Step         int           `yaml:"step"`             // Percent per step (default: 10)
	GraceDelay   time.Duration `yaml:"grace_delay"`      // Pause at 100% before showing the portfolio (default: 1s)
	MaxWait      time.Duration `yaml:"max_wait"`         // Force completion after this long, 0 waits forever
	Join         string        `yaml:"join"`             // "immediate" (default) or "tick"
}

// ContentConfig holds portfolio content settings.
type ContentConfig struct {
	// Path to a portfolio YAML file or a content directory.
	// Empty uses the built-in portfolio.
	Path       string `yaml:"path"`
	Watch      bool   `yaml:"watch"`       // Reload when content changes on disk
	DebounceMs int    `yaml:"debounce_ms"` // Debounce for reloads (default: 300)
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Theme           string        `yaml:"theme"`            // Theme name: dark, macos, mono
	MouseMode       string        `yaml:"mouse_mode"`       // "enabled" (default) or "disabled"
	Animations      bool          `yaml:"animations"`       // Hero scene and card reveals
	RevealThreshold float64       `yaml:"reveal_threshold"` // Fraction of a card in view before it is revealed
	RevealStagger   time.Duration `yaml:"reveal_stagger"`   // Delay added per card index
	CodeStyle       string        `yaml:"code_style"`       // chroma style for snippets
	ShowHelp        bool          `yaml:"show_help"`        // Show the key help bar
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // Logging level: debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Loader: LoaderConfig{
			TickInterval: DefaultTickInterval,
			Step:         DefaultStep,
			GraceDelay:   DefaultGraceDelay,
			MaxWait:      DefaultMaxWait,
			Join:         DefaultJoin,
		},
		Content: ContentConfig{
			DebounceMs: DefaultDebounceMs,
		},
		UI: UIConfig{
			Theme:           DefaultTheme,
			MouseMode:       "enabled",
			Animations:      true,
			RevealThreshold: DefaultRevealThreshold,
			RevealStagger:   DefaultRevealStagger,
			CodeStyle:       DefaultCodeStyle,
			ShowHelp:        true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// MouseEnabled reports whether mouse wheel scrolling should be enabled.
func (u UIConfig) MouseEnabled() bool {
	return u.MouseMode != "disabled"
}
