package loader

import (
	"errors"
	"fmt"
	"time"
)

// Reference timing of the loading sequence.
const (
	DefaultInterval   = 300 * time.Millisecond
	DefaultStep       = 10
	DefaultMax        = 100
	DefaultGraceDelay = 1000 * time.Millisecond
)

// JoinMode controls when the two readiness signals are joined.
type JoinMode string

const (
	// JoinImmediate completes on whichever readiness signal arrives last.
	JoinImmediate JoinMode = "immediate"
	// JoinOnTick only evaluates completion inside a timer tick.
	JoinOnTick JoinMode = "tick"
)

// ParseJoinMode parses a join mode name. Empty selects JoinImmediate.
func ParseJoinMode(s string) (JoinMode, error) {
	switch JoinMode(s) {
	case "", JoinImmediate:
		return JoinImmediate, nil
	case JoinOnTick:
		return JoinOnTick, nil
	default:
		return "", fmt.Errorf("%w: unknown join mode %q", ErrInvalidOptions, s)
	}
}

var (
	ErrInvalidOptions = errors.New("invalid loader options")
	ErrAlreadyStarted = errors.New("loader already started")
	ErrCancelled      = errors.New("loader cancelled")
)

// Options configures a loading sequence.
type Options struct {
	Interval   time.Duration // time between ticks
	Step       int           // percent added per tick
	Max        int           // percent at which progress is full
	GraceDelay time.Duration // pause between both-ready and onComplete
	MaxWait    time.Duration // 0 waits forever
	Join       JoinMode
}

// DefaultOptions returns the reference sequence with immediate join and no max wait.
func DefaultOptions() Options {
	return Options{
		Interval:   DefaultInterval,
		Step:       DefaultStep,
		Max:        DefaultMax,
		GraceDelay: DefaultGraceDelay,
		Join:       JoinImmediate,
	}
}

// Validate checks that the options describe a sequence that can finish.
func (o Options) Validate() error {
	if o.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %s", ErrInvalidOptions, o.Interval)
	}
	if o.Max <= 0 || o.Max > 100 {
		return fmt.Errorf("%w: max must be in (0, 100], got %d", ErrInvalidOptions, o.Max)
	}
	if o.Step <= 0 || o.Step > o.Max {
		return fmt.Errorf("%w: step must be in (0, %d], got %d", ErrInvalidOptions, o.Max, o.Step)
	}
	if o.GraceDelay < 0 {
		return fmt.Errorf("%w: grace delay must not be negative", ErrInvalidOptions)
	}
	if o.MaxWait < 0 {
		return fmt.Errorf("%w: max wait must not be negative", ErrInvalidOptions)
	}
	if _, err := ParseJoinMode(string(o.Join)); err != nil {
		return err
	}
	return nil
}

// TicksToFull returns how many ticks it takes to reach Max.
func (o Options) TicksToFull() int {
	return (o.Max + o.Step - 1) / o.Step
}

func (o Options) withDefaults() Options {
	if o.Join == "" {
		o.Join = JoinImmediate
	}
	if o.Max == 0 {
		o.Max = DefaultMax
	}
	return o
}
