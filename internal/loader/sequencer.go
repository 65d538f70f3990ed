// Package loader implements the loading sequence that gates the portfolio
// behind a progress indicator until the content is ready.
//
// A Sequencer is a plain state machine with no timers of its own. The
// owner delivers ticks, the asset-ready signal and the grace/expiry
// deadlines one at a time; the returned Transition tells the owner which
// timer to stop or schedule. Runner is such an owner built on goroutines,
// the Bubble Tea loader view in internal/ui is another.
package loader

import "time"

// State is the lifecycle position of a Sequencer.
type State int

const (
	StateLoading State = iota
	StateReadyToFinish
	StateDone
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReadyToFinish:
		return "ready_to_finish"
	case StateDone:
		return "done"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled
}

// Transition tells the driver what to do after an event.
type Transition int

const (
	// TransitionNone means keep doing what you are doing.
	TransitionNone Transition = iota
	// TransitionIdle means progress is full; stop ticking and wait for the asset.
	TransitionIdle
	// TransitionFinish means stop ticking and call Finish after the grace delay.
	TransitionFinish
)

func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionIdle:
		return "idle"
	case TransitionFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Degraded outcome reasons.
const (
	ReasonAssetNotReady      = "asset not ready"
	ReasonProgressIncomplete = "progress incomplete"
)

// ProgressState is the observable state of a sequence.
type ProgressState struct {
	Percent     int
	AssetReady  bool
	TimerActive bool
}

// Outcome describes how a sequence completed.
type Outcome struct {
	Ticks    int
	Percent  int
	Degraded bool
	Reason   string
	Elapsed  time.Duration
}

// Sequencer joins the progress timer and the asset-ready signal.
// It is not safe for concurrent use; its owner serializes events.
type Sequencer struct {
	opts       Options
	onComplete func()

	state    State
	progress ProgressState
	ticks    int
	degraded bool
	reason   string

	now      func() time.Time
	started  time.Time
	finished time.Time
}

// NewSequencer returns a sequencer in StateLoading with its timer active.
// onComplete may be nil.
func NewSequencer(opts Options, onComplete func()) *Sequencer {
	s := &Sequencer{
		opts:       opts.withDefaults(),
		onComplete: onComplete,
		now:        time.Now,
	}
	s.started = s.now()
	s.progress.TimerActive = true
	return s
}

// Options returns the options the sequencer was built with.
func (s *Sequencer) Options() Options { return s.opts }

// State returns the current state.
func (s *Sequencer) State() State { return s.state }

// Percent returns the current progress in [0, Max].
func (s *Sequencer) Percent() int { return s.progress.Percent }

// Snapshot returns a copy of the progress state.
func (s *Sequencer) Snapshot() ProgressState { return s.progress }

// Ticks returns the number of ticks delivered while loading.
func (s *Sequencer) Ticks() int { return s.ticks }

// Tick advances progress by one step and evaluates completion.
func (s *Sequencer) Tick() Transition {
	if s.state != StateLoading || !s.progress.TimerActive {
		return TransitionNone
	}
	s.ticks++
	s.progress.Percent = min(s.progress.Percent+s.opts.Step, s.opts.Max)

	if s.full() && s.progress.AssetReady {
		return s.readyToFinish()
	}
	if s.full() && s.opts.Join == JoinImmediate {
		s.progress.TimerActive = false
		return TransitionIdle
	}
	return TransitionNone
}

// MarkAssetReady records the asset-ready signal. Duplicate signals are ignored.
// In JoinOnTick mode the signal never completes the sequence by itself.
func (s *Sequencer) MarkAssetReady() Transition {
	if s.state != StateLoading || s.progress.AssetReady {
		return TransitionNone
	}
	s.progress.AssetReady = true
	if s.opts.Join == JoinImmediate && s.full() {
		return s.readyToFinish()
	}
	return TransitionNone
}

// Expire forces completion when the maximum wait has elapsed while loading.
// The outcome is marked degraded unless both signals were already in and
// only the next tick was outstanding.
func (s *Sequencer) Expire() Transition {
	if s.state != StateLoading {
		return TransitionNone
	}
	switch {
	case !s.progress.AssetReady:
		s.degraded, s.reason = true, ReasonAssetNotReady
	case !s.full():
		s.degraded, s.reason = true, ReasonProgressIncomplete
	}
	return s.readyToFinish()
}

// Finish moves a sequence waiting out its grace delay to StateDone and
// invokes onComplete. It reports whether the transition happened.
func (s *Sequencer) Finish() bool {
	if s.state != StateReadyToFinish {
		return false
	}
	s.state = StateDone
	s.finished = s.now()
	if s.onComplete != nil {
		s.onComplete()
	}
	return true
}

// Cancel tears the sequence down before it finishes. onComplete will not
// be called. Cancel is a no-op once the sequence is terminal.
func (s *Sequencer) Cancel() bool {
	if s.state.Terminal() {
		return false
	}
	s.state = StateCancelled
	s.progress.TimerActive = false
	s.finished = s.now()
	return true
}

// Outcome summarizes the sequence. Elapsed is measured up to now while
// the sequence is still running.
func (s *Sequencer) Outcome() Outcome {
	end := s.finished
	if end.IsZero() {
		end = s.now()
	}
	return Outcome{
		Ticks:    s.ticks,
		Percent:  s.progress.Percent,
		Degraded: s.degraded,
		Reason:   s.reason,
		Elapsed:  end.Sub(s.started),
	}
}

func (s *Sequencer) full() bool {
	return s.progress.Percent >= s.opts.Max
}

func (s *Sequencer) readyToFinish() Transition {
	s.state = StateReadyToFinish
	s.progress.TimerActive = false
	return TransitionFinish
}
