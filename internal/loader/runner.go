package loader

import (
	"context"
	"sync"
	"time"
)

// Runner drives a Sequencer with real timers on its own goroutine. The
// goroutine is the only owner of the sequencer, so ticks, the asset-ready
// signal and the deadlines are applied one at a time.
type Runner struct {
	opts       Options
	seq        *Sequencer
	guard      Guard
	onProgress func(percent int)

	ready     chan struct{}
	readyOnce sync.Once
	stop      chan struct{}
	stopOnce  sync.Once
	done      chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	state   State
	outcome Outcome
}

// NewRunner creates a runner. onComplete is called on the runner's
// goroutine, at most once, after the grace delay.
func NewRunner(opts Options, onComplete func()) *Runner {
	opts = opts.withDefaults()
	return &Runner{
		opts:  opts,
		seq:   NewSequencer(opts, onComplete),
		ready: make(chan struct{}),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// OnProgress sets a callback that receives the percent after every tick.
// It must be set before Start.
func (r *Runner) OnProgress(fn func(percent int)) *Runner {
	r.onProgress = fn
	return r
}

// WithGuard sets a resource held from Start until the sequence ends.
// It must be set before Start.
func (r *Runner) WithGuard(g Guard) *Runner {
	r.guard = g
	return r
}

// Start launches the sequence. The context cancels it like Stop.
func (r *Runner) Start(ctx context.Context) error {
	if err := r.opts.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	r.started = true
	if r.stopped {
		r.mu.Unlock()
		r.exit()
		close(r.done)
		return ErrCancelled
	}
	r.mu.Unlock()

	// Restart the clock so Outcome.Elapsed measures from Start.
	r.seq.started = r.seq.now()
	release := Hold(r.guard)
	go r.run(ctx, release)
	return nil
}

// AssetReady delivers the asset-ready signal. Safe to call from any
// goroutine, any number of times, before or after Start.
func (r *Runner) AssetReady() {
	r.readyOnce.Do(func() { close(r.ready) })
}

// Stop tears the sequence down and waits for the runner goroutine to exit.
// A Start that has not launched the goroutine yet returns ErrCancelled.
// Calling Stop after completion, or more than once, has no effect.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })

	r.mu.Lock()
	r.stopped = true
	started := r.started
	r.mu.Unlock()
	if started {
		<-r.done
	}
}

// Done is closed when the sequence has finished or was cancelled.
func (r *Runner) Done() <-chan struct{} { return r.done }

// State returns the state recorded when the runner exited, or
// StateLoading while it is still running.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until the sequence ends or ctx is done.
func (r *Runner) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-r.done:
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateCancelled {
		return r.outcome, ErrCancelled
	}
	return r.outcome, nil
}

func (r *Runner) run(ctx context.Context, release func()) {
	defer close(r.done)
	defer release()

	ticker := time.NewTicker(r.opts.Interval)
	defer ticker.Stop()
	tickC := ticker.C

	var expireC <-chan time.Time
	if r.opts.MaxWait > 0 {
		expire := time.NewTimer(r.opts.MaxWait)
		defer expire.Stop()
		expireC = expire.C
	}

	var grace *time.Timer
	var graceC <-chan time.Time
	defer func() {
		if grace != nil {
			grace.Stop()
		}
	}()

	apply := func(t Transition) {
		switch t {
		case TransitionIdle:
			ticker.Stop()
			tickC = nil
		case TransitionFinish:
			ticker.Stop()
			tickC = nil
			expireC = nil
			grace = time.NewTimer(r.opts.GraceDelay)
			graceC = grace.C
		}
	}

	ready := r.ready
	for {
		select {
		case <-ctx.Done():
			r.exit()
			return
		case <-r.stop:
			r.exit()
			return
		case <-tickC:
			t := r.seq.Tick()
			if r.onProgress != nil {
				r.onProgress(r.seq.Percent())
			}
			apply(t)
		case <-ready:
			ready = nil
			apply(r.seq.MarkAssetReady())
		case <-expireC:
			expireC = nil
			apply(r.seq.Expire())
		case <-graceC:
			release()
			r.seq.Finish()
			r.exit()
			return
		}
	}
}

// exit cancels an unfinished sequence and records the final state.
func (r *Runner) exit() {
	r.seq.Cancel()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = r.seq.State()
	r.outcome = r.seq.Outcome()
}
