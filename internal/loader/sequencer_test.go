package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickMode() Options {
	opts := DefaultOptions()
	opts.Join = JoinOnTick
	return opts
}

func TestTickClampsPercent(t *testing.T) {
	for n := 0; n <= 15; n++ {
		s := NewSequencer(tickMode(), nil)
		for i := 0; i < n; i++ {
			s.Tick()
		}
		assert.Equal(t, min(10*n, 100), s.Percent(), "after %d ticks", n)
	}
}

func TestNoCompletionWithoutAsset(t *testing.T) {
	calls := 0
	s := NewSequencer(tickMode(), func() { calls++ })
	for i := 0; i < 30; i++ {
		assert.Equal(t, TransitionNone, s.Tick())
	}
	assert.Equal(t, 100, s.Percent())
	assert.Equal(t, StateLoading, s.State())
	assert.True(t, s.Snapshot().TimerActive, "tick mode keeps polling at 100%")
	assert.False(t, s.Finish())
	assert.Zero(t, calls)
}

func TestNoCompletionBeforeFull(t *testing.T) {
	for _, join := range []JoinMode{JoinOnTick, JoinImmediate} {
		t.Run(string(join), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Join = join
			s := NewSequencer(opts, nil)
			assert.Equal(t, TransitionNone, s.MarkAssetReady())
			for i := 0; i < 9; i++ {
				assert.Equal(t, TransitionNone, s.Tick(), "tick %d", i+1)
				assert.Equal(t, StateLoading, s.State())
			}
			assert.Equal(t, TransitionFinish, s.Tick())
			assert.Equal(t, StateReadyToFinish, s.State())
			assert.Equal(t, 10, s.Ticks())
		})
	}
}

func TestOnCompleteExactlyOnce(t *testing.T) {
	calls := 0
	s := NewSequencer(tickMode(), func() { calls++ })
	s.MarkAssetReady()
	s.MarkAssetReady()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.Equal(t, StateReadyToFinish, s.State())
	assert.False(t, s.Snapshot().TimerActive)

	for i := 0; i < 5; i++ {
		assert.Equal(t, TransitionNone, s.Tick())
		assert.Equal(t, TransitionNone, s.MarkAssetReady())
	}
	assert.True(t, s.Finish())
	assert.False(t, s.Finish())
	s.Tick()
	assert.Equal(t, 1, calls)
	assert.Equal(t, StateDone, s.State())
}

func TestTickModeCompletesOnTickAfterReady(t *testing.T) {
	s := NewSequencer(tickMode(), nil)
	for i := 0; i < 12; i++ {
		s.Tick()
	}
	require.Equal(t, 100, s.Percent())

	assert.Equal(t, TransitionNone, s.MarkAssetReady(), "ready alone must not complete")
	assert.Equal(t, StateLoading, s.State())

	assert.Equal(t, TransitionFinish, s.Tick())
	assert.Equal(t, StateReadyToFinish, s.State())
	assert.Equal(t, 13, s.Ticks())
}

func TestImmediateJoinCompletesOnLastSignal(t *testing.T) {
	s := NewSequencer(DefaultOptions(), nil)
	for i := 0; i < 9; i++ {
		s.Tick()
	}
	assert.Equal(t, TransitionIdle, s.Tick())
	assert.False(t, s.Snapshot().TimerActive)
	assert.Equal(t, TransitionNone, s.Tick(), "ticks after idle are ignored")
	assert.Equal(t, 10, s.Ticks())

	assert.Equal(t, TransitionFinish, s.MarkAssetReady())
	assert.Equal(t, StateReadyToFinish, s.State())
}

func TestExpireMarksDegraded(t *testing.T) {
	calls := 0
	s := NewSequencer(DefaultOptions(), func() { calls++ })
	s.Tick()
	assert.Equal(t, TransitionFinish, s.Expire())
	assert.True(t, s.Finish())
	out := s.Outcome()
	assert.True(t, out.Degraded)
	assert.Equal(t, ReasonAssetNotReady, out.Reason)
	assert.Equal(t, 10, out.Percent)
	assert.Equal(t, 1, calls)

	s = NewSequencer(DefaultOptions(), nil)
	s.MarkAssetReady()
	s.Expire()
	assert.Equal(t, ReasonProgressIncomplete, s.Outcome().Reason)
}

func TestExpireWithBothSignalsInTickJoin(t *testing.T) {
	opts := DefaultOptions()
	opts.Join = JoinOnTick
	s := NewSequencer(opts, nil)
	for range 10 {
		s.Tick()
	}
	assert.Equal(t, TransitionNone, s.MarkAssetReady(), "waits for the next tick")

	assert.Equal(t, TransitionFinish, s.Expire())
	require.True(t, s.Finish())
	out := s.Outcome()
	assert.False(t, out.Degraded)
	assert.Empty(t, out.Reason)
	assert.Equal(t, 100, out.Percent)
}

func TestExpireAfterReadyIsIgnored(t *testing.T) {
	s := NewSequencer(DefaultOptions(), nil)
	s.MarkAssetReady()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	assert.Equal(t, TransitionNone, s.Expire())
	s.Finish()
	assert.False(t, s.Outcome().Degraded)
}

func TestCancel(t *testing.T) {
	calls := 0
	s := NewSequencer(DefaultOptions(), func() { calls++ })
	s.MarkAssetReady()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	assert.True(t, s.Cancel())
	assert.Equal(t, StateCancelled, s.State())
	assert.False(t, s.Finish(), "grace deadline after teardown")
	assert.False(t, s.Cancel())
	assert.Zero(t, calls)
}

func TestCancelAfterDoneIsNoop(t *testing.T) {
	s := NewSequencer(DefaultOptions(), nil)
	s.MarkAssetReady()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.True(t, s.Finish())
	assert.NotPanics(t, func() {
		assert.False(t, s.Cancel())
		assert.False(t, s.Cancel())
	})
	assert.Equal(t, StateDone, s.State())
}

func TestOutcomeElapsed(t *testing.T) {
	clock := time.Unix(0, 0)
	s := NewSequencer(DefaultOptions(), nil)
	s.now = func() time.Time { return clock }
	s.started = clock

	s.MarkAssetReady()
	for i := 0; i < 10; i++ {
		clock = clock.Add(DefaultInterval)
		s.Tick()
	}
	clock = clock.Add(DefaultGraceDelay)
	s.Finish()
	clock = clock.Add(time.Hour)

	assert.Equal(t, 10*DefaultInterval+DefaultGraceDelay, s.Outcome().Elapsed)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())

	bad := []func(*Options){
		func(o *Options) { o.Interval = 0 },
		func(o *Options) { o.Step = 0 },
		func(o *Options) { o.Step = 101 },
		func(o *Options) { o.Max = 0 },
		func(o *Options) { o.GraceDelay = -time.Second },
		func(o *Options) { o.MaxWait = -time.Second },
		func(o *Options) { o.Join = "eventually" },
	}
	for i, mutate := range bad {
		opts := DefaultOptions()
		mutate(&opts)
		assert.ErrorIs(t, opts.Validate(), ErrInvalidOptions, "case %d", i)
	}
}

func TestTicksToFull(t *testing.T) {
	assert.Equal(t, 10, DefaultOptions().TicksToFull())
	opts := DefaultOptions()
	opts.Step = 30
	assert.Equal(t, 4, opts.TicksToFull())
}

func TestStepClampsAtMax(t *testing.T) {
	opts := DefaultOptions()
	opts.Step = 30
	s := NewSequencer(opts, nil)
	s.MarkAssetReady()
	for i := 0; i < 3; i++ {
		assert.Equal(t, TransitionNone, s.Tick())
	}
	assert.Equal(t, TransitionFinish, s.Tick())
	assert.Equal(t, 100, s.Percent())
}
