package haptic

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/leandrodaf/haptic/internal/haptic/noop"
	"github.com/leandrodaf/haptic/internal/logger"
	"github.com/leandrodaf/haptic/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClientOperations(t *testing.T) {
	rec := newRecorder()
	client, err := NewHapticClient(rec.options()...)
	require.NoError(t, err)
	defer client.Close()

	ops := []struct {
		call func()
		want string
	}{
		{client.Tick, "pulse:generic"},
		{client.Soft, "pulse:generic"},
		{client.Tap, "pulse:generic"},
		{client.Alignment, "pulse:alignment"},
		{client.LevelChange, "pulse:level_change"},
		{client.DirectionChange, "pulse:alignment"},
		{client.DoubleTap, "pulse:alignment sleep:60ms pulse:alignment"},
		{client.TripleTap, "pulse:level_change sleep:80ms pulse:level_change sleep:80ms pulse:level_change"},
		{client.Success, "pulse:alignment sleep:40ms pulse:generic"},
		{client.Thunk, "pulse:level_change sleep:25ms pulse:generic"},
		{client.Play, "pulse:generic sleep:50ms pulse:alignment"},
		{client.Pause, "pulse:alignment sleep:50ms pulse:generic"},
		{func() { client.Scrub(0.8) }, "pulse:alignment"},
		{func() { client.Scrub(-0.8) }, "pulse:alignment"},
		{func() { client.Scrub(0.5) }, "pulse:generic"},
		{func() { client.Scrub(0) }, "pulse:generic"},
	}
	for _, op := range ops {
		rec.Reset()
		op.call()
		assert.Equal(t, script(op.want), rec.Events())
	}
}

func TestClientFireByName(t *testing.T) {
	rec := newRecorder()
	client, err := NewHapticClient(rec.options()...)
	require.NoError(t, err)

	assert.True(t, client.Fire("thunk"))
	assert.Equal(t, script("pulse:level_change sleep:25ms pulse:generic"), rec.Events())

	rec.Reset()
	assert.False(t, client.Fire("wobble"))
	assert.False(t, client.Fire("scrub"))
	assert.Empty(t, rec.Events())
}

func TestClientSwallowsPulseFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rec := newRecorder()
	rec.failAt[0] = errPulse
	rec.failAt[2] = errPulse

	client, err := NewHapticClient(
		contracts.WithLogger(logger.New(zap.New(core))),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithPulser(rec),
		contracts.WithSleeper(rec.Sleep),
	)
	require.NoError(t, err)

	assert.NotPanics(t, client.TripleTap)
	assert.Equal(t, 3, rec.pulses)
	assert.Equal(t, 2, logs.FilterMessage("Pulse not delivered").Len())
	assert.Equal(t, 1, logs.FilterMessage("Cue played without full feedback").Len())
}

func TestClientRecoversFromPanickingPulser(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	client, err := NewHapticClient(
		contracts.WithLogger(logger.New(zap.New(core))),
		contracts.WithPulser(contracts.PulserFunc(func(contracts.Strength) error {
			panic("driver exploded")
		})),
	)
	require.NoError(t, err)

	assert.NotPanics(t, client.Success)
	assert.NotPanics(t, func() { client.Scrub(1) })
	assert.Equal(t, 2, logs.FilterMessage("Haptic pulser panicked").Len())
}

func TestClientWithoutCapabilityIsSilent(t *testing.T) {
	client, err := NewHapticClient(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithPulser(noop.New()),
		contracts.WithSleeper(func(time.Duration) {}),
	)
	require.NoError(t, err)

	for _, cue := range Cues() {
		assert.NotPanics(t, func() { client.Fire(string(cue)) })
	}
	assert.NotPanics(t, func() { client.Scrub(0.9) })
	assert.NoError(t, client.Close())
}

func TestClientRepeatedCuesAreIndependent(t *testing.T) {
	rec := newRecorder()
	client, err := NewHapticClient(rec.options()...)
	require.NoError(t, err)

	client.Success()
	client.Success()

	once := script("pulse:alignment sleep:40ms pulse:generic")
	assert.Equal(t, append(once, once...), rec.Events())
}

func TestClientConcurrentCallers(t *testing.T) {
	rec := newRecorder()
	client, err := NewHapticClient(rec.options()...)
	require.NoError(t, err)

	before := map[contracts.Cue][]contracts.PulseStep{}
	for _, cue := range Cues() {
		seq, _ := Lookup(cue)
		before[cue] = seq.Steps()
	}

	const goroutines = 32
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.TripleTap()
			client.Scrub(0.9)
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*4, rec.pulses)
	for cue, steps := range before {
		seq, _ := Lookup(cue)
		assert.Equal(t, steps, seq.Steps(), cue)
	}
}

func TestClientCallersDoNotBlockEachOther(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	rec := newRecorder()

	client, err := NewHapticClient(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithPulser(rec),
		contracts.WithSleeper(func(time.Duration) {
			entered <- struct{}{}
			<-release
		}),
	)
	require.NoError(t, err)

	slow := make(chan struct{})
	go func() {
		defer close(slow)
		client.DoubleTap()
	}()
	<-entered

	done := make(chan struct{})
	go func() {
		defer close(done)
		client.Tick()
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("single pulse cue waited for another caller's sequence")
	}

	close(release)
	<-slow
	assert.Equal(t, 3, rec.pulses)
}

func TestClientAsync(t *testing.T) {
	release := make(chan struct{})
	rec := newRecorder()

	client, err := NewHapticClient(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithPulser(rec),
		contracts.WithSleeper(func(d time.Duration) {
			<-release
			rec.Sleep(d)
		}),
		contracts.WithAsync(true),
	)
	require.NoError(t, err)

	returned := make(chan struct{})
	go func() {
		client.Success()
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("async cue blocked the caller")
	}

	close(release)
	require.NoError(t, client.Close())
	assert.Equal(t, script("pulse:alignment sleep:40ms pulse:generic"), rec.Events())

	client.Tick()
	assert.Len(t, rec.Events(), 3, "cues after Close are ignored")
}

func TestClientCloseWaitsForSynchronousCue(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	p := &closingPulser{recorder: newRecorder()}

	client, err := NewHapticClient(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithPulser(p),
		contracts.WithSleeper(func(d time.Duration) {
			entered <- struct{}{}
			<-release
			p.Sleep(d)
		}),
	)
	require.NoError(t, err)

	go client.DoubleTap()
	<-entered

	closed := make(chan error, 1)
	go func() { closed <- client.Close() }()

	select {
	case <-closed:
		t.Fatal("Close returned while a cue was still playing")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	assert.ErrorIs(t, <-closed, errClose)
	assert.Equal(t, 1, p.closed)
	assert.Equal(t, script("pulse:alignment sleep:60ms pulse:alignment close"), p.Events())
}

func TestClientCloseReleasesPulser(t *testing.T) {
	p := &closingPulser{recorder: newRecorder()}
	client, err := NewHapticClient(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithPulser(p),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, client.Close(), errClose)
	assert.ErrorIs(t, client.Close(), errClose)
	assert.Equal(t, 1, p.closed)
}

func TestResolvePulserFallsBackToNoop(t *testing.T) {
	old, had := pulserInitializers[runtime.GOOS]
	pulserInitializers[runtime.GOOS] = func(*contracts.ClientOptions) (contracts.Pulser, error) {
		return nil, contracts.ErrUnavailable
	}
	t.Cleanup(func() {
		if had {
			pulserInitializers[runtime.GOOS] = old
		} else {
			delete(pulserInitializers, runtime.GOOS)
		}
	})

	core, logs := observer.New(zapcore.DebugLevel)
	opts := &contracts.ClientOptions{Logger: logger.New(zap.New(core))}
	assert.IsType(t, noop.Pulser{}, resolvePulser(opts))
	assert.Equal(t, 1, logs.FilterMessage("Haptic feedback unavailable; cues will be silent").Len())

	rec := newRecorder()
	opts.Pulser = rec
	assert.Same(t, rec, resolvePulser(opts))
}

func TestNewPulserUnsupportedOS(t *testing.T) {
	old, had := pulserInitializers[runtime.GOOS]
	delete(pulserInitializers, runtime.GOOS)
	t.Cleanup(func() {
		if had {
			pulserInitializers[runtime.GOOS] = old
		}
	})

	_, err := NewPulser(&contracts.ClientOptions{Logger: logger.NewNopLogger()})
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestApplyDefaultOptions(t *testing.T) {
	opts, err := applyDefaultOptions()
	require.NoError(t, err)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Sleeper)
	require.NotNil(t, opts.LinuxConfig)
	assert.Empty(t, opts.LinuxConfig.DevicePath)
	assert.False(t, opts.Async)

	opts, err = applyDefaultOptions(
		contracts.WithLinuxConfig(contracts.LinuxConfig{DevicePath: "/dev/input/event3"}),
		contracts.WithAsync(true),
	)
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event3", opts.LinuxConfig.DevicePath)
	assert.True(t, opts.Async)

	_, err = applyDefaultOptions(
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithLogFile("/var/log/haptic.log"),
	)
	assert.Error(t, err, "nop logger cannot be redirected")
}
