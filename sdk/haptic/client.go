package haptic

import (
	"fmt"
	"io"
	"sync"

	"github.com/leandrodaf/haptic/sdk/contracts"
	"go.uber.org/multierr"
)

// NewHapticClient creates a new haptic client with the specified options.
// It applies default options, probes the platform capability once and
// falls back to silent no-op feedback when none is present.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.HapticClient: An instance of the haptic client.
//   - error: An error, if the options could not be applied.
func NewHapticClient(opts ...contracts.Option) (contracts.HapticClient, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(&options), nil
}

// Client implements contracts.HapticClient on top of a Sequencer.
type Client struct {
	logger contracts.Logger
	pulser contracts.Pulser
	seq    *Sequencer
	async  bool

	mu        sync.RWMutex // guards closed against wg.Add
	closed    bool
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewClient builds a client from fully populated options.
func NewClient(opts *contracts.ClientOptions) *Client {
	p := resolvePulser(opts)
	opts.Logger.Info("Haptic client created",
		opts.Logger.Field().String("pulser", fmt.Sprintf("%T", p)),
		opts.Logger.Field().Bool("async", opts.Async))

	return &Client{
		logger: opts.Logger,
		pulser: p,
		seq:    NewSequencer(p, opts.Sleeper, opts.Logger),
		async:  opts.Async,
	}
}

// Fixed cues. Each plays its catalog sequence on the calling goroutine
// unless the client is async.
func (c *Client) Tick()        { c.named(contracts.CueTick) }
func (c *Client) Soft()        { c.named(contracts.CueSoft) }
func (c *Client) Tap()         { c.named(contracts.CueTap) }
func (c *Client) Alignment()   { c.named(contracts.CueAlignment) }
func (c *Client) LevelChange() { c.named(contracts.CueLevelChange) }
func (c *Client) DoubleTap()   { c.named(contracts.CueDoubleTap) }
func (c *Client) TripleTap()   { c.named(contracts.CueTripleTap) }
func (c *Client) Success()     { c.named(contracts.CueSuccess) }
func (c *Client) Thunk()       { c.named(contracts.CueThunk) }
func (c *Client) Play()        { c.named(contracts.CuePlay) }
func (c *Client) Pause()       { c.named(contracts.CuePause) }

func (c *Client) DirectionChange() { c.named(contracts.CueDirectionChange) }

// Scrub fires one pulse whose strength depends on |intensity|.
func (c *Client) Scrub(intensity float64) {
	c.run(contracts.CueScrub, ScrubSequence(intensity))
}

// Fire plays the named cue and reports whether the name exists in the catalog.
func (c *Client) Fire(name string) bool {
	seq, ok := Lookup(contracts.Cue(name))
	if !ok {
		c.logger.Warn("Unknown cue requested", c.logger.Field().String("cue", name))
		return false
	}
	c.run(contracts.Cue(name), seq)
	return true
}

// Close stops accepting cues, waits for sequences still playing and
// releases the platform capability. Calling Close more than once is safe.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.wg.Wait()

		if closer, ok := c.pulser.(io.Closer); ok {
			c.closeErr = multierr.Append(c.closeErr, closer.Close())
		}
		c.logger.Info("Haptic client closed")
	})
	return c.closeErr
}

func (c *Client) named(name contracts.Cue) {
	seq, _ := Lookup(name)
	c.run(name, seq)
}

func (c *Client) run(name contracts.Cue, seq contracts.CueSequence) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		c.logger.Debug("Cue ignored after close", c.logger.Field().String("cue", string(name)))
		return
	}
	c.wg.Add(1)
	c.mu.RUnlock()

	if !c.async {
		defer c.wg.Done()
		c.play(name, seq)
		return
	}
	go func() {
		defer c.wg.Done()
		c.play(name, seq)
	}()
}

// play executes seq and swallows every failure, including a panicking pulser.
func (c *Client) play(name contracts.Cue, seq contracts.CueSequence) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Haptic pulser panicked",
				c.logger.Field().String("cue", string(name)),
				c.logger.Field().Any("panic", r))
		}
	}()

	if err := c.seq.Execute(seq); err != nil {
		c.logger.Debug("Cue played without full feedback",
			c.logger.Field().String("cue", string(name)),
			c.logger.Field().Error("error", err))
	}
}
