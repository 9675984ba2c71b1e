package haptic

import (
	"fmt"
	"time"

	"github.com/leandrodaf/haptic/internal/logger"
	"github.com/leandrodaf/haptic/sdk/contracts"
)

// Sequencer plays cue sequences on a Pulser. It holds no mutable state, so
// one Sequencer may be used from any number of goroutines at once.
type Sequencer struct {
	pulser contracts.Pulser
	sleep  contracts.Sleeper
	logger contracts.Logger
}

// NewSequencer returns a sequencer firing on p. A nil sleep means time.Sleep
// and a nil log discards diagnostics.
func NewSequencer(p contracts.Pulser, sleep contracts.Sleeper, log contracts.Logger) *Sequencer {
	if sleep == nil {
		sleep = time.Sleep
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Sequencer{pulser: p, sleep: sleep, logger: log}
}

// Execute fires every step of seq in order on the calling goroutine,
// pausing for each step's delay before the next one. A failing pulse does
// not stop the sequence; the last error seen is returned.
func (s *Sequencer) Execute(seq contracts.CueSequence) error {
	var lastErr error
	n := seq.Len()
	for i := 0; i < n; i++ {
		step := seq.Step(i)
		if err := s.pulser.Fire(step.Strength); err != nil {
			lastErr = err
			s.logger.Debug("Pulse not delivered",
				s.logger.Field().Int("step", i),
				s.logger.Field().String("strength", step.Strength.String()),
				s.logger.Field().Error("error", err))
		}
		if i < n-1 && step.DelayAfter > 0 {
			s.sleep(step.DelayAfter)
		}
	}
	return lastErr
}

// ExecuteNamed looks name up in the catalog and executes it.
func (s *Sequencer) ExecuteNamed(name contracts.Cue) error {
	seq, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCue, name)
	}
	return s.Execute(seq)
}
