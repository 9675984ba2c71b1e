package contracts

import (
	"errors"
	"time"
)

// ErrUnavailable is returned when the platform feedback capability cannot be
// obtained or a pulse request could not be issued. It is never fatal.
var ErrUnavailable = errors.New("haptic feedback unavailable")

// Pulser fires one discrete feedback pulse. Implementations must be safe to
// call from multiple goroutines and must not queue, batch or retry.
type Pulser interface {
	Fire(strength Strength) error
}

// PulserFunc adapts an ordinary function to the Pulser interface.
type PulserFunc func(strength Strength) error

// Fire calls f(strength).
func (f PulserFunc) Fire(strength Strength) error {
	return f(strength)
}

// Sleeper suspends the calling goroutine for d.
type Sleeper func(d time.Duration)
