package contracts

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptySequence is returned when a CueSequence is built with no steps.
	ErrEmptySequence = errors.New("cue sequence must have at least one step")
	// ErrNegativeDelay is returned when a step carries a negative delay.
	ErrNegativeDelay = errors.New("pulse step delay must not be negative")
	// ErrInvalidStrength is returned when a step uses a strength outside the built-in set.
	ErrInvalidStrength = errors.New("invalid pulse strength")
)

// PulseStep is one pulse and the pause that follows it before the next step.
// DelayAfter is ignored on the final step of a sequence.
type PulseStep struct {
	Strength   Strength
	DelayAfter time.Duration
}

// CueSequence is an ordered, non-empty, immutable list of pulse steps.
type CueSequence struct {
	steps []PulseStep
}

// NewCueSequence validates steps and returns a sequence holding a private copy of them.
func NewCueSequence(steps ...PulseStep) (CueSequence, error) {
	if len(steps) == 0 {
		return CueSequence{}, ErrEmptySequence
	}
	for i, st := range steps {
		if !st.Strength.Valid() {
			return CueSequence{}, fmt.Errorf("%w: step %d: %v", ErrInvalidStrength, i, st.Strength)
		}
		if st.DelayAfter < 0 {
			return CueSequence{}, fmt.Errorf("%w: step %d: %v", ErrNegativeDelay, i, st.DelayAfter)
		}
	}
	own := make([]PulseStep, len(steps))
	copy(own, steps)
	return CueSequence{steps: own}, nil
}

// MustCueSequence is like NewCueSequence but panics on invalid input.
// It is intended for statically defined catalogs.
func MustCueSequence(steps ...PulseStep) CueSequence {
	seq, err := NewCueSequence(steps...)
	if err != nil {
		panic(err)
	}
	return seq
}

// Repeat builds a sequence of count pulses of the same strength separated by interval.
func Repeat(strength Strength, count int, interval time.Duration) (CueSequence, error) {
	if count <= 0 {
		return CueSequence{}, ErrEmptySequence
	}
	steps := make([]PulseStep, count)
	for i := range steps {
		steps[i] = PulseStep{Strength: strength}
		if i < count-1 {
			steps[i].DelayAfter = interval
		}
	}
	return NewCueSequence(steps...)
}

// Len returns the number of pulses in the sequence.
func (s CueSequence) Len() int {
	return len(s.steps)
}

// Steps returns a copy of the steps.
func (s CueSequence) Steps() []PulseStep {
	out := make([]PulseStep, len(s.steps))
	copy(out, s.steps)
	return out
}

// Step returns the i-th step.
func (s CueSequence) Step(i int) PulseStep {
	return s.steps[i]
}

// TotalDelay is the sum of all inter-step pauses, i.e. excluding the last step's delay.
func (s CueSequence) TotalDelay() time.Duration {
	var total time.Duration
	for i := 0; i < len(s.steps)-1; i++ {
		total += s.steps[i].DelayAfter
	}
	return total
}
