package contracts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCueSequenceValidation(t *testing.T) {
	_, err := NewCueSequence()
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = NewCueSequence(PulseStep{Strength: Generic, DelayAfter: -time.Millisecond})
	assert.ErrorIs(t, err, ErrNegativeDelay)

	_, err = NewCueSequence(PulseStep{Strength: Strength(3)})
	assert.ErrorIs(t, err, ErrInvalidStrength)

	seq, err := NewCueSequence(PulseStep{Strength: LevelChange})
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())
	assert.Zero(t, seq.TotalDelay())
}

func TestCueSequenceIsImmutable(t *testing.T) {
	steps := []PulseStep{
		{Strength: Alignment, DelayAfter: 40 * time.Millisecond},
		{Strength: Generic},
	}
	seq := MustCueSequence(steps...)

	steps[0].Strength = LevelChange
	out := seq.Steps()
	out[1].Strength = LevelChange

	assert.Equal(t, Alignment, seq.Step(0).Strength)
	assert.Equal(t, Generic, seq.Step(1).Strength)
}

func TestMustCueSequencePanics(t *testing.T) {
	assert.Panics(t, func() { MustCueSequence() })
}

func TestRepeat(t *testing.T) {
	seq, err := Repeat(LevelChange, 3, 80*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []PulseStep{
		{Strength: LevelChange, DelayAfter: 80 * time.Millisecond},
		{Strength: LevelChange, DelayAfter: 80 * time.Millisecond},
		{Strength: LevelChange},
	}, seq.Steps())
	assert.Equal(t, 160*time.Millisecond, seq.TotalDelay())

	_, err = Repeat(Generic, 0, time.Millisecond)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestTotalDelayIgnoresLastStep(t *testing.T) {
	seq := MustCueSequence(
		PulseStep{Strength: Generic, DelayAfter: 10 * time.Millisecond},
		PulseStep{Strength: Generic, DelayAfter: time.Hour},
	)
	assert.Equal(t, 10*time.Millisecond, seq.TotalDelay())
}

func TestPulserFunc(t *testing.T) {
	var got Strength = -1
	var p Pulser = PulserFunc(func(s Strength) error {
		got = s
		return ErrUnavailable
	})
	assert.ErrorIs(t, p.Fire(Alignment), ErrUnavailable)
	assert.Equal(t, Alignment, got)
}
