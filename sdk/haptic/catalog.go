package haptic

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/leandrodaf/haptic/sdk/contracts"
)

// ErrUnknownCue is returned when a cue name is not in the catalog.
var ErrUnknownCue = errors.New("unknown cue")

const (
	ms = time.Millisecond

	scrubStrongThreshold = 0.7
	scrubMediumThreshold = 0.3
)

func single(s contracts.Strength) contracts.CueSequence {
	return contracts.MustCueSequence(contracts.PulseStep{Strength: s})
}

func repeat(s contracts.Strength, count int, interval time.Duration) contracts.CueSequence {
	seq, err := contracts.Repeat(s, count, interval)
	if err != nil {
		panic(err)
	}
	return seq
}

// catalog is built once at package initialization and never written again.
var catalog = map[contracts.Cue]contracts.CueSequence{
	contracts.CueTick:        single(contracts.Generic),
	contracts.CueSoft:        single(contracts.Generic),
	contracts.CueTap:         single(contracts.Generic),
	contracts.CueAlignment:   single(contracts.Alignment),
	contracts.CueLevelChange: single(contracts.LevelChange),

	contracts.CueDoubleTap: repeat(contracts.Alignment, 2, 60*ms),
	contracts.CueTripleTap: repeat(contracts.LevelChange, 3, 80*ms),
	contracts.CueSuccess: contracts.MustCueSequence(
		contracts.PulseStep{Strength: contracts.Alignment, DelayAfter: 40 * ms},
		contracts.PulseStep{Strength: contracts.Generic},
	),
	contracts.CueThunk: contracts.MustCueSequence(
		contracts.PulseStep{Strength: contracts.LevelChange, DelayAfter: 25 * ms},
		contracts.PulseStep{Strength: contracts.Generic},
	),
	contracts.CuePlay: contracts.MustCueSequence(
		contracts.PulseStep{Strength: contracts.Generic, DelayAfter: 50 * ms},
		contracts.PulseStep{Strength: contracts.Alignment},
	),
	contracts.CuePause: contracts.MustCueSequence(
		contracts.PulseStep{Strength: contracts.Alignment, DelayAfter: 50 * ms},
		contracts.PulseStep{Strength: contracts.Generic},
	),
	contracts.CueDirectionChange: single(contracts.Alignment),
}

// Lookup returns the sequence registered for a named cue.
func Lookup(name contracts.Cue) (contracts.CueSequence, bool) {
	seq, ok := catalog[name]
	return seq, ok
}

// Cues lists the named cues of the catalog in lexical order. The
// parameterized scrub cue is not included.
func Cues() []contracts.Cue {
	names := make([]contracts.Cue, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ScrubStrength selects the pulse strength for a scrub of the given
// intensity. The sign of intensity is ignored.
func ScrubStrength(intensity float64) contracts.Strength {
	level := math.Abs(intensity)
	switch {
	case level > scrubStrongThreshold:
		return contracts.Alignment
	case level > scrubMediumThreshold:
		// Medium scrubs currently feel the same as light ones.
		return contracts.Generic
	default:
		return contracts.Generic
	}
}

// ScrubSequence is the single-pulse sequence played for a scrub.
func ScrubSequence(intensity float64) contracts.CueSequence {
	return single(ScrubStrength(intensity))
}
