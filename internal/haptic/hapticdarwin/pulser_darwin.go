//go:build darwin && cgo

package hapticdarwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit
#import <AppKit/AppKit.h>

static int haptic_available(void) {
	return [NSHapticFeedbackManager defaultPerformer] != nil;
}

static int haptic_perform(long pattern) {
	id<NSHapticFeedbackPerformer> performer = [NSHapticFeedbackManager defaultPerformer];
	if (performer == nil) {
		return -1;
	}
	[performer performFeedbackPattern:(NSHapticFeedbackPattern)pattern
	                  performanceTime:NSHapticFeedbackPerformanceTimeNow];
	return 0;
}
*/
import "C"

import (
	"fmt"

	"github.com/leandrodaf/haptic/sdk/contracts"
)

// NSHapticFeedbackPattern values.
const (
	patternGeneric     = 0
	patternAlignment   = 1
	patternLevelChange = 2
)

// Pulser fires pulses through the default AppKit haptic performer (Force Touch trackpads).
type Pulser struct {
	logger contracts.Logger
}

// NewPulser checks that a haptic performer exists and returns a pulser bound to it.
func NewPulser(options *contracts.ClientOptions) (contracts.Pulser, error) {
	if C.haptic_available() == 0 {
		return nil, fmt.Errorf("%w: no NSHapticFeedbackPerformer", contracts.ErrUnavailable)
	}
	options.Logger.Info("AppKit haptic performer available")
	return &Pulser{logger: options.Logger}, nil
}

// Fire performs one feedback pattern immediately.
func (p *Pulser) Fire(strength contracts.Strength) error {
	pattern, err := patternFor(strength)
	if err != nil {
		return err
	}
	if C.haptic_perform(C.long(pattern)) != 0 {
		return fmt.Errorf("%w: performer went away", contracts.ErrUnavailable)
	}
	return nil
}

func patternFor(strength contracts.Strength) (int, error) {
	switch strength {
	case contracts.Generic:
		return patternGeneric, nil
	case contracts.Alignment:
		return patternAlignment, nil
	case contracts.LevelChange:
		return patternLevelChange, nil
	}
	return 0, fmt.Errorf("%w: %w: %v", contracts.ErrUnavailable, contracts.ErrInvalidStrength, strength)
}
