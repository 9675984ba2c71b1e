package haptic

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/haptic/internal/haptic/hapticdarwin"
	"github.com/leandrodaf/haptic/internal/haptic/hapticlinux"
	"github.com/leandrodaf/haptic/internal/haptic/noop"
	"github.com/leandrodaf/haptic/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no haptic backend.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// pulserInitializers maps OS names to the corresponding pulser constructors.
var pulserInitializers = map[string]func(*contracts.ClientOptions) (contracts.Pulser, error){
	"darwin": hapticdarwin.NewPulser, // AppKit haptic performer.
	"linux":  hapticlinux.NewPulser,  // Evdev force-feedback rumble.
}

// NewPulser opens the haptic capability of the running operating system.
//
// opts *contracts.ClientOptions: Configuration options, including the logger and Linux device.
//
// Returns:
//   - contracts.Pulser: A pulser bound to the platform capability.
//   - error: ErrUnsupportedOS, or an error wrapping contracts.ErrUnavailable.
func NewPulser(opts *contracts.ClientOptions) (contracts.Pulser, error) {
	if initializer, exists := pulserInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}

// resolvePulser returns the configured pulser, the platform one, or a no-op
// pulser when the capability is absent. It never fails.
func resolvePulser(opts *contracts.ClientOptions) contracts.Pulser {
	if opts.Pulser != nil {
		return opts.Pulser
	}

	p, err := NewPulser(opts)
	if err != nil {
		opts.Logger.Warn("Haptic feedback unavailable; cues will be silent",
			opts.Logger.Field().String("os", runtime.GOOS),
			opts.Logger.Field().Error("error", err))
		return noop.New()
	}
	return p
}
