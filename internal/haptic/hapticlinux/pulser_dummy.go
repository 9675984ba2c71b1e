//go:build !linux

package hapticlinux

import (
	"fmt"

	"github.com/leandrodaf/haptic/sdk/contracts"
)

// NewPulser reports that evdev force feedback only exists on Linux.
func NewPulser(options *contracts.ClientOptions) (contracts.Pulser, error) {
	options.Logger.Debug("Evdev force feedback not available on this system")
	return nil, fmt.Errorf("%w: evdev is linux-only", contracts.ErrUnavailable)
}
