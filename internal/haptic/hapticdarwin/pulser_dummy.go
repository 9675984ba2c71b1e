//go:build !darwin || !cgo

package hapticdarwin

import (
	"fmt"

	"github.com/leandrodaf/haptic/sdk/contracts"
)

// NewPulser reports that AppKit haptics are not part of this build.
func NewPulser(options *contracts.ClientOptions) (contracts.Pulser, error) {
	options.Logger.Debug("AppKit haptics not compiled into this build")
	return nil, fmt.Errorf("%w: built without darwin cgo support", contracts.ErrUnavailable)
}
