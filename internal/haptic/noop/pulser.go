// Package noop provides the Pulser used when no feedback hardware is present.
package noop

import "github.com/leandrodaf/haptic/sdk/contracts"

// Pulser reports every pulse as unavailable without doing anything.
type Pulser struct{}

// New returns a no-op pulser.
func New() Pulser {
	return Pulser{}
}

// Fire always returns contracts.ErrUnavailable.
func (Pulser) Fire(contracts.Strength) error {
	return contracts.ErrUnavailable
}
