//go:build linux

package hapticlinux

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/leandrodaf/haptic/sdk/contracts"
	"go.uber.org/multierr"
)

// ErrNoRumbleDevice is returned when autodetection finds no event device with FF_RUMBLE.
var ErrNoRumbleDevice = errors.New("no force-feedback rumble device found")

// eventGlob is where autodetection looks for event devices.
var eventGlob = "/dev/input/event*"

// rumble describes the uploaded effect for one strength.
type rumble struct {
	strong, weak uint16
	lengthMS     uint16
}

var rumbles = [...]rumble{
	contracts.Generic:     {strong: 0x0000, weak: 0x5000, lengthMS: 15},
	contracts.Alignment:   {strong: 0x6000, weak: 0x8000, lengthMS: 25},
	contracts.LevelChange: {strong: 0xc000, weak: 0xc000, lengthMS: 40},
}

// Pulser plays pre-uploaded rumble effects on an evdev force-feedback device.
type Pulser struct {
	logger    contracts.Logger
	dev       device
	path      string
	effects   [len(rumbles)]int16
	mu        sync.RWMutex // held for reading while a pulse uses the fd
	closed    bool
	closeOnce sync.Once
	closeErr  error
}

// NewPulser opens the configured event device, or the first one advertising
// FF_RUMBLE, and uploads one effect per strength.
func NewPulser(options *contracts.ClientOptions) (contracts.Pulser, error) {
	path := ""
	if options.LinuxConfig != nil {
		path = options.LinuxConfig.DevicePath
	}

	dev, path, err := findDevice(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrUnavailable, err)
	}

	p, err := newPulser(dev, options.Logger, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrUnavailable, err)
	}
	options.Logger.Info("Force-feedback device opened", options.Logger.Field().String("device", path))
	return p, nil
}

func findDevice(path string) (device, string, error) {
	if path != "" {
		dev, err := openEvdev(path)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", path, err)
		}
		if !dev.supportsRumble() {
			_ = dev.close()
			return nil, "", fmt.Errorf("%s does not support FF_RUMBLE", path)
		}
		return dev, path, nil
	}

	candidates, err := filepath.Glob(eventGlob)
	if err != nil {
		return nil, "", err
	}
	for _, c := range candidates {
		dev, err := openEvdev(c)
		if err != nil {
			continue
		}
		if dev.supportsRumble() {
			return dev, c, nil
		}
		_ = dev.close()
	}
	return nil, "", ErrNoRumbleDevice
}

func newPulser(dev device, logger contracts.Logger, path string) (*Pulser, error) {
	p := &Pulser{logger: logger, dev: dev, path: path}
	for i, r := range rumbles {
		e := rumbleEffect(r.strong, r.weak, r.lengthMS)
		if err := dev.uploadEffect(&e); err != nil {
			err = fmt.Errorf("upload %v effect: %w", contracts.Strength(i), err)
			for _, id := range p.effects[:i] {
				err = multierr.Append(err, dev.removeEffect(id))
			}
			return nil, multierr.Append(err, dev.close())
		}
		p.effects[i] = e.ID
	}
	return p, nil
}

// Fire starts the effect uploaded for strength. It does not wait for playback.
func (p *Pulser) Fire(strength contracts.Strength) error {
	if !strength.Valid() {
		return fmt.Errorf("%w: %w: %v", contracts.ErrUnavailable, contracts.ErrInvalidStrength, strength)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("%w: device closed", contracts.ErrUnavailable)
	}
	if err := p.dev.write(playEvent(p.effects[strength])); err != nil {
		return fmt.Errorf("%w: play on %s: %v", contracts.ErrUnavailable, p.path, err)
	}
	return nil
}

// Close removes the uploaded effects and closes the device.
func (p *Pulser) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		var err error
		for _, id := range p.effects {
			err = multierr.Append(err, p.dev.removeEffect(id))
		}
		p.closeErr = multierr.Append(err, p.dev.close())
		p.mu.Unlock()
		p.logger.Info("Force-feedback device closed", p.logger.Field().String("device", p.path))
	})
	return p.closeErr
}
