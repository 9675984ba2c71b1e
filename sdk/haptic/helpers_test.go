package haptic

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/leandrodaf/haptic/internal/logger"
	"github.com/leandrodaf/haptic/sdk/contracts"
)

var errPulse = fmt.Errorf("%w: simulated", contracts.ErrUnavailable)

// recorder is a Pulser and Sleeper that logs what happened, in order.
type recorder struct {
	mu     sync.Mutex
	events []string
	pulses int
	failAt map[int]error // pulse index -> error
}

func newRecorder() *recorder {
	return &recorder{failAt: map[int]error{}}
}

func (r *recorder) Fire(s contracts.Strength) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.pulses
	r.pulses++
	r.events = append(r.events, "pulse:"+s.String())
	return r.failAt[idx]
}

func (r *recorder) Sleep(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "sleep:"+d.String())
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.pulses = 0
}

func (r *recorder) options(extra ...contracts.Option) []contracts.Option {
	return append([]contracts.Option{
		contracts.WithLogger(logger.NewNopLogger()),
		contracts.WithPulser(r),
		contracts.WithSleeper(r.Sleep),
	}, extra...)
}

func script(s string) []string {
	return strings.Fields(s)
}

var errClose = errors.New("close failed")

type closingPulser struct {
	*recorder
	closed int
}

func (p *closingPulser) Close() error {
	p.mu.Lock()
	p.events = append(p.events, "close")
	p.mu.Unlock()
	p.closed++
	return errClose
}
