package debugutils

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/narender/product-console/common/config"
)

type delaySettings struct {
	enabled bool
	min     time.Duration
	max     time.Duration
}

// Simulator injects an artificial latency into request handling so loading
// states can be observed during development. Settings can be swapped at
// runtime with Update.
type Simulator struct {
	settings atomic.Pointer[delaySettings]
	logger   *slog.Logger
}

func NewSimulator(cfg *config.Config, logger *slog.Logger) *Simulator {
	s := &Simulator{logger: logger}
	s.Update(cfg)
	return s
}

// Update applies the delay fields of cfg.
func (s *Simulator) Update(cfg *config.Config) {
	next := &delaySettings{
		enabled: cfg.SimulateDelayEnabled,
		min:     time.Duration(cfg.SimulateDelayMinMs) * time.Millisecond,
		max:     time.Duration(cfg.SimulateDelayMaxMs) * time.Millisecond,
	}
	if next.enabled && (next.min < 0 || next.max < next.min) {
		s.logger.Warn("Invalid delay configuration, disabling simulation",
			slog.Duration("min", next.min), slog.Duration("max", next.max))
		next.enabled = false
	}
	s.settings.Store(next)
}

// Delay picks a random duration in [min, max]; zero when disabled.
func (s *Simulator) Delay() time.Duration {
	cur := s.settings.Load()
	if cur == nil || !cur.enabled {
		return 0
	}
	if cur.max == cur.min {
		return cur.min
	}
	return cur.min + rand.N(cur.max-cur.min+1)
}

// Simulate sleeps for Delay() or until ctx is done.
func (s *Simulator) Simulate(ctx context.Context) error {
	d := s.Delay()
	if d <= 0 {
		return nil
	}
	s.logger.DebugContext(ctx, "Simulating delay", slog.Duration("delay", d))

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
