package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/logging"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

// Source keeps the configured dataset in memory and reloads it once it is
// older than the configured refresh interval. Reloads go through a circuit
// breaker; while the backend fails the last good dataset keeps being served.
// Only one reload runs at a time and callers keep getting the previous
// dataset while it is in flight.
type Source struct {
	cfg    *config.Dataset
	load   func(context.Context, *config.Dataset) (*Dataset, error)
	cb     *gobreaker.CircuitBreaker
	group  singleflight.Group
	logger *logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	current   *Dataset
	loadedAt  time.Time
	reloading bool
}

// NewSource creates a Source for cfg. Nothing is loaded until Get.
func NewSource(cfg *config.Dataset, logger *logging.Logger) *Source {
	if logger == nil {
		logger = logging.StandardLogger()
	}
	return &Source{
		cfg:    cfg,
		load:   Open,
		logger: logger,
		now:    time.Now,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "dataset:" + cfg.Driver,
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Get returns the current dataset, loading or refreshing it when due.
func (s *Source) Get(ctx context.Context) (*Dataset, error) {
	s.mu.Lock()
	if s.current != nil && (s.reloading || !s.stale()) {
		d := s.current
		s.mu.Unlock()
		return d, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do("load", func() (interface{}, error) {
		return s.reload(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

func (s *Source) reload(ctx context.Context) (*Dataset, error) {
	s.mu.Lock()
	if s.current != nil && !s.stale() {
		d := s.current
		s.mu.Unlock()
		return d, nil
	}
	s.reloading = true
	s.mu.Unlock()

	v, err := s.cb.Execute(func() (interface{}, error) {
		return s.load(ctx, s.cfg)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloading = false
	if err != nil {
		if s.current != nil {
			s.logger.Warnf(ctx, "dataset reload failed, serving data loaded at %s: %v", s.loadedAt.Format(time.RFC3339), err)
			return s.current, nil
		}
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	s.current = v.(*Dataset)
	s.loadedAt = s.now()
	s.logger.Debugf(ctx, "dataset loaded: %s of %d from %s", s.current.Kind, s.current.Len(), s.cfg.Driver)
	return s.current, nil
}

// Invalidate forces the next Get to reload.
func (s *Source) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadedAt = time.Time{}
}

func (s *Source) stale() bool {
	if s.loadedAt.IsZero() {
		return true
	}
	return s.cfg.Refresh > 0 && s.now().Sub(s.loadedAt) >= s.cfg.Refresh
}
