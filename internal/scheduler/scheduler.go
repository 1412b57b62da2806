// Package scheduler runs the periodic overdue-maintenance sweep.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fleetdeck-dev/fleetdeck/internal/store"
)

type Scheduler struct {
	store    *store.Store
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(st *store.Store, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		store:    st,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start sweeps immediately, then on every tick, until Stop is called.
func (s *Scheduler) Start() {
	log.Printf("Starting maintenance sweep every %s", s.interval)

	go func() {
		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	log.Println("Stopping maintenance sweep")
	s.cancel()
}

func (s *Scheduler) sweep() {
	flagged, err := s.store.SweepOverdueComponents()

	if err != nil {
		log.Printf("Maintenance sweep failed: %v", err)
		return
	}

	if flagged > 0 {
		log.Printf("Maintenance sweep flagged %d overdue components", flagged)
	}
}
