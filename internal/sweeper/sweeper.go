// Package sweeper periodically closes idle dashboard sessions and prunes
// expired state from stores that do not expire entries on their own.
package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/XavierBriggs/Janus/internal/logger"
)

// Evictor closes idle sessions and reports how many it closed
type Evictor interface {
	EvictIdle() int
}

// Pruner drops expired stored state and reports how many entries it removed
type Pruner interface {
	Prune() int
}

// Sweeper runs eviction on a fixed interval
type Sweeper struct {
	sessions Evictor
	store    Pruner
	interval time.Duration
	log      *logger.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSweeper creates a sweeper. store may be nil.
func NewSweeper(sessions Evictor, store Pruner, interval time.Duration, log *logger.Logger) *Sweeper {
	if log == nil {
		log = logger.Discard()
	}
	return &Sweeper{
		sessions: sessions,
		store:    store,
		interval: interval,
		log:      log.WithPrefix("Sweeper"),
		stopChan: make(chan struct{}),
	}
}

// Start begins sweeping in the background
func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop halts the sweeper and waits for an in-progress sweep to finish
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}

// Sweep runs one pass and returns the evicted session count
func (s *Sweeper) Sweep() int {
	evicted := s.sessions.EvictIdle()
	if evicted > 0 {
		s.log.Infof("evicted %d idle session(s)", evicted)
	}

	if s.store != nil {
		if pruned := s.store.Prune(); pruned > 0 {
			s.log.Debugf("pruned %d expired session record(s)", pruned)
		}
	}
	return evicted
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Infof("started (every %s)", s.interval)

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopChan:
			s.log.Infof("stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}
