package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/usecase"
	"MetricPull/pkg/logger"
)

// Scheduler drives panel refreshes: every panel loads once at startup,
// panels with a positive interval then poll on their own ticker, and any
// panel can be refreshed manually through Trigger.
type Scheduler struct {
	panels  map[string]usecase.Snapshotter
	ordered []usecase.Snapshotter
	log     *logger.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(log *logger.Logger, panels ...usecase.Snapshotter) *Scheduler {
	m := make(map[string]usecase.Snapshotter, len(panels))
	for _, p := range panels {
		m[p.Name()] = p
	}
	return &Scheduler{panels: m, ordered: panels, log: log}
}

// Start launches one goroutine per panel. Loops stop when ctx is canceled
// or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	for _, p := range s.ordered {
		s.wg.Add(1)
		go s.run(p)
	}
	s.log.Info("scheduler started", logger.Int("panels", len(s.ordered)))
}

func (s *Scheduler) run(p usecase.Snapshotter) {
	defer s.wg.Done()

	p.Refresh(s.ctx)

	interval := p.Interval()
	if interval <= 0 {
		s.log.Debug("panel is manual-only", logger.String("panel", p.Name()))
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.Refresh(s.ctx)
		case <-s.ctx.Done():
			return
		}
	}
}

// Trigger refreshes one panel out of band. The refresh runs on the
// scheduler's lifetime context so callers are not held hostage by slow
// upstreams; the result lands in the panel state as usual.
func (s *Scheduler) Trigger(name string) error {
	p, ok := s.panels[name]
	if !ok {
		return fmt.Errorf("unknown panel %q", name)
	}
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return fmt.Errorf("scheduler not running")
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		p.Refresh(ctx)
	}()
	return nil
}

// State returns the live state of one panel.
func (s *Scheduler) State(name string) (models.PanelState, error) {
	p, ok := s.panels[name]
	if !ok {
		return models.PanelState{}, fmt.Errorf("unknown panel %q", name)
	}
	return p.State(), nil
}

// States returns every panel's live state in registration order.
func (s *Scheduler) States() []models.PanelState {
	out := make([]models.PanelState, 0, len(s.ordered))
	for _, p := range s.ordered {
		out = append(out, p.State())
	}
	return out
}

// Stop cancels every loop, waits for in-flight refreshes, then closes the
// panels so late publishes are discarded.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	for _, p := range s.ordered {
		p.Close()
	}
	s.log.Info("scheduler stopped")
}
