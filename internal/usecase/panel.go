package usecase

import (
	"context"
	"sync"
	"time"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	xhttp "MetricPull/pkg/http"
	"MetricPull/pkg/logger"
)

// Builder produces one complete snapshot for a panel, or an error. It is
// the only per-panel code; everything around it is shared.
type Builder[S any] func(ctx context.Context) (*S, error)

// Snapshotter is the panel surface the scheduler and handlers consume.
type Snapshotter interface {
	Name() string
	Interval() time.Duration
	Refresh(ctx context.Context)
	State() models.PanelState
	Close()
}

// PanelDeps are the shared collaborators injected into every panel.
// Notify, when set, receives each published state (the stream hub).
type PanelDeps struct {
	Log     *logger.Logger
	Metrics repository.Metrics
	Notify  func(models.PanelState)
}

// Panel aggregates one metric group into an atomically replaced snapshot.
// One generic implementation serves all five panels.
type Panel[S any] struct {
	name     string
	interval time.Duration
	build    Builder[S]
	deps     PanelDeps

	mu      sync.Mutex
	state   models.PanelState
	nextSeq uint64
	lastSeq uint64
	closed  bool
}

func NewPanel[S any](name string, interval time.Duration, build Builder[S], deps PanelDeps) *Panel[S] {
	return &Panel[S]{
		name:     name,
		interval: interval,
		build:    build,
		deps:     deps,
		state:    models.PanelState{Panel: name},
	}
}

func (p *Panel[S]) Name() string            { return p.name }
func (p *Panel[S]) Interval() time.Duration { return p.interval }

// Refresh runs one batch and publishes the outcome: a complete snapshot
// when every call succeeded, or an error state with every field cleared.
// Partial batches are never visible.
func (p *Panel[S]) Refresh(ctx context.Context) {
	seq := p.claimSeq()
	start := time.Now()

	snap, err := p.build(ctx)
	elapsed := time.Since(start)

	if err != nil {
		msg := err.Error()
		p.deps.Metrics.RecordRefresh(p.name, false, elapsed.Seconds())
		p.deps.Metrics.RecordUpstreamError(xhttp.ErrorKind(err))
		p.deps.Log.Warn("panel refresh failed",
			logger.String("panel", p.name),
			logger.Uint64("seq", seq),
			logger.Error(err),
		)
		p.publish(seq, models.PanelState{Panel: p.name, Error: &msg})
		return
	}

	p.deps.Metrics.RecordRefresh(p.name, true, elapsed.Seconds())
	p.deps.Log.Info("panel refreshed",
		logger.String("panel", p.name),
		logger.Uint64("seq", seq),
		logger.Duration("took", elapsed),
	)
	p.publish(seq, models.PanelState{Panel: p.name, Snapshot: snap})
}

// State returns a copy of the live state.
func (p *Panel[S]) State() models.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Close marks the panel torn down; any batch still in flight is discarded
// when it tries to publish.
func (p *Panel[S]) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *Panel[S]) claimSeq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextSeq++
	return p.nextSeq
}

// publish replaces the live state wholesale. The last batch to complete
// wins, even if a newer batch already published; when that overwrite
// happens it is logged with both sequence numbers.
func (p *Panel[S]) publish(seq uint64, st models.PanelState) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.deps.Log.Debug("panel closed, batch discarded",
			logger.String("panel", p.name),
			logger.Uint64("seq", seq),
		)
		return
	}
	if seq < p.lastSeq {
		p.deps.Log.Warn("stale batch overwrote newer snapshot",
			logger.String("panel", p.name),
			logger.Uint64("seq", seq),
			logger.Uint64("lastSeq", p.lastSeq),
		)
	}
	now := time.Now().UTC()
	st.Seq = seq
	st.UpdatedAt = &now
	p.state = st
	p.lastSeq = seq
	notify := p.deps.Notify
	p.mu.Unlock()

	if st.Error == nil {
		p.deps.Metrics.RecordLastRefresh(p.name, float64(now.Unix()))
	}
	if notify != nil {
		notify(st)
	}
}
