package di

import (
	"fmt"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	"MetricPull/internal/handler/api"
	"MetricPull/internal/marketdata"
	"MetricPull/internal/scheduler"
	"MetricPull/internal/usecase"
	"MetricPull/pkg/config"
	"MetricPull/pkg/logger"
	"MetricPull/pkg/metrics"
	"MetricPull/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketDataClient creates the analytics API client. Fails when
// the API key is missing.
func ProvideMarketDataClient(cfg *config.Config) (*marketdata.Client, error) {
	c, err := marketdata.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("marketdata client: %w", err)
	}
	return c, nil
}

// ProvideStreamHub creates the websocket broadcast hub.
func ProvideStreamHub(l *logger.Logger) *api.StreamHub {
	return api.NewStreamHub(l)
}

// ProvidePanelDeps bundles the collaborators shared by every panel.
func ProvidePanelDeps(l *logger.Logger, m repository.Metrics, hub *api.StreamHub) usecase.PanelDeps {
	return usecase.PanelDeps{Log: l, Metrics: m, Notify: hub.Broadcast}
}

func ProvideTendenciesPanel(cfg *config.Config, c *marketdata.Client, deps usecase.PanelDeps) *usecase.Panel[models.TendenciesSnapshot] {
	return usecase.NewTendenciesPanel(cfg, c, deps)
}

func ProvideVolatilityPanel(cfg *config.Config, c *marketdata.Client, deps usecase.PanelDeps) *usecase.Panel[models.VolatilitySnapshot] {
	return usecase.NewVolatilityPanel(cfg, c, deps)
}

func ProvideFlowPanel(cfg *config.Config, c *marketdata.Client, deps usecase.PanelDeps) *usecase.Panel[models.FlowSnapshot] {
	return usecase.NewFlowPanel(cfg, c, deps)
}

func ProvideDerivativesPanel(cfg *config.Config, c *marketdata.Client, deps usecase.PanelDeps) *usecase.Panel[models.DerivativesSnapshot] {
	return usecase.NewDerivativesPanel(cfg, c, deps)
}

func ProvideSessionPanel(cfg *config.Config, c *marketdata.Client, deps usecase.PanelDeps) *usecase.Panel[models.SessionSnapshot] {
	return usecase.NewSessionPanel(cfg, c, deps)
}

// ProvideScheduler registers the panels in display order.
func ProvideScheduler(
	l *logger.Logger,
	tendencies *usecase.Panel[models.TendenciesSnapshot],
	volatility *usecase.Panel[models.VolatilitySnapshot],
	flow *usecase.Panel[models.FlowSnapshot],
	derivatives *usecase.Panel[models.DerivativesSnapshot],
	session *usecase.Panel[models.SessionSnapshot],
) *scheduler.Scheduler {
	return scheduler.New(l, tendencies, volatility, flow, derivatives, session)
}

// ProvidePanelsHandler creates the read API handler.
func ProvidePanelsHandler(l *logger.Logger, sched *scheduler.Scheduler, hub *api.StreamHub) *api.PanelsEchoHandler {
	return api.NewPanelsEchoHandler(l, sched, hub)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, l *logger.Logger, sched *scheduler.Scheduler, hub *api.StreamHub, h *api.PanelsEchoHandler) *server.App {
	return server.New(cfg, l, sched, hub, h)
}
