//go:build wireinject
// +build wireinject

package di

import (
	"MetricPull/pkg/config"
	"MetricPull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Upstream client
		ProvideMarketDataClient,

		// Panels
		ProvideStreamHub,
		ProvidePanelDeps,
		ProvideTendenciesPanel,
		ProvideVolatilityPanel,
		ProvideFlowPanel,
		ProvideDerivativesPanel,
		ProvideSessionPanel,

		// Scheduling + HTTP surface
		ProvideScheduler,
		ProvidePanelsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
