package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"MetricPull/internal/handler/api"
	"MetricPull/internal/scheduler"
	"MetricPull/pkg/config"
	xhttp "MetricPull/pkg/http"
	applogger "MetricPull/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	sched      *scheduler.Scheduler
	stream     *api.StreamHub
	handler    *api.PanelsEchoHandler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	sched *scheduler.Scheduler,
	stream *api.StreamHub,
	handler *api.PanelsEchoHandler,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		sched:   sched,
		stream:  stream,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.log),
	)

	// Panels load once at startup; polled panels keep refreshing on
	// their tickers after that.
	a.sched.Start(ctx)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("started",
		applogger.String("symbol", a.cfg.Symbol),
		applogger.Int("port", a.cfg.Server.Port),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services: timers first so no new batches
// start, then the stream, then the HTTP server.
func (a *App) shutdown(ctx context.Context) error {
	a.sched.Stop()
	a.stream.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.log.Info("shutdown complete")
	return nil
}
