package marketdata

import (
	"MetricPull/pkg/config"
	xhttp "MetricPull/pkg/http"
)

// Client is the typed surface over the remote analytics API. It implements
// every per-panel source interface in internal/domain/repository; the
// fetchers live in one file per metric group.
type Client struct {
	http *xhttp.Client
}

// NewClient wires the transport from config. Construction fails when the
// API key is absent so a misconfigured process dies at startup, not on
// the first poll.
func NewClient(cfg *config.Config) (*Client, error) {
	hc, err := xhttp.NewClient(cfg.API.BaseURL, cfg.API.Key,
		xhttp.WithTimeout(cfg.API.Timeout),
		xhttp.WithRateLimit(cfg.API.RequestsPerSec),
	)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}
