package marketdata

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	xhttp "MetricPull/pkg/http"
)

// Server-side defaults, sent explicitly so responses are reproducible
// even if the remote changes its defaults.
const (
	hhhlWindow = 2
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9
)

func (c *Client) Ema200(ctx context.Context, symbol string) (*models.Ema200Response, error) {
	var out models.Ema200Response
	if err := c.http.GetJSON(ctx, "/metrics/ema200", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ema50(ctx context.Context, symbol string) (*models.Ema50Response, error) {
	var out models.Ema50Response
	if err := c.http.GetJSON(ctx, "/metrics/ema50", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ema21(ctx context.Context, symbol string) (*models.Ema21Response, error) {
	var out models.Ema21Response
	if err := c.http.GetJSON(ctx, "/metrics/ema21", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ema200Slope(ctx context.Context, symbol string) (*models.Ema200SlopeResponse, error) {
	var out models.Ema200SlopeResponse
	if err := c.http.GetJSON(ctx, "/metrics/ema200-slope", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HHHL(ctx context.Context, symbol string) (*models.HHHLResponse, error) {
	var out models.HHHLResponse
	q := xhttp.Query{"symbol": symbol, "window": hhhlWindow}
	if err := c.http.GetJSON(ctx, "/metrics/hhhl", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Rsi14(ctx context.Context, symbol string) (*models.Rsi14Response, error) {
	var out models.Rsi14Response
	if err := c.http.GetJSON(ctx, "/metrics/rsi14", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MacdHistogram(ctx context.Context, symbol string) (*models.MacdHistogramResponse, error) {
	var out models.MacdHistogramResponse
	q := xhttp.Query{"symbol": symbol, "fast": macdFast, "slow": macdSlow, "signal": macdSignal}
	if err := c.http.GetJSON(ctx, "/metrics/macd-histogram", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ repository.TendenciesSource = (*Client)(nil)
