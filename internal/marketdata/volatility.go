package marketdata

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	xhttp "MetricPull/pkg/http"
)

const (
	bbPeriod     = 20
	bbK          = 2.0
	kcPeriod     = 20
	kcMult       = 1.5
	vwapLookback = 24
	atrPctPeriod = 14
	atrPctDays   = 30
)

func (c *Client) Atr14(ctx context.Context, symbol string) (*models.Atr14Response, error) {
	var out models.Atr14Response
	if err := c.http.GetJSON(ctx, "/metrics/atr14", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Atr14Pct(ctx context.Context, symbol string) (*models.Atr14PctResponse, error) {
	var out models.Atr14PctResponse
	if err := c.http.GetJSON(ctx, "/metrics/atr14pct", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BbWidth(ctx context.Context, symbol string) (*models.BbWidthResponse, error) {
	var out models.BbWidthResponse
	q := xhttp.Query{"symbol": symbol, "period": bbPeriod, "k": bbK}
	if err := c.http.GetJSON(ctx, "/metrics/bbwidth", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Squeeze(ctx context.Context, symbol string) (*models.SqueezeResponse, error) {
	var out models.SqueezeResponse
	q := xhttp.Query{
		"symbol":   symbol,
		"bbPeriod": bbPeriod,
		"bbK":      bbK,
		"kcPeriod": kcPeriod,
		"kcMult":   kcMult,
	}
	if err := c.http.GetJSON(ctx, "/metrics/squeeze", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) VwapDistance(ctx context.Context, symbol string) (*models.VwapDistanceResponse, error) {
	var out models.VwapDistanceResponse
	q := xhttp.Query{"symbol": symbol, "lookback": vwapLookback}
	if err := c.http.GetJSON(ctx, "/metrics/vwap-distance", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AtrPctPercentile(ctx context.Context, symbol string) (*models.AtrPctPercentileResponse, error) {
	var out models.AtrPctPercentileResponse
	q := xhttp.Query{"symbol": symbol, "period": atrPctPeriod, "days": atrPctDays}
	if err := c.http.GetJSON(ctx, "/metrics/atrpct-percentile", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ repository.VolatilitySource = (*Client)(nil)
