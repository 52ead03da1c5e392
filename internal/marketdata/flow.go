package marketdata

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	xhttp "MetricPull/pkg/http"
)

const orderbookLevels = 20

func (c *Client) VolumeMa20(ctx context.Context, symbol string) (*models.VolumeMa20Response, error) {
	var out models.VolumeMa20Response
	if err := c.http.GetJSON(ctx, "/metrics/volume-ma20", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ObvSlope(ctx context.Context, symbol string) (*models.ObvSlopeResponse, error) {
	var out models.ObvSlopeResponse
	if err := c.http.GetJSON(ctx, "/metrics/obv-slope", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Cvd1h(ctx context.Context, symbol string) (*models.Cvd1hResponse, error) {
	var out models.Cvd1hResponse
	if err := c.http.GetJSON(ctx, "/metrics/cvd1h", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BuySellRatio(ctx context.Context, symbol string) (*models.BuySellRatioResponse, error) {
	var out models.BuySellRatioResponse
	if err := c.http.GetJSON(ctx, "/metrics/buy-sell-ratio", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OrderbookImbalance(ctx context.Context, symbol string) (*models.OrderbookImbalanceResponse, error) {
	var out models.OrderbookImbalanceResponse
	q := xhttp.Query{"symbol": symbol, "levels": orderbookLevels}
	if err := c.http.GetJSON(ctx, "/metrics/orderbook-imbalance", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ repository.FlowSource = (*Client)(nil)
