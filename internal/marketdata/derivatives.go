package marketdata

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	xhttp "MetricPull/pkg/http"
)

func (c *Client) OpenInterest(ctx context.Context, symbol string) (*models.OpenInterestResponse, error) {
	var out models.OpenInterestResponse
	if err := c.http.GetJSON(ctx, "/derivatives/open-interest", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FundingRate(ctx context.Context, symbol string) (*models.FundingRateResponse, error) {
	var out models.FundingRateResponse
	if err := c.http.GetJSON(ctx, "/derivatives/funding-rate", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Basis1m takes the pair name, not the symbol: the basis endpoint is keyed
// by the delivery pair on the remote side.
func (c *Client) Basis1m(ctx context.Context, pair string) (*models.Basis1mResponse, error) {
	var out models.Basis1mResponse
	if err := c.http.GetJSON(ctx, "/derivatives/basis-1m", xhttp.Query{"pair": pair}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LongShortRatio(ctx context.Context, symbol string) (*models.LongShortRatioResponse, error) {
	var out models.LongShortRatioResponse
	if err := c.http.GetJSON(ctx, "/derivatives/long-short-ratio", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Liquidations24h(ctx context.Context, symbol string) (*models.Liquidations24hResponse, error) {
	var out models.Liquidations24hResponse
	if err := c.http.GetJSON(ctx, "/derivatives/liquidations-24h", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EstimatedLeverage(ctx context.Context, symbol string) (*models.EstimatedLeverageResponse, error) {
	var out models.EstimatedLeverageResponse
	if err := c.http.GetJSON(ctx, "/derivatives/estimated-leverage", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ repository.DerivativesSource = (*Client)(nil)
