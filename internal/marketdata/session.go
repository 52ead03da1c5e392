package marketdata

import (
	"context"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/domain/repository"
	xhttp "MetricPull/pkg/http"
)

func (c *Client) VwapDaily(ctx context.Context, symbol string) (*models.VwapDailyResponse, error) {
	var out models.VwapDailyResponse
	if err := c.http.GetJSON(ctx, "/session/vwap-daily", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Avwap anchors at anchorTs (unix ms); 0 omits the param and lets the
// server pick its default anchor.
func (c *Client) Avwap(ctx context.Context, symbol string, anchorTs int64) (*models.AvwapResponse, error) {
	var out models.AvwapResponse
	q := xhttp.Query{"symbol": symbol}
	if anchorTs > 0 {
		q["anchorTs"] = anchorTs
	}
	if err := c.http.GetJSON(ctx, "/session/avwap", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PrevDayHiLo(ctx context.Context, symbol string) (*models.PrevDayHiLoResponse, error) {
	var out models.PrevDayHiLoResponse
	if err := c.http.GetJSON(ctx, "/session/prev-day-hilo", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OpeningRange60(ctx context.Context, symbol string) (*models.OpeningRangeResponse, error) {
	var out models.OpeningRangeResponse
	if err := c.http.GetJSON(ctx, "/session/opening-range-60", xhttp.Query{"symbol": symbol}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Sessions(ctx context.Context) (*models.SessionsResponse, error) {
	var out models.SessionsResponse
	if err := c.http.GetJSON(ctx, "/session/sessions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MacroFlag(ctx context.Context) (*models.MacroFlagResponse, error) {
	var out models.MacroFlagResponse
	if err := c.http.GetJSON(ctx, "/session/macro-flag", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ repository.SessionSource = (*Client)(nil)
