package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"MetricPull/pkg/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.Key = "test-key"
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, srv
}

func capture(t *testing.T, body string) (http.HandlerFunc, *url.URL) {
	t.Helper()
	u := &url.URL{}
	return func(w http.ResponseWriter, r *http.Request) {
		*u = *r.URL
		w.Write([]byte(body))
	}, u
}

func TestNewClientRequiresKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.BaseURL = "http://localhost:8080"
	if _, err := NewClient(cfg); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestHHHLSendsWindow(t *testing.T) {
	h, u := capture(t, `{"symbol":"BTCUSDC","bias":"neutral","source":"binance"}`)
	c, _ := testClient(t, h)

	resp, err := c.HHHL(context.Background(), "BTCUSDC")
	if err != nil {
		t.Fatalf("HHHL: %v", err)
	}
	if u.Path != "/metrics/hhhl" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("symbol") != "BTCUSDC" || q.Get("window") != "2" {
		t.Errorf("query = %q", u.RawQuery)
	}
	if resp.Source != "binance" {
		t.Errorf("source = %q", resp.Source)
	}
}

func TestMacdHistogramSendsPeriods(t *testing.T) {
	h, u := capture(t, `{"sign":"flat","source":"binance"}`)
	c, _ := testClient(t, h)

	if _, err := c.MacdHistogram(context.Background(), "BTCUSDC"); err != nil {
		t.Fatalf("MacdHistogram: %v", err)
	}
	q := u.Query()
	if q.Get("fast") != "12" || q.Get("slow") != "26" || q.Get("signal") != "9" {
		t.Errorf("query = %q", u.RawQuery)
	}
}

func TestSqueezeSendsBandParams(t *testing.T) {
	h, u := capture(t, `{"state":"neutral","source":"binance"}`)
	c, _ := testClient(t, h)

	if _, err := c.Squeeze(context.Background(), "BTCUSDC"); err != nil {
		t.Fatalf("Squeeze: %v", err)
	}
	q := u.Query()
	if q.Get("bbPeriod") != "20" || q.Get("bbK") != "2" || q.Get("kcPeriod") != "20" || q.Get("kcMult") != "1.5" {
		t.Errorf("query = %q", u.RawQuery)
	}
}

func TestOrderbookImbalanceSendsLevels(t *testing.T) {
	h, u := capture(t, `{"source":"binance"}`)
	c, _ := testClient(t, h)

	if _, err := c.OrderbookImbalance(context.Background(), "BTCUSDC"); err != nil {
		t.Fatalf("OrderbookImbalance: %v", err)
	}
	if u.Query().Get("levels") != "20" {
		t.Errorf("query = %q", u.RawQuery)
	}
}

func TestBasis1mUsesPairParam(t *testing.T) {
	h, u := capture(t, `{"pair":"BTCUSDT","source":"binance"}`)
	c, _ := testClient(t, h)

	if _, err := c.Basis1m(context.Background(), "BTCUSDT"); err != nil {
		t.Fatalf("Basis1m: %v", err)
	}
	if u.Path != "/derivatives/basis-1m" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("pair") != "BTCUSDT" {
		t.Errorf("query = %q", u.RawQuery)
	}
	if q.Has("symbol") {
		t.Errorf("symbol should not be sent: %q", u.RawQuery)
	}
}

func TestAvwapAnchorOmittedWhenZero(t *testing.T) {
	h, u := capture(t, `{"source":"binance"}`)
	c, _ := testClient(t, h)

	if _, err := c.Avwap(context.Background(), "BTCUSDC", 0); err != nil {
		t.Fatalf("Avwap: %v", err)
	}
	if u.Query().Has("anchorTs") {
		t.Errorf("anchorTs should be omitted: %q", u.RawQuery)
	}

	if _, err := c.Avwap(context.Background(), "BTCUSDC", 1756600000000); err != nil {
		t.Fatalf("Avwap: %v", err)
	}
	if u.Query().Get("anchorTs") != "1756600000000" {
		t.Errorf("anchorTs = %q", u.Query().Get("anchorTs"))
	}
}

func TestGlobalEndpointsSendNoSymbol(t *testing.T) {
	h, u := capture(t, `{"utcDayStart":1756598400000,"source":"binance"}`)
	c, _ := testClient(t, h)

	if _, err := c.Sessions(context.Background()); err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if u.Path != "/session/sessions" || u.RawQuery != "" {
		t.Errorf("url = %q?%q", u.Path, u.RawQuery)
	}

	if _, err := c.MacroFlag(context.Background()); err != nil {
		t.Fatalf("MacroFlag: %v", err)
	}
	if u.Path != "/session/macro-flag" || u.RawQuery != "" {
		t.Errorf("url = %q?%q", u.Path, u.RawQuery)
	}
}

func TestNullableFieldsDecodeToNil(t *testing.T) {
	h, _ := capture(t, `{"symbol":"BTCUSDC","fundingRate":null,"fundingTime":null,"fundingRatePct":null,"source":"binance"}`)
	c, _ := testClient(t, h)

	resp, err := c.FundingRate(context.Background(), "BTCUSDC")
	if err != nil {
		t.Fatalf("FundingRate: %v", err)
	}
	if resp.FundingRate != nil || resp.FundingRatePct != nil {
		t.Errorf("null fields decoded non-nil: %+v", resp)
	}
}
