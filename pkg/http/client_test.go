package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("http://localhost:8080", "")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestGetJSONSendsHeaders(t *testing.T) {
	var gotKey, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "secret")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	var out struct{}
	if err := c.GetJSON(context.Background(), "/metrics/rsi14", nil, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("X-API-KEY = %q, want secret", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestGetJSONQueryEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "k")
	q := Query{
		"symbol":  "BTCUSDC",
		"window":  2,
		"k":       2.0,
		"empty":   "",
		"skipped": nil,
	}
	var out struct{}
	if err := c.GetJSON(context.Background(), "/metrics/hhhl", q, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	want := "k=2&symbol=BTCUSDC&window=2"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestGetJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "k")
	err := c.GetJSON(context.Background(), "/metrics/atr14", nil, nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if se.Code != http.StatusBadGateway {
		t.Errorf("code = %d, want 502", se.Code)
	}
	if se.Body != "upstream exploded" {
		t.Errorf("body = %q", se.Body)
	}
	if ErrorKind(err) != "http" {
		t.Errorf("ErrorKind = %q, want http", ErrorKind(err))
	}
}

func TestGetJSONTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "k", WithTimeout(20*time.Millisecond))
	err := c.GetJSON(context.Background(), "/metrics/atr14", nil, nil)
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TimeoutError, got %v", err)
	}
	if ErrorKind(err) != "timeout" {
		t.Errorf("ErrorKind = %q, want timeout", ErrorKind(err))
	}
}

func TestGetJSONNetworkError(t *testing.T) {
	c, _ := NewClient("http://127.0.0.1:1", "k", WithTimeout(time.Second))
	err := c.GetJSON(context.Background(), "/metrics/atr14", nil, nil)
	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
	if ErrorKind(err) != "network" {
		t.Errorf("ErrorKind = %q, want network", ErrorKind(err))
	}
}

func TestGetJSONDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rsi": 61.2, "source": "binance"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "k")
	var out struct {
		Rsi    *float64 `json:"rsi"`
		Source string   `json:"source"`
	}
	if err := c.GetJSON(context.Background(), "/metrics/rsi14", nil, &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if out.Rsi == nil || *out.Rsi != 61.2 {
		t.Errorf("rsi = %v, want 61.2", out.Rsi)
	}
	if out.Source != "binance" {
		t.Errorf("source = %q", out.Source)
	}
}
