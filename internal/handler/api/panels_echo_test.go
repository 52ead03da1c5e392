package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"MetricPull/internal/domain/models"
	"MetricPull/internal/scheduler"
	"MetricPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubPanel struct {
	name string

	mu        sync.Mutex
	refreshes int
}

func (p *stubPanel) Name() string            { return p.name }
func (p *stubPanel) Interval() time.Duration { return 0 }

func (p *stubPanel) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.refreshes++
	p.mu.Unlock()
}

func (p *stubPanel) State() models.PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return models.PanelState{Panel: p.name, Seq: uint64(p.refreshes)}
}

func (p *stubPanel) Close() {}

func (p *stubPanel) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshes
}

func setupHandler(t *testing.T) (*echo.Echo, *stubPanel, *scheduler.Scheduler) {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	flow := &stubPanel{name: "flow"}
	sched := scheduler.New(l, flow)
	sched.Start(context.Background())
	t.Cleanup(sched.Stop)

	h := NewPanelsEchoHandler(l, sched, NewStreamHub(l))
	e := echo.New()
	h.RegisterRoutes(e)
	return e, flow, sched
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestListPanels(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/panels", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data, ok := body["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("data = %v", body["data"])
	}
}

func TestGetPanel(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/panels/flow", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["panel"] != "flow" {
		t.Errorf("panel = %v", data["panel"])
	}
}

func TestGetPanelUnknownName(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/panels/bogus", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := decodeBody(t, rec)
	if body["status"].(float64) != http.StatusBadRequest {
		t.Errorf("status = %v, want 400 envelope", body["status"])
	}
}

func TestRefreshPanel(t *testing.T) {
	e, flow, _ := setupHandler(t)

	// initial load
	deadline := time.Now().Add(2 * time.Second)
	for flow.count() < 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/panels/flow/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"].(float64) != http.StatusAccepted {
		t.Errorf("status = %v, want 202 envelope", body["status"])
	}

	deadline = time.Now().Add(2 * time.Second)
	for flow.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if flow.count() != 2 {
		t.Errorf("refreshes = %d, want 2", flow.count())
	}
}

func TestHealth(t *testing.T) {
	e, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
