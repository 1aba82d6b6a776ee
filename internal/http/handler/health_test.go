package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jaekwang-park/todo-rest-api/internal/http/handler"
)

var testInfo = handler.ServiceInfo{Name: "todo-rest-api", Version: "1.2.3", Env: "local"}

func TestHealthHandler_GET(t *testing.T) {
	h := handler.NewHealthHandler(testInfo)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Data["status"] != "ok" {
		t.Errorf("expected status=ok, got %v", result.Data["status"])
	}
	if result.Data["service"] != "todo-rest-api" || result.Data["version"] != "1.2.3" || result.Data["env"] != "local" {
		t.Errorf("unexpected service info %v", result.Data)
	}
	if _, ok := result.Data["uptime_seconds"]; !ok {
		t.Error("expected uptime_seconds")
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	methods := []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			h := handler.NewHealthHandler(testInfo)
			req := httptest.NewRequest(method, "/health", nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status 405, got %d", w.Code)
			}

			body := decodeError(t, w.Body.Bytes())
			if body["error"] != "MethodNotAllowed" {
				t.Errorf("expected error=MethodNotAllowed, got %v", body["error"])
			}
		})
	}
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) PingContext(ctx context.Context) error {
	return m.pingFn(ctx)
}

func TestDBHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{"connected", nil, http.StatusOK},
		{"unreachable", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &mockPinger{pingFn: func(ctx context.Context) error { return tt.pingErr }}
			h := handler.NewDBHealthHandler(db, time.Second, discardLogger())
			w := httptest.NewRecorder()

			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/db", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			body := decodeError(t, w.Body.Bytes())
			if tt.wantStatus == http.StatusOK {
				data, _ := body["data"].(map[string]any)
				if data["status"] != "ok" || data["database"] != "connected" {
					t.Errorf("unexpected data %v", body["data"])
				}
				return
			}
			if body["error"] != "ServiceUnavailable" {
				t.Errorf("expected error=ServiceUnavailable, got %v", body["error"])
			}
			if body["message"] == "dial tcp: connection refused" {
				t.Error("driver error must not be echoed")
			}
		})
	}
}

func TestDBHealthHandler_Timeout(t *testing.T) {
	db := &mockPinger{pingFn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	h := handler.NewDBHealthHandler(db, 10*time.Millisecond, discardLogger())
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/db", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}
}
