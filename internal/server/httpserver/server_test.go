package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yndnr/respkv-go/internal/telemetry/logger"
	"github.com/yndnr/respkv-go/internal/telemetry/metric"
)

func testLogger(t *testing.T) (logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("logger.New() error = %v", err)
	}
	return l, &buf
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	l, _ := testLogger(t)
	h := NewRouter(&RouterConfig{Logger: l, Metrics: metric.NewRegistry()})

	rec := get(t, h, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" || body.Build == nil || body.Build.GoVersion == "" {
		t.Errorf("unexpected body %+v", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header should be set")
	}
}

func TestRouter_Ready(t *testing.T) {
	var ready atomic.Bool
	l, _ := testLogger(t)
	h := NewRouter(&RouterConfig{Logger: l, Metrics: metric.NewRegistry(), Ready: ready.Load})

	if rec := get(t, h, "/ready"); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status before ready = %d, want 503", rec.Code)
	}

	ready.Store(true)
	rec := get(t, h, "/ready")
	if rec.Code != http.StatusOK {
		t.Errorf("status when ready = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ready"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	reg := metric.NewRegistry()
	reg.ConnOpened()

	l, _ := testLogger(t)
	h := NewRouter(&RouterConfig{Logger: l, Metrics: reg})

	rec := get(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "respkv_connections_total 1") {
		t.Error("expected respkv_connections_total 1")
	}
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	h := NewRouter(nil)

	if rec := get(t, h, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d, want 404", rec.Code)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /health = %d, want 405", rec.Code)
	}
}

func TestRequestID_Reused(t *testing.T) {
	var seen string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestIDFromContext(r.Context())
	}), RequestID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-given")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-given" {
		t.Errorf("request id = %q, want req-given", seen)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, ",") != "a,b,handler" {
		t.Errorf("order = %v", order)
	}
}

func TestRecover(t *testing.T) {
	l, logs := testLogger(t)
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), RequestID(), Recover(l))

	rec := get(t, h, "/")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "panic recovered") {
		t.Error("panic should be logged")
	}
}

func TestServer_StartShutdown(t *testing.T) {
	srv := New("127.0.0.1:0", NewRouter(&RouterConfig{Metrics: metric.NewRegistry()}))
	errc := make(chan error, 1)
	if err := srv.Start(errc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + srv.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	select {
	case err := <-errc:
		t.Errorf("unexpected serve error: %v", err)
	default:
	}
}
