package metric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestGlobal(t *testing.T) {
	if Global() != Global() {
		t.Error("Global() should return the same instance")
	}
}

func TestHandler(t *testing.T) {
	body := scrape(t, Handler())

	if !strings.Contains(body, "go_goroutines") {
		t.Error("expected go_goroutines metric")
	}
	if !strings.Contains(body, "process_") {
		t.Error("expected process metrics")
	}
}

func TestConnectionMetrics(t *testing.T) {
	r := NewRegistry()

	r.ConnOpened()
	r.ConnOpened()
	r.ConnOpened()
	r.ConnClosed()

	body := scrape(t, r.Handler())
	for _, want := range []string{
		"respkv_connections_total 3",
		"respkv_connections_active 2",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q", want)
		}
	}
}

func TestCommandMetrics(t *testing.T) {
	r := NewRegistry()

	r.RecordCommand("get", time.Millisecond)
	r.RecordCommand("get", 2*time.Millisecond)
	r.RecordCommand("set", time.Millisecond)
	r.RecordCommandError("RKV-CMD-4001")
	r.RecordCommandError("")
	r.RecordDecodeError("bad_bulk_string_length")

	body := scrape(t, r.Handler())
	for _, want := range []string{
		`respkv_commands_total{command="get"} 2`,
		`respkv_commands_total{command="set"} 1`,
		`respkv_command_errors_total{code="RKV-CMD-4001"} 1`,
		`respkv_command_errors_total{code="unknown"} 1`,
		`respkv_decode_errors_total{kind="bad_bulk_string_length"} 1`,
		`respkv_command_duration_seconds_count{command="get"} 2`,
		"respkv_command_duration_seconds_bucket",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected %q", want)
		}
	}
}
