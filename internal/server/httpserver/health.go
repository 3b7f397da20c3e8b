package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/yndnr/respkv-go/internal/infra/buildinfo"
)

type healthResponse struct {
	Status string          `json:"status"`
	Time   string          `json:"time"`
	Build  *buildinfo.Info `json:"build,omitempty"`
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := buildinfo.Get()
		writeJSON(w, http.StatusOK, healthResponse{
			Status: "healthy",
			Time:   time.Now().UTC().Format(time.RFC3339),
			Build:  &info,
		})
	}
}

// readyHandler reports 503 until ready returns true.
func readyHandler(ready func() bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ready", http.StatusOK
		if ready != nil && !ready() {
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		writeJSON(w, code, healthResponse{
			Status: status,
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
