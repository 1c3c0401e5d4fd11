// Package health provides liveness and readiness HTTP endpoints with
// pluggable dependency checks.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Check probes a single dependency and returns nil when it is healthy.
type Check func(ctx context.Context) error

// Status is the reported health of a component.
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Report is the JSON body returned by the health endpoints.
type Report struct {
	Status    Status            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]Result `json:"checks,omitempty"`
}

// Result is the outcome of one dependency check.
type Result struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Handler serves the health endpoints.
type Handler struct {
	mu     sync.RWMutex
	checks map[string]Check
}

// NewHandler creates an empty health handler.
func NewHandler() *Handler {
	return &Handler{checks: make(map[string]Check)}
}

// Register adds a named dependency check evaluated on readiness probes.
func (h *Handler) Register(name string, check Check) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Liveness always reports up while the process is running.
func (h *Handler) Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeReport(w, http.StatusOK, Report{
			Status:    StatusUp,
			Timestamp: time.Now().UTC(),
		})
	}
}

// Readiness evaluates every registered check and reports 503 when any fails.
func (h *Handler) Readiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		h.mu.RLock()
		checks := make(map[string]Check, len(h.checks))
		for name, c := range h.checks {
			checks[name] = c
		}
		h.mu.RUnlock()

		report := Report{
			Status:    StatusUp,
			Timestamp: time.Now().UTC(),
			Checks:    make(map[string]Result, len(checks)),
		}

		for name, check := range checks {
			if err := check(ctx); err != nil {
				report.Checks[name] = Result{Status: StatusDown, Error: err.Error()}
				report.Status = StatusDown
			} else {
				report.Checks[name] = Result{Status: StatusUp}
			}
		}

		status := http.StatusOK
		if report.Status == StatusDown {
			status = http.StatusServiceUnavailable
		}
		writeReport(w, status, report)
	}
}

func writeReport(w http.ResponseWriter, status int, report Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}
