package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is satisfied by the PostgreSQL pool and the memory store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Database(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	store   Pinger
	timeout time.Duration
}

func NewHealthHandler(store Pinger) HealthHandler {
	return &healthHandlerImpl{store: store, timeout: 2 * time.Second}
}

func (h *healthHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("HRMS API"))
}

func (h *healthHandlerImpl) Database(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status, code := "Healthy", http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		status, code = "Unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
