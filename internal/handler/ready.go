package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/kanishkdw/mita/internal/model"
	"go.uber.org/zap"
)

const defaultReadyTimeout = 2 * time.Second

// Pinger is anything that can report whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check is a named readiness dependency.
type Check struct {
	Name   string
	Pinger Pinger
}

// ReadyHandler handles GET /ready on the admin listener.
type ReadyHandler struct {
	Checks  []Check
	Timeout time.Duration
	Log     *zap.Logger
}

// Ready pings every check and reports 503 if any of them fails.
func (h *ReadyHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := model.Readiness{
		Status: model.StatusUp,
		Checks: make(map[string]string, len(h.Checks)),
	}

	for _, c := range h.Checks {
		if err := h.ping(r.Context(), c); err != nil {
			resp.Status = model.StatusDown
			resp.Checks[c.Name] = model.StatusDown
			h.logger().Warn("readiness check failed", zap.String("check", c.Name), zap.Error(err))
			continue
		}
		resp.Checks[c.Name] = model.StatusUp
	}

	status := http.StatusOK
	if resp.Status != model.StatusUp {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *ReadyHandler) ping(ctx context.Context, c Check) error {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return c.Pinger.Ping(ctx)
}

func (h *ReadyHandler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
