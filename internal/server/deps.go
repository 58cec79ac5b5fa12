package server

import (
	"time"

	"github.com/kanishkdw/mita/internal/handler"
	"go.uber.org/zap"
)

// Deps holds server dependencies.
type Deps struct {
	Ready *handler.ReadyHandler
}

// NewDeps creates dependencies from the optional backing services.
// A nil pinger is skipped, so readiness only covers what is configured.
func NewDeps(log *zap.Logger, readyTimeout time.Duration, postgres, redis handler.Pinger) *Deps {
	var checks []handler.Check
	if postgres != nil {
		checks = append(checks, handler.Check{Name: "postgres", Pinger: postgres})
	}
	if redis != nil {
		checks = append(checks, handler.Check{Name: "redis", Pinger: redis})
	}

	return &Deps{
		Ready: &handler.ReadyHandler{
			Checks:  checks,
			Timeout: readyTimeout,
			Log:     log,
		},
	}
}
