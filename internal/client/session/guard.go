package session

import (
	"context"

	"github.com/dmitrijs2005/nauticalflow/internal/logging"
	"github.com/dmitrijs2005/nauticalflow/internal/metrics"
)

// ExpiryChecker decides whether a stored token is still usable.
// *token.Inspector implements it.
type ExpiryChecker interface {
	IsExpired(raw string) bool
}

// Guard is the entry gate of every protected command.
type Guard struct {
	store     Store
	inspector ExpiryChecker
	ctrl      *Controller
	log       logging.Logger
}

func NewGuard(store Store, inspector ExpiryChecker, ctrl *Controller, log logging.Logger) *Guard {
	return &Guard{store: store, inspector: inspector, ctrl: ctrl, log: log}
}

// Check returns true when a non-expired token is stored. Otherwise it logs
// the user out (recording ReasonExpired for an expired token) and returns
// false; the command must not run.
func (g *Guard) Check(ctx context.Context) bool {
	tok, err := g.store.GetToken(ctx)
	if err != nil {
		g.log.Warn(ctx, "session store unreadable, treating as logged out", "error", err)
	}

	if err != nil || tok == "" {
		metrics.GuardDecisions.WithLabelValues(metrics.GuardUnauthenticated).Inc()
		_ = g.ctrl.Logout(ctx, ReasonNone)
		return false
	}

	if g.inspector.IsExpired(tok) {
		metrics.GuardDecisions.WithLabelValues(metrics.GuardExpired).Inc()
		_ = g.ctrl.Logout(ctx, ReasonExpired)
		return false
	}

	metrics.GuardDecisions.WithLabelValues(metrics.GuardAllowed).Inc()
	return true
}
