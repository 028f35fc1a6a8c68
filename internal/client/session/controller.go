package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/nauticalflow/internal/logging"
	"github.com/dmitrijs2005/nauticalflow/internal/metrics"
)

// Navigator moves the console to another screen. Navigating to the entry
// path ends whatever the current screen was doing.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Navigate(ctx context.Context, path string) { f(ctx, path) }

// Controller clears the session record and navigates to the login entry
// point. Expiry, explicit logout and rejected credentials all end here.
//
// Navigate is called with the controller's lock held and must not call
// back into the controller.
type Controller struct {
	store Store
	nav   Navigator
	entry string
	log   logging.Logger

	mu sync.Mutex
}

func NewController(store Store, nav Navigator, entryPath string, log logging.Logger) *Controller {
	return &Controller{store: store, nav: nav, entry: entryPath, log: log}
}

// EntryPath is where every logout navigates to.
func (c *Controller) EntryPath() string {
	return c.entry
}

// Logout records reason (if any), clears the session and navigates to the
// entry path exactly once. The returned error always matches
// ErrSessionTerminated; storage failures are joined to it but never stop
// the navigation.
func (c *Controller) Logout(ctx context.Context, reason LogoutReason) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.logout(ctx, reason)
}

// Terminate ends the session after the backend rejected token. Only the
// session that still holds token is logged out: once it is cleared, or
// replaced by a newer login, later rejections of the same token return
// ErrSessionTerminated without a second navigation. An unreadable store
// logs out.
func (c *Controller) Terminate(ctx context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, err := c.store.GetToken(ctx)
	if err == nil && stored != token {
		c.log.Debug(ctx, "rejected token no longer stored")
		return ErrSessionTerminated
	}
	return c.logout(ctx, ReasonNone)
}

func (c *Controller) logout(ctx context.Context, reason LogoutReason) error {
	var errs []error

	// The reason goes first and under its own key, so it outlives the clear.
	if reason != ReasonNone {
		if err := c.store.SetLogoutReason(ctx, reason); err != nil {
			errs = append(errs, fmt.Errorf("record logout reason: %w", err))
		}
	}
	if err := c.store.ClearSession(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear session: %w", err))
	}

	label := reasonLabel(reason)
	metrics.SessionTerminations.WithLabelValues(label).Inc()
	c.log.Info(ctx, "session terminated", "reason", label, "entry", c.entry)

	c.nav.Navigate(ctx, c.entry)

	if len(errs) > 0 {
		err := errors.Join(errs...)
		c.log.Warn(ctx, "session cleanup incomplete", "error", err)
		return errors.Join(ErrSessionTerminated, err)
	}
	return ErrSessionTerminated
}

func reasonLabel(r LogoutReason) string {
	if r == ReasonNone {
		return "none"
	}
	return string(r)
}
