// Package session owns the console's login state: the persisted session
// record, the guard that every protected command passes through, and the
// controller that ends a session and sends the user back to the login
// entry point.
package session

import (
	"context"
	"errors"
)

// LogoutReason explains to the next login screen why the previous session
// ended. It is surfaced exactly once.
type LogoutReason string

const (
	ReasonNone    LogoutReason = ""
	ReasonExpired LogoutReason = "expired"
)

// ErrSessionTerminated is the terminal signal returned once a logout has
// run: the caller must not continue as if the session were alive.
var ErrSessionTerminated = errors.New("session terminated")

// Store persists the session record {token, display name, logout reason}.
//
// An empty string means "absent" for every getter. When the token is
// absent the display name must not be trusted. ClearSession removes the
// token and the display name but never the logout reason.
type Store interface {
	GetToken(ctx context.Context) (string, error)
	GetDisplayName(ctx context.Context) (string, error)
	// SetSession writes token and displayName together: after it returns
	// either both are stored or neither changed.
	SetSession(ctx context.Context, token, displayName string) error
	ClearSession(ctx context.Context) error
	SetLogoutReason(ctx context.Context, reason LogoutReason) error
	// TakeLogoutReason returns the stored reason and deletes it.
	TakeLogoutReason(ctx context.Context) (LogoutReason, error)
}

func parseReason(v string) LogoutReason {
	switch LogoutReason(v) {
	case ReasonExpired:
		return ReasonExpired
	default:
		return ReasonNone
	}
}
