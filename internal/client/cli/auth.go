package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/nauticalflow/internal/client/session"
)

// Login shows the notice left by the previous logout (at most once), then
// prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	if notice, err := a.auth.TakeNotice(ctx); err != nil {
		a.log.Warn(ctx, "could not read logout notice", "error", err)
	} else if notice != "" {
		a.printf("%s\n", notice)
	}

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	role, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		a.printf("Login unsuccessful: %s\n", err.Error())
		return err
	}

	a.setSession(userName)
	a.printf("Logged in as %s (%s)\n", userName, role)
	return nil
}

// Logout ends the session. The controller navigates back to the entry
// path, so the REPL prompts for a new login afterwards.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	if err != nil && !errors.Is(err, session.ErrSessionTerminated) {
		return err
	}
	a.printf("Logged out\n")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	st, err := a.auth.Status(ctx)
	if err != nil {
		a.printf("Error: %s\n", err.Error())
		return err
	}
	switch {
	case !st.LoggedIn:
		a.printf("Not logged in\n")
	case st.ExpiresAt.IsZero():
		a.printf("%s (expiry unknown)\n", st.DisplayName)
	default:
		a.printf("%s, session valid until %s\n", st.DisplayName, st.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		a.printf("Backend unreachable: %s\n", err.Error())
		return err
	}
	a.setMode(ModeOnline)
	a.printf("Backend is reachable\n")
	return nil
}

// restoreSession picks up a session persisted by an earlier run. The
// guard logs out an expired or missing one, which leaves the App at the
// entry path.
func (a *App) restoreSession(ctx context.Context) {
	if !a.guard.Check(ctx) {
		return
	}
	st, err := a.auth.Status(ctx)
	if err != nil || !st.LoggedIn {
		return
	}
	a.setSession(st.DisplayName)
	a.printf("Welcome back, %s\n", st.DisplayName)
}
