package cli

import (
	"errors"

	"github.com/dmitrijs2005/nauticalflow/internal/client/client"
	"github.com/dmitrijs2005/nauticalflow/internal/client/session"
)

// report prints a failed command. A terminated session gets one fixed
// line; the login prompt that follows explains the rest.
func (a *App) report(err error) {
	switch {
	case errors.Is(err, session.ErrSessionTerminated):
		a.printf("Session ended. Please log in again.\n")
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		a.printf("Error: %s\n", err.Error())
	default:
		a.printf("Error: %s\n", err.Error())
	}
}
