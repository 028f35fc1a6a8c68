package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, restores or asks for a session, starts the
// watchers and runs the REPL.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to the NauticalFlow console (type 'help' for commands)\n")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.restoreSession(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	go a.StartLogoutWatcher(ctx)
	go a.StartMetricsServer(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
