package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/dmitrijs2005/nauticalflow/internal/client/config"
	"github.com/dmitrijs2005/nauticalflow/internal/client/services"
	"github.com/dmitrijs2005/nauticalflow/internal/logging"
	"github.com/dmitrijs2005/nauticalflow/internal/metrics"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// LogoutWatcher reports session clears made by other consoles.
// *session.RedisStore implements it.
type LogoutWatcher interface {
	WatchLogout(ctx context.Context, onLogout func()) error
}

type App struct {
	config    *config.Config
	auth      services.AuthService
	resources services.ResourceService
	guard     services.Gatekeeper
	watcher   LogoutWatcher
	metricsLn net.Listener
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	closers   []func() error

	mu       sync.Mutex
	userName string
	loggedIn bool
	atEntry  bool
	Mode     Mode
}

func (a *App) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

func (a *App) setSession(userName string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = userName
	a.loggedIn = true
	a.atEntry = false
}

// Navigate implements session.Navigator. Reaching the entry path leaves
// the console logged out; the REPL asks for credentials before the next
// command.
func (a *App) Navigate(ctx context.Context, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = ""
	a.loggedIn = false
	a.atEntry = true
	a.log.Debug(ctx, "navigated", "path", path)
}

// takeEntry reports whether a navigation to the entry path happened since
// the last call.
func (a *App) takeEntry() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	e := a.atEntry
	a.atEntry = false
	return e
}

// onRemoteLogout handles a session cleared by another console. The store
// is already empty, so only the local view changes.
func (a *App) onRemoteLogout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loggedIn {
		return
	}
	a.userName = ""
	a.loggedIn = false
	a.atEntry = true
	fmt.Fprintln(a.out, "\nSession ended from another console.")
}

// Run blocks in the REPL until the user exits or ctx is done, then
// releases the store.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// StartMetricsServer serves the Prometheus endpoint until ctx is done.
// It does nothing when no metrics address is configured.
func (a *App) StartMetricsServer(ctx context.Context) {
	if a.metricsLn == nil {
		return
	}
	a.log.Info(ctx, "serving metrics", "addr", a.metricsLn.Addr().String(), "path", metrics.Path)
	if err := metrics.Serve(ctx, a.metricsLn); err != nil {
		a.log.Error(ctx, "metrics server stopped", "error", err)
	}
}

// StartLogoutWatcher forwards remote logouts until ctx is done.
func (a *App) StartLogoutWatcher(ctx context.Context) {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.WatchLogout(ctx, a.onRemoteLogout); err != nil {
		a.log.Warn(ctx, "logout watcher stopped", "error", err)
	}
}
