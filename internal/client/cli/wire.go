package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/dmitrijs2005/nauticalflow/internal/client/client"
	"github.com/dmitrijs2005/nauticalflow/internal/client/config"
	"github.com/dmitrijs2005/nauticalflow/internal/client/localdb"
	"github.com/dmitrijs2005/nauticalflow/internal/client/services"
	"github.com/dmitrijs2005/nauticalflow/internal/client/session"
	"github.com/dmitrijs2005/nauticalflow/internal/client/token"
	"github.com/dmitrijs2005/nauticalflow/internal/logging"
	"github.com/redis/go-redis/v9"
)

// NewApp builds the console from c: the session store selected by
// c.StoreBackend, the logout controller navigating this App, the guard,
// the gateway and the services on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	app := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}

	store, err := app.openStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := app.listenMetrics(); err != nil {
		app.Close()
		return nil, err
	}

	ctrl := session.NewController(store, app, c.EntryPath, log)
	guard := session.NewGuard(store, token.NewInspector(), ctrl, log)
	api := client.NewHTTPClient(c.APIBaseURL, store, ctrl, log, client.WithTimeout(c.RequestTimeout))

	app.guard = guard
	app.auth = services.NewAuthService(api, store, ctrl)
	app.resources = services.NewResourceService(api, guard)
	return app, nil
}

// listenMetrics binds c.MetricsAddr; Root serves on it.
func (a *App) listenMetrics() error {
	if a.config.MetricsAddr == "" {
		return nil
	}
	ln, err := net.Listen("tcp", a.config.MetricsAddr)
	if err != nil {
		return fmt.Errorf("error listening for metrics on %s: %w", a.config.MetricsAddr, err)
	}
	a.metricsLn = ln
	a.closers = append(a.closers, func() error {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
		return nil
	})
	return nil
}

func (a *App) openStore(ctx context.Context) (session.Store, error) {
	c := a.config
	switch c.StoreBackend {
	case config.StoreSQLite:
		db, err := localdb.Open(ctx, c.StorePath)
		if err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		return session.NewSQLiteStore(db), nil

	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("error connecting to redis %s: %w", c.RedisAddr, err)
		}
		a.closers = append(a.closers, rdb.Close)
		store := session.NewRedisStore(rdb, c.RedisPrefix)
		a.watcher = store
		return store, nil

	case config.StoreMemory:
		return session.NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
}
