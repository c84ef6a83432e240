package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/my-site/config"
	"github.com/daniilsolovey/my-site/internal/blog"
	"github.com/daniilsolovey/my-site/internal/db"
	"github.com/daniilsolovey/my-site/internal/ledger"
	"github.com/daniilsolovey/my-site/internal/quotes"
	"github.com/daniilsolovey/my-site/internal/rest"
	"github.com/daniilsolovey/my-site/internal/rpc"
	"github.com/daniilsolovey/my-site/internal/session"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type App struct {
	DB     *db.Repository
	Redis  *redis.Client
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)
	a := &App{
		DB:     repo,
		Logger: logger,
		Config: cfg,
	}

	opts := []rest.Option{
		rest.WithPinger("db", repo),
		rest.WithCookie(rest.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.CookieSecure,
		}),
	}

	var store session.Store = session.NewMemoryStore()
	if cfg.Session.RedisAddr != "" {
		a.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		redisStore := session.NewRedisStore(a.Redis, cfg.Session.TTL)
		store = redisStore
		opts = append(opts, rest.WithPinger("redis", redisStore))
	} else {
		logger.Warn("redis address is empty, read-later lists are kept in memory")
	}

	quoteClient := quotes.New(quotes.Config{
		ExchangeRateURL: cfg.Quotes.ExchangeRateURL,
		StockDayURL:     cfg.Quotes.StockDayURL,
		Timeout:         cfg.Quotes.Timeout,
	}, logger)

	blogManager := blog.NewBlogManager(repo, store, logger)
	ledgerManager := ledger.NewLedgerManager(repo, quoteClient, logger)

	opts = append(opts, rest.WithRPC(rpc.New(logger, blogManager, ledgerManager)))

	handler, err := rest.NewHandler(blogManager, ledgerManager, logger, opts...)
	if err != nil {
		if a.Redis != nil {
			_ = a.Redis.Close()
		}
		return nil, fmt.Errorf("create handler: %w", err)
	}
	a.Echo = handler.RegisterRoutes()

	return a, nil
}

func (a *App) Run(ctx context.Context, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	a.Logger.InfoContext(ctx, "starting server", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if a.Redis != nil {
		err = errors.Join(err, a.Redis.Close())
	}

	return errors.Join(err, a.DB.Close())
}
