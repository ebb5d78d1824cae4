package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"picoweb/core/auth"
	"picoweb/core/config"
	"picoweb/core/httpx"
	"picoweb/core/router"
	"picoweb/core/session"
	"picoweb/core/view"
	"picoweb/storage/memory"
	"picoweb/storage/postgres"
	redisstore "picoweb/storage/redis"
	"picoweb/web"
)

type serverConfig struct {
	Addr         string        `env:"ADDR" envDefault:":8000"`
	TemplatesDir string        `env:"TEMPLATES_DIR" envDefault:"web/templates"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"web/static"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SweepEvery   time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1h"`
	LogLevel     slog.Level    `env:"LOG_LEVEL" envDefault:"info"`

	// StorageDriver selects the backing stores: "memory" or "postgres".
	// REDIS_URL, when set, moves only the session store to redis.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisURL      string `env:"REDIS_URL"`

	// The admin account seeded at startup when absent.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin"`
}

func main() {
	var cfg serverConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg serverConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, sessionStore, closeStores, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	sessions, err := session.NewManager(sessionStore, cfg.SessionTTL, session.WithLogger(logger))
	if err != nil {
		return err
	}
	resolver := auth.NewResolver(sessions, users, auth.WithLogger(logger))

	renderer, err := view.NewRenderer(view.NewFSLoader(os.DirFS(cfg.TemplatesDir)))
	if err != nil {
		return err
	}

	handlers := web.NewHandlers(users, sessions, resolver, renderer,
		os.DirFS(cfg.StaticDir), web.WithLogger(logger))
	mux := handlers.Routes(router.WithLogger(logger))

	if err := seedAdmin(ctx, users, cfg, logger); err != nil {
		return err
	}

	go sweepSessions(ctx, sessions, cfg.SweepEvery, logger)

	return serve(ctx, cfg.Addr, mux, logger)
}

// buildStores picks the storage backend from configuration.
func buildStores(ctx context.Context, cfg serverConfig) (auth.Store, session.Store, func(), error) {
	var (
		users        auth.Store
		sessionStore session.Store
		closers      []func()
	)

	switch cfg.StorageDriver {
	case "memory":
		users = memory.NewUserStore()
		sessionStore = memory.NewSessionStore()
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, nil, nil, fmt.Errorf("DATABASE_URL is required with the postgres driver")
		}
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		users = postgres.NewUserStore(pool)
		sessionStore = postgres.NewSessionStore(pool)
		closers = append(closers, pool.Close)
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := goredis.NewClient(opts)
		sessionStore = redisstore.NewSessionStore(client)
		closers = append(closers, func() { _ = client.Close() })
	}

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}
	return users, sessionStore, closeAll, nil
}

// seedAdmin provisions the admin account on first start.
func seedAdmin(ctx context.Context, users auth.Store, cfg serverConfig, logger *slog.Logger) error {
	_, err := users.FindByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	admin := &auth.User{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Role:     auth.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	logger.Info("seeded admin account", slog.String("username", admin.Username))
	return nil
}

// sweepSessions periodically drops expired sessions.
func sweepSessions(ctx context.Context, sessions *session.Manager, every time.Duration, logger *slog.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.CleanupExpired(ctx)
			if err != nil {
				logger.Error("session sweep failed", slog.Any("error", err))
				continue
			}
			if n > 0 {
				logger.Info("swept expired sessions", slog.Int64("count", n))
			}
		}
	}
}

// serve accepts connections until the context is canceled, handling each one
// in its own goroutine.
func serve(ctx context.Context, addr string, mux *router.Mux, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	logger.Info("server listening", slog.String("addr", addr))

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("server stopped")
				return ctx.Err()
			}
			logger.Warn("accept failed", slog.Any("error", err))
			continue
		}
		go handleConn(ctx, conn, mux, logger)
	}
}

// handleConn serves one request on conn. A handler error terminates the
// request with no partial response: the connection just closes.
func handleConn(ctx context.Context, conn net.Conn, mux *router.Mux, logger *slog.Logger) {
	defer func() { _ = conn.Close() }()

	req, err := httpx.ReadRequest(bufio.NewReader(conn))
	if err != nil {
		logger.Debug("unreadable request", slog.Any("error", err))
		return
	}

	resp, err := mux.Dispatch(ctx, req)
	if err != nil {
		// Already logged by the mux; nothing is written back.
		return
	}

	if _, err := resp.WriteTo(conn); err != nil {
		logger.Debug("write response", slog.Any("error", err))
	}
}
