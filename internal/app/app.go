package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/makerhub/internal/catalog"
	"github.com/MrSnakeDoc/makerhub/internal/config"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/makerhub/internal/httpserver/mw"
	"github.com/MrSnakeDoc/makerhub/internal/logger"
	"github.com/MrSnakeDoc/makerhub/internal/persist"
	"github.com/MrSnakeDoc/makerhub/internal/redis"
	"github.com/MrSnakeDoc/makerhub/internal/scheduler"
	"github.com/MrSnakeDoc/makerhub/internal/session"
	filestore "github.com/MrSnakeDoc/makerhub/internal/store/file"
	memstore "github.com/MrSnakeDoc/makerhub/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/makerhub/internal/store/redis"
	"github.com/MrSnakeDoc/makerhub/internal/utils"
	"github.com/MrSnakeDoc/makerhub/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	session     *session.Store
	reloader    *scheduler.CatalogReloader
	flusher     *scheduler.SessionFlusher
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the persistence slot early - fail fast if redis is unavailable
	slot, redisClient, err := openSlot(cfg, loggerClient)
	if err != nil {
		return nil, err
	}
	loggerClient.Info("session store ready", logger.String("store", slot.Name()))

	holder := catalog.NewHolder(catalog.Default())
	sess := session.New(holder, persist.NewAdapter(slot, loggerClient), loggerClient)

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		holder,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	flusher := scheduler.NewSessionFlusher(sess, loggerClient, cfg.FlushInterval)

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		RequestTimeout: cfg.RequestTimeout,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit: mw.RateLimitConfig{
			Burst:      cfg.RateLimitBurst,
			PerMinute:  cfg.RateLimitPerMinute,
			MaxEntries: cfg.RateLimitMaxIPs,
			TrustProxy: cfg.TrustProxy,
		},
		Session:       sess,
		Catalog:       holder,
		Slot:          slot,
		ReloadTrigger: reloadTrigger,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg.ListenPort, d),
		redisClient: redisClient,
		session:     sess,
		reloader:    reloader,
		flusher:     flusher,
	}, nil
}

// openSlot builds the slot selected by MAKERHUB_STORE. The redis client is
// returned so it can be closed on shutdown.
func openSlot(cfg *config.Config, log logger.Logger) (persist.Slot, *goredis.Client, error) {
	switch cfg.Store {
	case config.StoreFile:
		slot, err := filestore.NewSlot(cfg.StateFile)
		if err != nil {
			return nil, nil, err
		}
		return slot, nil, nil

	case config.StoreMemory:
		log.Warn("memory store selected, the session is lost on restart")
		return memstore.NewSlot(), nil, nil

	default:
		client, err := redis.Connect(context.Background(), redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisstore.NewSlot(client, cfg.StateKey), client, nil
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting %s on %s", version.String(), a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The catalog seeds default sessions, so it must be in place before Restore.
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.String("file", a.cfg.CatalogFile),
		logger.Duration("interval", a.cfg.ReloadInterval))

	if !a.session.Restore(ctx) {
		a.logger.Info("starting with a fresh session")
	}

	a.flusher.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		a.reloader.Stop()
		a.flusher.Stop()
		return err
	}

	a.reloader.Stop()
	a.flusher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	// Last chance for a write that failed earlier.
	if !a.flusher.Run(shutdownCtx) {
		a.logger.Warn("session changes since the last failed save are lost")
	}

	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}

	a.logger.Info("✅ MakerHub stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
