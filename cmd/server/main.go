// @title                       MediGuard Security Dashboard API
// @version                     1.0
// @description                 Session, route guard and simulated security telemetry for the MediGuard dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/api"
	"github.com/mediguard/security-dashboard/internal/api/handler"
	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
	"github.com/mediguard/security-dashboard/internal/core/service"
	"github.com/mediguard/security-dashboard/internal/infrastructure/db/file"
	"github.com/mediguard/security-dashboard/internal/infrastructure/db/memory"
	mongodb "github.com/mediguard/security-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/mediguard/security-dashboard/internal/infrastructure/db/redis"
	"github.com/mediguard/security-dashboard/internal/infrastructure/notify"
	"github.com/mediguard/security-dashboard/internal/pkg/config"
	"github.com/mediguard/security-dashboard/pkg/logger"

	_ "github.com/mediguard/security-dashboard/docs"
)

const (
	shutdownTimeout = 10 * time.Second
	devJWTSecret    = "mediguard-dev-secret"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "mediguard",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
		log.Warn().Msg("JWT_SECRET not set, using development secret")
		secret = devJWTSecret
	}

	var pingers []handler.Pinger

	// --- Redis (session storage and/or notification publishing) ---
	var rdb *redis.Client
	if cfg.UsesRedis() {
		conn, err := redisdb.Open(ctx, redisdb.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer conn.Close()
		rdb = conn.Client()
		pingers = append(pingers, conn)
	}

	// --- Credential store ---
	var creds ports.CredentialRepository
	switch cfg.Credential.Backend {
	case config.CredentialBackendMongo:
		store, err := mongodb.Open(ctx, mongodb.Options{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = store.Close(dctx)
		}()

		repo := mongodb.NewCredentialRepository(store.Database())
		if err := repo.Seed(ctx, domain.DemoCredentials()); err != nil {
			return err
		}
		creds = repo
		pingers = append(pingers, store)
	default:
		creds = memory.NewCredentialRepository(domain.DemoCredentials())
	}

	// --- Session storage ---
	var storage ports.SessionStorage
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		storage = redisdb.NewSessionStorage(rdb)
	case config.SessionBackendFile:
		storage = file.NewSessionStorage(cfg.Session.File)
	default:
		storage = memory.NewSessionStorage()
	}

	// --- Notifications ---
	inbox := notify.NewInbox(cfg.Notify.InboxSize)
	sinks := notify.Fanout{notify.NewLogNotifier(logger.Component("toast")), inbox}
	if cfg.Notify.Redis {
		sinks = append(sinks, redisdb.NewPublisher(rdb, redisdb.NotificationChannel, log))
	}
	dispatcher := notify.NewDispatcher(cfg.Notify.Workers, sinks, logger.Component("notify"))
	dispatcher.Start(ctx)

	// --- Core services ---
	clock := service.SystemClock()
	session := service.NewSessionStore(
		creds,
		storage,
		dispatcher,
		service.NewRiskScorer(nil, clock),
		logger.Component("session"),
		service.SessionOptions{Delay: cfg.AuthDelay, Clock: clock},
	)
	session.Restore(ctx)

	router := api.NewRouter(api.Deps{
		Session:    session,
		Tokens:     service.NewTokenIssuer(secret, cfg.TokenTTL, clock),
		Telemetry:  service.NewTelemetryService(nil),
		Settings:   service.NewSettingsService(dispatcher, clock, logger.Component("settings")),
		Operations: service.NewOperationsService(dispatcher, clock, 0, logger.Component("operations")),
		Feed:       inbox,
		Pingers:    pingers,
		JWTSecret:  secret,
		Log:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("session_backend", cfg.Session.Backend).
			Str("credential_backend", cfg.Credential.Backend).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
