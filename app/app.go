package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"sportshub-recruit-api/internal/client"
	"sportshub-recruit-api/internal/config"
	"sportshub-recruit-api/internal/controller"
	"sportshub-recruit-api/internal/repo"
	"sportshub-recruit-api/internal/service"
	"sportshub-recruit-api/pkg/http_server"
	"sportshub-recruit-api/pkg/logger"
	"sportshub-recruit-api/pkg/postgres"
	"sportshub-recruit-api/pkg/redis"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func runMigrations(pg *postgres.Postgres, sourceUrl string, databaseName string) error {
	driver, err := pgmigrate.WithInstance(pg.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		return err
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, databaseName, driver)
	if err != nil {
		return err
	}

	if err := migrations.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// connectNameCache returns nil when redis is not configured or unreachable,
// names are then read from the database on every request.
func connectNameCache(cfg *config.Config, log *zap.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL is empty, name cache disabled")
		return nil
	}

	cache, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log)
	if err != nil {
		log.Warn("name cache disabled", zap.Error(err))
		return nil
	}

	return cache
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	l := logger.New(cfg.LogLevel).WithFields(map[string]interface{}{
		"environment": cfg.Environment,
		"service":     "recruit",
	})
	log := l.Logger
	defer func() { _ = log.Sync() }()

	log.Info("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		l.WithError(err).Fatal("Error occurred while connecting to db")
	}
	defer postgresDB.Close()

	l.WithField("source", cfg.MigrationsPath).Info("Running migrations...")
	if err := runMigrations(postgresDB, cfg.MigrationsPath, cfg.PostgresDatabase); err != nil {
		l.WithError(err).Fatal("Migrations failed")
	}

	nameCache := connectNameCache(cfg, log)
	if nameCache != nil {
		defer nameCache.Close()
	}

	clientOpts := func(baseURL string) client.Options {
		return client.Options{BaseURL: baseURL, Timeout: cfg.ClientTimeout, RateLimit: cfg.ClientRateLimit}
	}

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(service.Dependencies{
		Repos:     repositories,
		Team:      client.NewTeamClient(clientOpts(cfg.TeamServiceURL), log.Named("team-client")),
		Notifier:  client.NewNotificationClient(clientOpts(cfg.NotificationServiceURL), log.Named("notification-client")),
		NameCache: nameCache,
		NameTTL:   cfg.NameCacheTTL,
		Log:       log,
	})
	handler := echo.New()
	handler.HideBanner = true

	log.Info("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, log)

	log.Info("Starting server...", zap.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("Got signal", zap.String("signal", s.String()))
	case err, ok := <-httpServer.Notify():
		if ok {
			log.Error("Server stopped", zap.Error(err))
		}
	}

	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		l.WithError(err).Error("Shutdown error")
		return
	}
	log.Info("Successful shutdown")
}
