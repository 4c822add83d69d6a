package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"portfolio_api/internal/config"
	"portfolio_api/internal/notifier"
	"portfolio_api/internal/ogp"
	"portfolio_api/internal/publisher"
	"portfolio_api/internal/server"
	"portfolio_api/internal/service"
	"portfolio_api/internal/source/contentful"
	"portfolio_api/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	lgtmStore := postgres.NewLgtmStore(db)
	archiveStore := postgres.NewArchiveStore(db)

	source := contentful.New(contentful.Config{
		BaseURL:        cfg.Contentful.BaseURL,
		SpaceID:        cfg.Contentful.SpaceID,
		Environment:    cfg.Contentful.Environment,
		AccessToken:    cfg.Contentful.AccessToken,
		Timeout:        cfg.Contentful.Timeout,
		MaxAttempts:    cfg.Contentful.Retry.MaxAttempts,
		InitialBackoff: cfg.Contentful.Retry.InitialBackoff,
		MaxBackoff:     cfg.Contentful.Retry.MaxBackoff,
	}, logger)

	ogpFetcher := ogp.New(cfg.Ogp.Timeout, logger)

	slack := notifier.NewSlack(notifier.Config{
		ServerWebhookURL:     cfg.Slack.ServerWebhookURL,
		ContentfulWebhookURL: cfg.Slack.ContentfulWebhookURL,
		SentryWebhookURL:     cfg.Slack.SentryWebhookURL,
	}, logger)

	srv := server.New(server.Deps{
		Blog:      service.NewBlogService(source, lgtmStore, archiveStore, ogpFetcher, logger),
		Portfolio: service.NewPortfolioService(source, logger),
		News:      service.NewNewsService(source, logger),
		Roadmap:   service.NewRoadmapService(source, logger),
		Webhook:   service.NewWebhookService(source, lgtmStore, archiveStore, rabbitMQ, slack, logger),
		Sentry:    service.NewSentryService(slack, logger),
		Notifier:  slack,
		Logger:    logger,
	})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "addr", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		logger.Info("server stopped", "reason", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
