package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"golang.org/x/sync/errgroup"

	"github.com/jeremyjsx/blogapi/internal/blog"
	"github.com/jeremyjsx/blogapi/internal/config"
	"github.com/jeremyjsx/blogapi/internal/events"
	"github.com/jeremyjsx/blogapi/internal/handlers"
	"github.com/jeremyjsx/blogapi/internal/storage"
	"github.com/jeremyjsx/blogapi/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("blogapi stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	db, err := store.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	deps := blog.Deps{Logger: logger}
	var archive storage.Storage
	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return err
		}
		archive = storage.NewS3Storage(storage.NewS3Client(awsCfg, cfg.S3Endpoint), cfg.S3Bucket)
		deps.Archive = archive
	}
	if cfg.RabbitMQURL != "" {
		pub, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			logger.Warn("rabbitmq unavailable, events disabled", "error", err)
		} else {
			defer pub.Close()
			deps.Publisher = pub
		}
	}

	var baseURL *url.URL
	if cfg.BaseURL != "" {
		if baseURL, err = url.Parse(cfg.BaseURL); err != nil {
			return err
		}
	}

	categoryRepo := store.NewCategoryRepo(db)
	postRepo := store.NewPostRepo(db)
	tagRepo := store.NewTagRepo(db)

	router := handlers.NewRouter(handlers.RouterDeps{
		Categories: blog.NewCategoryService(categoryRepo, deps),
		Posts:      blog.NewPostService(postRepo, categoryRepo, tagRepo, deps),
		Tags:       blog.NewTagService(tagRepo, postRepo, deps),
		Options: handlers.Options{
			PageSize: cfg.PageSize,
			BaseURL:  baseURL,
			Logger:   logger,
		},
		Health: &handlers.HealthDeps{
			DB:          db,
			Storage:     archive,
			RabbitMQURL: cfg.RabbitMQURL,
		},
		Logger: logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("blogapi: server started", "port", cfg.Port, "driver", cfg.DatabaseDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("blogapi: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
