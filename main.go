package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	api "github.com/abdhesh369/my-portfolio/api"
	"github.com/abdhesh369/my-portfolio/config"
	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/metrics"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/seed"
	"github.com/abdhesh369/my-portfolio/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()
	setupLogger(cfg)

	ssmCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	err := config.LoadSSM(ssmCtx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Closing server")
	}
}

func run(cfg map[string]string) error {
	log.Info().Str("dbType", config.GetString(cfg, "DB_TYPE", database.TypeSQLite)).Msg("Initializing app...")

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// If generating column mismatch report, run report and exit
	if config.GetBool(cfg, "GENERATE_COLUMN_REPORT", false) {
		log.Info().Msg("Generating column mismatch report...")
		reports, err := models.GenerateColumnMismatchReport(db)
		if err != nil {
			return err
		}
		models.LogColumnMismatchReport(reports)
		return nil
	}

	m := metrics.New()

	cacheTTL := config.GetDuration(cfg, "CACHE_TTL", 0)
	if config.GetBool(cfg, "CACHE_DISABLED", false) {
		cacheTTL = -1
	}
	currentDB := database.New(db, database.Options{
		CacheTTL:      cacheTTL,
		CacheObserver: m.CacheObserver,
	})
	if err := currentDB.Migrate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.GetBool(cfg, "SEED_ON_START", true) {
		if _, err := seed.Seed(ctx, currentDB); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	opts := []api.Option{api.WithMetrics(m)}
	if notifier := services.FromConfig(cfg, m); notifier != nil {
		log.Info().Strs("channels", notifier.Channels()).Msg("Contact notifications enabled")
		opts = append(opts, api.WithNotifier(notifier))
	}

	server, err := api.NewServer(currentDB, cfg, opts...)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutdown signal received")
		return server.ShutdownGracefully(30 * time.Second)
	})

	return g.Wait()
}

func setupLogger(cfg map[string]string) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(cfg, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(cfg, "ENVIRONMENT", "development") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
