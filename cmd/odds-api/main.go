package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Vodeneev/easybets/internal/parser/parsers/sportpesa"
	pkgconfig "github.com/Vodeneev/easybets/internal/pkg/config"
	"github.com/Vodeneev/easybets/internal/pkg/logging"
	"github.com/Vodeneev/easybets/internal/pkg/odds"
	"github.com/Vodeneev/easybets/internal/pkg/performance"
	"github.com/Vodeneev/easybets/internal/pkg/prediction"
	"github.com/Vodeneev/easybets/internal/pkg/server"
	"github.com/Vodeneev/easybets/internal/pkg/storage"
)

const serviceName = "odds-api"

type config struct {
	configPath string
	envFile    string
}

func main() {
	if err := run(); err != nil {
		slog.Error("Odds API failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := parseFlags()

	if err := pkgconfig.LoadDotEnv(cfg.envFile); err != nil {
		return err
	}

	appConfig, err := pkgconfig.Load(cfg.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := appConfig.ApplyEnv(os.Getenv); err != nil {
		return fmt.Errorf("failed to apply environment: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := logging.SetupLogger(&appConfig.Logging, serviceName, appConfig.Server.Debug); err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	}
	slog.Info("Config loaded", "path", cfg.configPath, "port", appConfig.Server.Port,
		"cloud_mode", appConfig.Scraper.CloudMode, "cache", appConfig.Cache.Enabled)

	tracker := performance.NewTracker()

	predictor, err := newPredictor(appConfig.Prediction)
	if err != nil {
		return err
	}

	fetcher := sportpesa.NewFetcher(appConfig, tracker)
	slog.Info("Fetch strategy selected", "strategy", fetcher.Strategy())
	parser := sportpesa.NewParser(fetcher, sportpesa.NewExtractor(nil), tracker)

	cache := openCache(appConfig.Cache)
	defer func() { _ = cache.Close() }()

	svc := odds.NewService(parser, predictor, cache, tracker)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(ctx, cancel)

	return server.Run(ctx, appConfig.Server, serviceName, server.NewRouter(svc, tracker))
}

func parseFlags() config {
	var cfg config

	flag.StringVar(&cfg.configPath, "config", os.Getenv("CONFIG_PATH"), "Path to config file (can be set via CONFIG_PATH env var). Empty = built-in defaults")
	flag.StringVar(&cfg.envFile, "env-file", ".env", "Optional .env file loaded before reading the environment")
	flag.Parse()
	return cfg
}

func newPredictor(cfg pkgconfig.PredictionConfig) (*prediction.Predictor, error) {
	table, err := prediction.NewStrengthTable(prediction.DefaultStrengths(), cfg.TeamStrengths)
	if err != nil {
		return nil, fmt.Errorf("invalid team strengths: %w", err)
	}

	var opts []prediction.Option
	if cfg.Noise != nil {
		opts = append(opts, prediction.WithNoise(*cfg.Noise))
	}
	return prediction.NewPredictor(table, opts...), nil
}

// openCache falls back to no caching when Redis is disabled or unreachable.
func openCache(cfg pkgconfig.CacheConfig) storage.MatchCache {
	if !cfg.Enabled {
		return storage.NopCache{}
	}
	client, err := storage.NewRedisClient(cfg.RedisAddr, cfg.Password, cfg.DB, cfg.TTL)
	if err != nil {
		slog.Warn("Redis unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
		return storage.NopCache{}
	}
	slog.Info("Match cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.TTL)
	return client
}

func setupSignalHandler(ctx context.Context, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			slog.Info("Received shutdown signal, stopping server...", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()
}
