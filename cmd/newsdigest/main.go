package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"news-digest/internal/config"
	"news-digest/internal/core"
	"news-digest/internal/fetcher"
	"news-digest/internal/logging"
	"news-digest/internal/model"
	"news-digest/internal/push"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.New(false).Warn("could not read .env", logging.Field{Key: "err", Val: err})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Getenv, os.Stdout, config.Sources)
	stop()
	os.Exit(code)
}

// run performs one digest pass and returns the process exit code. The
// configuration is checked before the registry is loaded or anything is
// fetched.
func run(ctx context.Context, getenv func(string) string, stdout io.Writer, sources func() ([]model.Source, error)) int {
	logger := logging.NewWithWriter(stdout, false)

	cfg, err := config.LoadFrom(getenv)
	if err != nil {
		logger.Error("configuration invalid", logging.Field{Key: "err", Val: err})
		return 1
	}
	logger.SetJSON(cfg.Logging.JSON)
	if !logger.SetLevel(cfg.Logging.Level) {
		logger.Warn("unknown log level, keeping info", logging.Field{Key: "level", Val: cfg.Logging.Level})
	}

	registry, err := sources()
	if err != nil {
		logger.Error("source registry invalid", logging.Field{Key: "err", Val: err})
		return 1
	}

	collector := core.NewCollector(registry, fetcher.New(fetcher.DefaultTimeout), logger)
	notifier := &push.Slack{Webhook: cfg.WebhookURL, Timeout: push.DefaultTimeout}
	if err := core.NewRunner(collector, notifier, logger).Run(ctx); err != nil {
		logger.Error("posting to slack failed", logging.Field{Key: "err", Val: err})
		return 1
	}
	return 0
}
