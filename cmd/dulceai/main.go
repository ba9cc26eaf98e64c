// Command dulceai runs the DulceAI conversational agent as an HTTP
// service backed by a local Ollama model (or Anthropic, by config).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dulceai/dulceai/agent"
	"github.com/dulceai/dulceai/config"
	"github.com/dulceai/dulceai/logging"
	"github.com/dulceai/dulceai/model"
	modelanthropic "github.com/dulceai/dulceai/model/anthropic"
	"github.com/dulceai/dulceai/model/ollama"
	"github.com/dulceai/dulceai/observability"
	"github.com/dulceai/dulceai/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dulceai:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := logging.New(&logging.Config{
		Level:  parseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	llm, err := buildModel(cfg)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics(cfg.Metrics.Namespace, nil)
	a := agent.New(cfg, llm, func(o *agent.Options) {
		o.Logger = logger
		o.Metrics = metrics
	})

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := a.Initialize(initCtx); err != nil {
		// Degraded mode: the agent still serves fallback replies.
		logger.Warn("model unavailable, starting in degraded mode", "error", err.Error())
	}
	cancel()

	srv := &http.Server{
		Addr:              cfg.Listen.Addr,
		Handler:           server.New(a, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Listen.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildModel(cfg config.Config) (model.Model, error) {
	switch cfg.Model.Provider {
	case "", "ollama":
		return ollama.New(func(o *ollama.Options) {
			o.Model = cfg.Model.Name
			o.BaseURL = cfg.Model.BaseURL
			o.Temperature = cfg.Model.Temperature
			o.MaxTokens = cfg.Model.MaxTokens
		}), nil
	case "anthropic":
		return modelanthropic.New(func(o *modelanthropic.Options) {
			if cfg.Model.Name != "" {
				o.Model = cfg.Model.Name
			}
			o.Temperature = cfg.Model.Temperature
			o.MaxTokens = cfg.Model.MaxTokens
			o.APIKey = cfg.Model.APIKey
		}), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
