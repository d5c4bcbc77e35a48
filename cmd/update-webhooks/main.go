package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/tjfontaine/update-webhooks/internal/config"
	"github.com/tjfontaine/update-webhooks/internal/output"
	"github.com/tjfontaine/update-webhooks/internal/telemetry"
	"github.com/tjfontaine/update-webhooks/internal/watch"
	"github.com/tjfontaine/update-webhooks/internal/webhooks"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.File = os.Args[1]
	}
	if cfg.File == "" {
		fmt.Fprintln(os.Stderr, "Usage: update-webhooks <service-definition.yml>")
		fmt.Fprintln(os.Stderr, "Prints the valid URLs listed under "+webhooks.FieldName)
		os.Exit(2)
	}

	// Results go to stdout, so logs and spans go to stderr
	logger := newLogger(os.Stderr, cfg.Log)
	slog.SetDefault(logger)

	if cfg.Trace {
		shutdown, err := telemetry.InitTracer("update-webhooks", os.Stderr, logger)
		if err != nil {
			log.Fatalf("Failed to initialize tracer: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, webhooks.New(), os.Stdout, logger); err != nil {
		logger.Error("extraction failed", slog.String("file", cfg.File), slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

// run extracts once and, in watch mode, again after every write to the file.
func run(ctx context.Context, cfg *config.Config, e *webhooks.Extractor, stdout io.Writer, logger *slog.Logger) error {
	if err := extractOnce(ctx, cfg, e, stdout, logger); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	w, err := watch.New(cfg.File, logger)
	if err != nil {
		return err
	}
	return w.Run(ctx, func() {
		// A file removed mid-edit should not end the watch.
		if err := extractOnce(ctx, cfg, e, stdout, logger); err != nil {
			logger.Warn("re-extraction failed", slog.String("file", cfg.File), slog.String("error", err.Error()))
		}
	})
}

func extractOnce(ctx context.Context, cfg *config.Config, e *webhooks.Extractor, stdout io.Writer, logger *slog.Logger) error {
	_, span := telemetry.Tracer().Start(ctx, "webhooks.extract")
	defer span.End()
	span.SetAttributes(attribute.String("document.path", cfg.File))

	report, err := e.Inspect(cfg.File)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if report.ParseErr != nil {
		logger.Warn("document could not be parsed, no webhooks extracted",
			slog.String("file", cfg.File),
			slog.String("error", report.ParseErr.Error()))
	} else if !report.FieldFound {
		logger.Debug("document declares no webhooks",
			slog.String("file", cfg.File),
			slog.String("field", webhooks.FieldName))
	}
	for _, c := range report.Rejected {
		logger.Warn("skipping invalid webhook entry",
			slog.String("value", c.Value),
			slog.String("kind", c.Kind.String()))
	}

	span.SetAttributes(
		attribute.Int("webhooks.valid", len(report.Webhooks)),
		attribute.Int("webhooks.rejected", len(report.Rejected)),
		attribute.Bool("document.parsed", report.ParseErr == nil),
	)

	logger.Info("webhooks extracted",
		slog.String("file", cfg.File),
		slog.Int("count", len(report.Webhooks)))

	if err := output.Write(stdout, report.Webhooks, cfg.Format); err != nil {
		return fmt.Errorf("write webhooks: %w", err)
	}
	if cfg.GitHubOutput != "" {
		if err := output.AppendGitHubOutput(cfg.GitHubOutput, report.Webhooks); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
