// Command failmail-client shows how an application reports a caught
// failure by mail: it attaches a mail handler to the root logger, divides
// by zero, recovers, and logs the error with its trace. Point it at a
// failmail relay (localhost:2525 by default) to see the error mail arrive.
package main

import (
	"fmt"
	stdlog "log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hut8labs/failmail-client/handler/mailhandler"
	"github.com/hut8labs/failmail-client/internal/config"
	"github.com/hut8labs/failmail-client/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to read configuration: %v", err)
	}

	diag := setupLogger(cfg.Debug)
	defer func() { _ = diag.Sync() }()

	if err := run(cfg, diag); err != nil {
		diag.Fatal("failed to configure logging", zap.Error(err))
	}
}

func run(cfg *config.Config, diag *zap.Logger, opts ...mailhandler.Option) error {
	if err := configureLogging(cfg, diag, opts...); err != nil {
		return err
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			diag.Warn("failed to close log handlers", zap.Error(err))
		}
	}()

	if _, err := divide(1, 0); err != nil {
		logger.Exception("an error has occurred", err)
	}
	return nil
}

// configureLogging attaches the mail handler to the root logger and opens
// the root up to every level; the handler only mails errors.
func configureLogging(cfg *config.Config, diag *zap.Logger, opts ...mailhandler.Option) error {
	base := []mailhandler.Option{
		mailhandler.WithLevel(cfg.MailHandlerLevel()),
		mailhandler.WithLogger(diag),
	}
	mail, err := mailhandler.NewMailHandler(cfg.Mail(), append(base, opts...)...)
	if err != nil {
		return fmt.Errorf("create mail handler: %w", err)
	}

	logger.AddHandler(mail)
	logger.SetLevel(cfg.RootLevel())
	return nil
}

func divide(a, b int) (q int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = logger.Recovered(r)
		}
	}()
	return a / b, nil
}

func setupLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339))
	}
	cfg.EncoderConfig.TimeKey = "ts"
	l, err := cfg.Build()
	if err != nil {
		stdlog.Fatalf("failed to set up logger: %v", err)
	}
	return l
}
