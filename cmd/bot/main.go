// Package main — bot entry point.
// Loads configuration, initializes the application and runs it.
// Supports graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/amirhosseinweb/tellbitj/internal/app"
	"github.com/amirhosseinweb/tellbitj/internal/config"
)

func main() {
	setupLogging()

	log.Info("=== bot starting ===")

	// Missing TELEGRAM_BOT_TOKEN or SUPER_ADMIN_ID is fatal here.
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.AppLogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize application")
	}
	defer application.DB.Close()

	application.Scheduler.Start()
	defer application.Scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go application.Bot.Start(ctx)

	log.Info("=== bot ready ===")

	sig := <-quit
	log.Infof("received signal %s, shutting down", sig)

	cancel()

	log.Info("=== bot stopped ===")
}

// setupLogging configures the log format.
func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}
