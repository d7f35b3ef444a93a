package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iconidentify/tunelink/internal/api"
	"github.com/iconidentify/tunelink/internal/api/handler"
	"github.com/iconidentify/tunelink/internal/bot"
	"github.com/iconidentify/tunelink/internal/config"
	"github.com/iconidentify/tunelink/internal/gateway"
	"github.com/iconidentify/tunelink/internal/query"
	"github.com/iconidentify/tunelink/internal/resolver"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("tunelink %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting tunelink",
		"version", Version,
		"build_time", BuildTime,
	)

	// Load .env if present; real environment variables still override.
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize the shared resolution core
	ytdlp := resolver.NewYTDLP(cfg.Resolver.BinPath, logger)
	classifier := query.NewService(ytdlp, logger)

	// Bot surface is optional; its absence never disables HTTP.
	var chatBot *bot.Bot
	if cfg.Telegram.Enabled() {
		chatBot, err = bot.New(bot.Config{
			Token:   cfg.Telegram.Token,
			OwnerID: cfg.Auth.OwnerID,
			Secret:  cfg.Auth.Secret,
			BaseURL: cfg.App.BaseURL,
		}, classifier, logger)
		if err != nil {
			logger.Error("failed to start bot surface", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("bot surface disabled: no BOT_TOKEN configured")
	}

	// Initialize handlers
	indexHandler := handler.NewIndexHandler(cfg.App.Name, chatBot != nil)
	mediaHandler := handler.NewMediaHandler(classifier, logger)
	legacyHandler := handler.NewLegacyHandler(classifier, logger)

	// Setup router
	router := api.NewRouter(indexHandler, mediaHandler, legacyHandler, cfg.Auth.Secret)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	runtime := gateway.New(srv, botOrNil(chatBot), logger)
	errc := runtime.Start()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-errc:
		logger.Error("server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runtime.Stop(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// botOrNil avoids handing the runtime a typed nil interface.
func botOrNil(b *bot.Bot) gateway.BotSurface {
	if b == nil {
		return nil
	}
	return b
}
