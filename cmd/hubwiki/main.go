package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hubwiki/internal/config"
	"hubwiki/internal/remote"
	"hubwiki/internal/web"
)

func main() {
	var addr = flag.String("addr", "", "Listen address, overrides PORT.")
	flag.Parse()

	// A missing .env is fine in production; config falls back to the
	// environment and defaults.
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client, err := remote.NewClient(cfg.BackendURL, nil)
	if err != nil {
		logger.Fatal("invalid backend url", zap.Error(err))
	}

	server, err := web.NewServer(cfg, client, logger)
	if err != nil {
		logger.Fatal("server setup failed", zap.Error(err))
	}

	listen := *addr
	if listen == "" {
		listen = ":" + cfg.Port
	}

	logger.Info("starting server",
		zap.String("addr", listen),
		zap.String("backend", cfg.BackendURL),
		zap.Duration("cache-ttl", cfg.CacheTTL),
	)
	if err := server.Run(listen); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
