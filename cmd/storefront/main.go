package main

import (
	"context"
	"log"
	"time"

	"go-storefront/internal/app"
	"go-storefront/internal/bootstrap"
	"go-storefront/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := bootstrap.InitLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependency + routes
	core, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("app build failed", zap.Error(err))
	}

	// warm the catalog; a failed fetch is a degraded start, not a crash
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout)
	if err := core.FetchCatalog(ctx); err != nil {
		logger.Warn("initial catalog fetch failed", zap.Error(err))
	}
	cancel()

	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger,
	); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
