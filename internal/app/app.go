package app

import (
	"fmt"

	"go-storefront/internal/cart"
	"go-storefront/internal/catalog"
	"go-storefront/internal/config"
	"go-storefront/internal/middleware"
	"go-storefront/internal/persist"
	"go-storefront/internal/storefront"
	"go-storefront/internal/view"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp assembles the storefront core, mounts the HTTP presentation
// boundary on the router, and returns the core's intent surface.
func BuildApp(router *gin.Engine, cfg config.Config) (storefront.Service, error) {
	logger := zap.L()

	kv, err := buildKV(cfg, logger)
	if err != nil {
		return nil, err
	}

	// --- Core stores ---
	catalogStore := catalog.NewStore()
	catalogClient := catalog.NewClient(cfg.CatalogURL, cfg.FetchTimeout)
	adapter := persist.NewAdapter(kv, cfg.CartStorageKey)

	cartStore := cart.NewStore(cart.Deps{
		Finder:    catalogStore,
		Persister: adapter,
		Initial:   adapter.Load(),
		OnChange: func() {
			logger.Debug("cart changed")
		},
	})

	viewState := view.NewState(catalogStore, cfg.DefaultPageSize)

	core := storefront.NewService(storefront.Deps{
		Catalog: catalogStore,
		Fetcher: catalogClient,
		Cart:    cartStore,
		View:    viewState,
	})

	// --- Presentation boundary ---
	handler := storefront.NewHandler(core)

	router.Use(middleware.RequestID())
	api := router.Group("/api/v1")
	{
		storefront.RegisterRoutes(api, handler)
	}

	return core, nil
}

func buildKV(cfg config.Config, logger *zap.Logger) (persist.KV, error) {
	switch cfg.CartStore {
	case config.StoreMemory:
		return persist.NewMemoryKV(), nil
	case config.StoreFile:
		return persist.NewFileKV(cfg.CartFile), nil
	case config.StoreRedis:
		rdb, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
		if err != nil {
			return nil, err
		}
		return persist.NewRedisKV(rdb), nil
	default:
		return nil, fmt.Errorf("unknown cart store backend %q", cfg.CartStore)
	}
}
