package app

import (
	"github.com/larekshop/larek-backend/internal/cache"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/middleware"
)

type Middleware struct {
	Auth  *middleware.AuthMiddleware
	Cache *middleware.CacheMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config, serviceset Services, store cache.Store) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth:  middleware.NewAuthMiddleware(log, serviceset.Auth),
		Cache: middleware.NewCacheMiddleware(log, store, cfg.DetailCacheTTL),
	}
}
