package app

import (
	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/handlers"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/server"
)

type Handlers struct {
	Catalog *handlers.CatalogHandler
	Blog    *handlers.BlogHandler
	Account *handlers.AccountHandler
	Auth    *handlers.AuthHandler
	Media   *handlers.MediaHandler
}

func wireHandlers(log *logger.Logger, cfg Config, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Catalog: handlers.NewCatalogHandler(serviceset.Catalog, cfg.Contacts),
		Blog:    handlers.NewBlogHandler(serviceset.Blog),
		Account: handlers.NewAccountHandler(serviceset.Account),
		Auth:    handlers.NewAuthHandler(serviceset.Auth),
		Media:   handlers.NewMediaHandler(serviceset.Media),
	}
}

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowedOrigins:  cfg.AllowedOrigins,
		CatalogHandler:  handlerset.Catalog,
		BlogHandler:     handlerset.Blog,
		MediaHandler:    handlerset.Media,
		AccountHandler:  handlerset.Account,
		AuthHandler:     handlerset.Auth,
		AuthMiddleware:  middlewareset.Auth,
		CacheMiddleware: middlewareset.Cache,
	})
}
