package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/larekshop/larek-backend/internal/handlers"
	"github.com/larekshop/larek-backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigins  []string
	CatalogHandler  *handlers.CatalogHandler
	BlogHandler     *handlers.BlogHandler
	MediaHandler    *handlers.MediaHandler
	AccountHandler  *handlers.AccountHandler
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	CacheMiddleware *middleware.CacheMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/products", cfg.CatalogHandler.ListProducts)
		api.GET("/categories", cfg.CatalogHandler.ListCategories)
		api.GET("/contacts", cfg.CatalogHandler.Contacts)
		api.GET("/catalog/:id", cfg.CacheMiddleware.CacheResponse(), cfg.CatalogHandler.GetProduct)
		api.GET("/blog", cfg.BlogHandler.ListPosts)
		api.GET("/blog/:slug", cfg.BlogHandler.GetPost)
	}

	users := router.Group("/users")
	{
		users.POST("/register", cfg.AccountHandler.Register)
		users.GET("/email-confirm/:token/", cfg.AccountHandler.ConfirmEmail)
		users.POST("/password-reset", cfg.AccountHandler.PasswordReset)
		users.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/users/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/users/logout", cfg.AuthHandler.Logout)
	// Catalog
	protected.POST("/api/products", cfg.CatalogHandler.CreateProduct)
	protected.PUT("/api/products/:id", cfg.CatalogHandler.UpdateProduct)
	protected.DELETE("/api/products/:id", cfg.CatalogHandler.DeleteProduct)
	// Blog
	protected.POST("/api/blog", cfg.BlogHandler.CreatePost)
	protected.PUT("/api/blog/:slug", cfg.BlogHandler.UpdatePost)
	protected.DELETE("/api/blog/:slug", cfg.BlogHandler.DeletePost)
	// Media
	protected.POST("/api/products/:id/photo", cfg.MediaHandler.UploadProductPhoto)
	protected.POST("/api/blog/:slug/preview", cfg.MediaHandler.UploadPostPreview)

	return router
}
