package http

import (
	"github.com/gin-gonic/gin"

	"github.com/avolkov/rentals/internal/database"
	"github.com/avolkov/rentals/internal/services"
)

// RouterConfig carries the dependencies for the HTTP layer. Components
// receive their collaborators explicitly; there are no hidden singletons.
type RouterConfig struct {
	Database *database.Database
	Store    services.ListingStore
	Service  *services.ListingService
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	listingsController := NewListingsController(cfg.Store, cfg.Service)

	rentals := router.Group("/api/v1/vacation-rentals")
	{
		rentals.GET("/", listingsController.Index)
		rentals.GET("/:id", listingsController.Show)
		rentals.POST("/", listingsController.Create)
		rentals.PUT("/:id", listingsController.Update)
		rentals.DELETE("/:id", listingsController.Delete)
	}

	return router
}
