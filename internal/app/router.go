package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"carrent/internal/handler"
	"carrent/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	VehicleHandler  *handler.VehicleHandler
	CustomerHandler *handler.CustomerHandler
	RentalHandler   *handler.RentalHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Vehicle routes.
		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", deps.VehicleHandler.Register)
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.GET("/:plate", deps.VehicleHandler.Get)
			vehicles.PUT("/:plate", deps.VehicleHandler.Update)
			vehicles.DELETE("/:plate", deps.VehicleHandler.Delete)
		}

		// Customer routes.
		customers := v1.Group("/customers")
		{
			customers.POST("", deps.CustomerHandler.Register)
			customers.GET("", deps.CustomerHandler.GetAll)
			customers.GET("/:cpf", deps.CustomerHandler.Get)
			customers.PUT("/:cpf", deps.CustomerHandler.Update)
			customers.DELETE("/:cpf", deps.CustomerHandler.Delete)
		}

		// Rental routes.
		rentals := v1.Group("/rentals")
		{
			rentals.POST("", deps.RentalHandler.Book)
			rentals.GET("", deps.RentalHandler.GetAll)
			rentals.GET("/:id", deps.RentalHandler.Get)
			rentals.POST("/:id/return", deps.RentalHandler.Return)
			rentals.POST("/:id/cancel", deps.RentalHandler.Cancel)
		}
	}

	return router
}
