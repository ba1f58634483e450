package routes

import (
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/api/handler"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	matchRunHandler *handler.MatchRunHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Check)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/match-runs", matchRunHandler.Create)
		v1.GET("/match-runs/:id", matchRunHandler.Get)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
}
