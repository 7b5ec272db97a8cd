package api

import (
	"github.com/airmarket/airline-demand-api/analytics"
	"github.com/airmarket/airline-demand-api/config"
	"github.com/airmarket/airline-demand-api/insights"
	"github.com/airmarket/airline-demand-api/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, analyzer *analytics.Analyzer, formatter *insights.Formatter, cfg *config.Config) {
	// Setup middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	// Health check endpoint
	router.GET("/health", Health())

	api := router.Group("/api")
	{
		api.GET("/data", GetData(analyzer, formatter, cfg.OpenSkyConfig.DefaultLimit))
		api.GET("/filter", FilterData(analyzer, cfg.OpenSkyConfig.DefaultLimit))
	}
}
