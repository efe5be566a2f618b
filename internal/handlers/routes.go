package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"preflop-decision-api/internal/services"
)

// Service identity reported by the health endpoint
const (
	ServiceName    = "preflop-decision-api"
	ServiceVersion = "1.0.0"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	DecisionService services.DecisionService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	decisionHandler := NewDecisionHandler(config.DecisionService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": ServiceName,
			"version": ServiceVersion,
		})
	})

	// The decision endpoint reads the query string whatever the verb
	router.Any("/api/decide", decisionHandler.Decide)
}
