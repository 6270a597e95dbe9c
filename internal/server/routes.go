// Package server wires handlers, middleware and CORS into a gin engine.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobtrackr/internal/handlers"
	"github.com/justsurfingit/jobtrackr/internal/middleware"
	"github.com/justsurfingit/jobtrackr/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the HTTP surface over db.
func NewRouter(db *gorm.DB, allowedOrigins []string, log *zap.Logger) *gin.Engine {
	appService := services.NewApplicationService(db)
	statsService := services.NewStatsService(db)
	h := handlers.NewApplicationHandler(appService, statsService, log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log), middleware.Metrics())
	r.Use(cors.New(CORSConfig(allowedOrigins)))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	apps := r.Group("/applications")
	{
		apps.POST("", h.CreateApplication)
		apps.GET("", h.ListApplications)
		apps.PATCH("/:id", h.UpdateStatus)
		apps.DELETE("/:id", h.DeleteApplication)
		apps.POST("/:id/restore", h.RestoreApplication)
	}
	r.GET("/stats", h.Stats)

	return r
}

// CORSConfig allows credentials from the configured origins. A "*" entry
// opens the API to every origin.
func CORSConfig(allowedOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPatch,
		http.MethodDelete, http.MethodOptions,
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{middleware.RequestIDHeader}

	for _, o := range allowedOrigins {
		if o == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	config.AllowOrigins = allowedOrigins
	config.AllowCredentials = true
	return config
}
