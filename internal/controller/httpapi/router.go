// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"github.com/apocaliss92/reolink-osd-sync/config"
	v1 "github.com/apocaliss92/reolink-osd-sync/internal/controller/httpapi/v1"
	"github.com/apocaliss92/reolink-osd-sync/internal/usecase"
	"github.com/apocaliss92/reolink-osd-sync/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// Prometheus middleware for automatic HTTP metrics; /metrics is
	// registered separately below.
	p := ginprometheus.NewPrometheus("gin")
	p.MetricsPath = ""
	handler.Use(p.HandlerFunc())

	// Public routes
	login := v1.NewLoginRoute(cfg)
	handler.POST("/api/v1/authorize", login.Login)

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes using JWT middleware
	var protected *gin.RouterGroup
	if cfg.Auth.Disabled {
		protected = handler.Group("/api")
	} else {
		protected = handler.Group("/api", login.JWTAuthMiddleware())
	}

	// Routers
	h := protected.Group("/v1")
	{
		v1.NewCameraRoutes(h, t, l)
		v1.NewVideoClipRoutes(h, t, l)
		v1.NewEventRoutes(h, t, l)
		v1.NewTelemetryRoutes(h, t, l)
	}
}
