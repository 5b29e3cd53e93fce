package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-group-matching/internal/config"
	"github.com/KasumiMercury/primind-group-matching/internal/handler"
	"github.com/KasumiMercury/primind-group-matching/internal/health"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/logging"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/metrics"
	"github.com/KasumiMercury/primind-group-matching/internal/observability/middleware"
)

const serviceModule = logging.Module("group-matching")

func newRouter(
	cfg *config.Config,
	httpMetrics *metrics.HTTPMetrics,
	healthChecker *health.Checker,
	matchHandler *handler.MatchHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-group-matching/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", logging.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", logging.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	if cfg.RateLimit.Enabled() {
		v1.Use(middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst).Gin())
	}
	matchHandler.RegisterRoutes(v1)

	return r
}
