package meta

import (
	"context"
	"net/http"
	"time"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/config"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/cache"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints
type Handler struct {
	cfg   *config.Config
	db    *database.DB
	cache cache.Cache
}

// NewHandler creates a new meta handler. c is nil when the cache is disabled.
func NewHandler(cfg *config.Config, db *database.DB, c cache.Cache) *Handler {
	return &Handler{
		cfg:   cfg,
		db:    db,
		cache: c,
	}
}

// Health checks the database and, when configured, the cache.
// The cache is advisory, so a cache outage reports "degraded" with 200.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	log := logger.FromContext(c.Request.Context())
	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}

	// Check database connectivity
	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		log.Error("Health check 실패", "component", "database", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"database": gin.H{
					"status": "down",
					"error":  err.Error(),
				},
			},
		})
		return
	}

	checks := gin.H{
		"database": gin.H{
			"status":     "up",
			"latency_ms": time.Since(start).Milliseconds(),
		},
	}
	status := "healthy"

	if h.cache != nil {
		start = time.Now()
		if err := h.cache.Ping(ctx); err != nil {
			log.Warn("Health check 실패", "component", "cache", "error", err)
			status = "degraded"
			checks["cache"] = gin.H{
				"status": "down",
				"error":  err.Error(),
			}
		} else {
			checks["cache"] = gin.H{
				"status":     "up",
				"latency_ms": time.Since(start).Milliseconds(),
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": service,
		"checks":  checks,
	})
}
