package bootstrap

import (
	"io"
	"net/http"

	"github.com/changhyeonkim/member-portal/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine with the middleware every route shares
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with recovery, request id, CORS, timeout and access logging
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	// RequestID runs before the logger so access logs carry request_id
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg.CORS))
	engine.Use(middleware.Timeout(middleware.DefaultTimeout)) // 30 second global timeout
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler logs any recovered value and answers with the shared 500 response
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	logger.FromContext(c.Request.Context()).Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	c.AbortWithStatusJSON(http.StatusInternalServerError, sharedError.InternalServerError)
}
