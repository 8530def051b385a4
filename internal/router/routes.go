package router

import (
	"github.com/changhyeonkim/member-portal/go-api-server/internal/auth"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/config"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/member"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/meta"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/cache"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/password"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection.
// c is the existence cache and may be nil.
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, c cache.Cache) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db, c)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMemberRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)
	hasher := password.NewBcryptHasher(cfg.Security.BcryptCost)

	// service
	authService := auth.NewAuthService(db.DB, memberRepository, hasher, tokenManager)
	memberService := member.NewMemberService(db.DB, memberRepository, hasher, c)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	memberHandler := member.NewMemberHandler(memberService, cfg.Member.PageSize)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
	}

	memberV1 := router.Group("/api/v1/members")
	{
		memberV1.POST("", memberHandler.Signup)
		memberV1.GET("/check-username", memberHandler.CheckUsername)
		memberV1.GET("/check-email", memberHandler.CheckEmail)
	}

	authorized := memberV1.Group("", middleware.JWT(tokenManager))
	{
		authorized.GET("", memberHandler.List)
		authorized.GET("/me", memberHandler.GetProfile)
		authorized.PUT("/me", memberHandler.UpdateProfile)
	}
}
