package middleware

import (
	"errors"
	"net/http"
	"strings"

	sharedContext "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken, sharedError.KindUnauthorized)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken, sharedError.KindUnauthorized)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken, sharedError.KindUnauthorized)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims, sharedError.KindUnauthorized)
)

// Register JWT error responses
func init() {
	loginRequired := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인을 해주세요.",
	}

	sharedError.RegisterDomainErrorResponse(missingToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(invalidToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(invalidClaims, loginRequired)
	sharedError.RegisterDomainErrorResponse(expiredToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "로그인이 만료되었습니다. 다시 로그인해 주세요.",
	})
}

// JWT authenticates the bearer token and stores the username for handlers
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context()).With(
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		// Step 1: 토큰 추출
		tokenString, err := extractToken(c)
		if err != nil {
			log.Warn("JWT 토큰 추출 실패", "step", "extract_token", "error", err.Error())
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			log.Warn("JWT 토큰 검증 실패", "step", "validate_token", "error", err.Error())
			handleJWTError(c, mapTokenError(err))
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		c.Set(sharedContext.UsernameKey, claims.Username)
		c.Next()
	}
}

// handleJWTError responds with the registered error; logging happens where the error is detected
func handleJWTError(c *gin.Context, err error) {
	c.Error(err)
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.AbortWithStatusJSON(resp.Status, resp)
		return
	}
	// 예상치 못한 에러 → Fallback 응답
	c.AbortWithStatusJSON(http.StatusUnauthorized, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-999",
		Message: "인증에 실패했습니다.",
	})
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
