package context

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-portal/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// UsernameKey stores the authenticated member's username in the gin context
const UsernameKey = "username"

func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(UsernameKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}

	return username, true
}

// RequireUsername retrieves the authenticated username from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireUsername(c *gin.Context) (string, bool) {
	username, ok := GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 아이디가 존재하지 않습니다.")
		return "", false
	}
	return username, true
}
