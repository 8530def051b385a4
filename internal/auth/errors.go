package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
)

const (
	incorrectUsernamePassword = "INCORRECT_USERNAME_PASSWORD" // errInfo
)

var (
	ErrIncorrectUsernamePassword = sharedError.NewDomainError(incorrectUsernamePassword, sharedError.KindUnauthorized)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectUsernamePassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	})
}
