package member

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
)

const (
	memberNotFound    = "MEMBER_NOT_FOUND"   // errInfo
	duplicateUsername = "DUPLICATE_USERNAME" // errInfo
	passwordMismatch  = "PASSWORD_MISMATCH"  // errInfo
	usernameRequired  = "USERNAME_REQUIRED"  // errInfo
	invalidPage       = "INVALID_PAGE"       // errInfo
	duplicateEmail    = "DUPLICATE_EMAIL"    // errInfo
)

var (
	ErrMemberNotFound    = sharedError.NewDomainError(memberNotFound, sharedError.KindNotFound)
	ErrDuplicateUsername = sharedError.NewDomainError(duplicateUsername, sharedError.KindConflict)
	ErrDuplicateEmail    = sharedError.NewDomainError(duplicateEmail, sharedError.KindConflict)
	ErrPasswordMismatch  = sharedError.NewDomainError(passwordMismatch, sharedError.KindValidation)
	ErrUsernameRequired  = sharedError.NewDomainError(usernameRequired, sharedError.KindValidation)
	ErrInvalidPage       = sharedError.NewDomainError(invalidPage, sharedError.KindValidation)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateUsername, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 존재하는 아이디입니다.",
	})

	sharedError.RegisterDomainErrorResponse(passwordMismatch, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(usernameRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-004",
		Message: "아이디를 입력해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(invalidPage, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-005",
		Message: "잘못된 페이지 요청입니다.",
	})

	sharedError.RegisterDomainErrorResponse(duplicateEmail, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-006",
		Message: "이미 존재하는 이메일입니다.",
	})
}
