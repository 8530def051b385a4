package error_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	sharedError "github.com/changhyeonkim/member-portal/go-api-server/internal/shared/error"
	"github.com/stretchr/testify/assert"
)

var errSample = sharedError.NewDomainError("SAMPLE_CONFLICT", sharedError.KindConflict)

func init() {
	sharedError.RegisterDomainErrorResponse("SAMPLE_CONFLICT", sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "SAMPLE-001",
		Message: "sample",
	})
}

func TestResolveDomainError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("create member: %w", errSample)

	resp, ok := sharedError.ResolveDomainError(err)

	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.Equal(t, "SAMPLE-001", resp.Code)
}

func TestResolveDomainError_PlainError(t *testing.T) {
	_, ok := sharedError.ResolveDomainError(errors.New("boom"))
	assert.False(t, ok)

	_, ok = sharedError.ResolveDomainError(nil)
	assert.False(t, ok)
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errSample)

	assert.True(t, sharedError.IsKind(wrapped, sharedError.KindConflict))
	assert.False(t, sharedError.IsKind(wrapped, sharedError.KindValidation))
	assert.False(t, sharedError.IsKind(nil, sharedError.KindConflict))
	assert.Equal(t, sharedError.KindUnknown, sharedError.KindOf(errors.New("boom")))
	assert.Equal(t, "conflict", sharedError.KindOf(wrapped).String())
}
