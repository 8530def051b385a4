package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneForm struct {
	Phone1 string `validate:"omitempty,phone_segment"`
	Phone2 string `validate:"omitempty,phone_segment"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, register(v))
	return v
}

func TestValidatePhoneSegment(t *testing.T) {
	v := newValidate(t)

	testCases := []struct {
		segment string
		valid   bool
	}{
		{"010", true},
		{"1234", true},
		{"12", false},
		{"12345", false},
		{"12a4", false},
		{"", true}, // omitempty
	}

	for _, tc := range testCases {
		t.Run(tc.segment, func(t *testing.T) {
			err := v.Struct(phoneForm{Phone1: tc.segment})
			assert.Equal(t, tc.valid, err == nil)
		})
	}
}

func TestToErrorResponse_PhoneSegment(t *testing.T) {
	v := newValidate(t)

	err := v.Struct(phoneForm{Phone2: "12"})
	require.Error(t, err)

	resp, ok := ToErrorResponse(err)
	require.True(t, ok)
	assert.Equal(t, "ERROR-001", resp.Code)
	assert.Contains(t, resp.Message, "휴대폰 번호")
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	_, ok := ToErrorResponse(assert.AnError)
	assert.False(t, ok)
}
