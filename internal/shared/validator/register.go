package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	if err := register(v); err != nil {
		return err
	}

	slog.Debug("공통 Validator 등록 완료", "validators", "phone_segment")
	return nil
}

func register(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_segment", ValidatePhoneSegment); err != nil {
		return fmt.Errorf("phone_segment validator 등록 실패: %w", err)
	}
	return nil
}
