package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneSegmentRegex matches one part of a Korean phone number split into three form inputs
// Formats: 010 / 1234 / 5678
var phoneSegmentRegex = regexp.MustCompile(`^[0-9]{3,4}$`)

// ValidatePhoneSegment validates a single phone number segment.
// Segments are only checked at the form boundary; the member service joins them verbatim.
func ValidatePhoneSegment(fl validator.FieldLevel) bool {
	return phoneSegmentRegex.MatchString(fl.Field().String())
}
