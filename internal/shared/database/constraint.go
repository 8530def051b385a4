package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// uniqueViolationMarkers are driver messages seen when TranslateError cannot map the error
var uniqueViolationMarkers = []string{
	"unique constraint", // sqlite: UNIQUE constraint failed, oracle: unique constraint (...) violated
	"ora-00001",         // oracle unique_violation
	"duplicate key",     // postgres
	"duplicate entry",   // mysql
}

// IsUniqueViolation reports whether err was caused by a unique index rejecting a write
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range uniqueViolationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
