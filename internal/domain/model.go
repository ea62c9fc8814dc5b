package domain

import (
	"fmt"
	"strings"
)

// Category is the severity of a validator. Error failures block upload.
type Category string

const (
	CategoryWarning Category = "warning"
	CategoryError   Category = "error"
)

// ParseCategory converts a severity name to a Category, ignoring case.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryWarning:
		return CategoryWarning, nil
	case CategoryError:
		return CategoryError, nil
	default:
		return "", fmt.Errorf("unknown category %q (valid: warning, error)", s)
	}
}

// Messages for results that do not come from a rule.
const (
	MessageNotValidated = "Validation has yet to be run"
	MessageIgnored      = "Ignored"
)

// ValidationResult is the outcome of the last run of one validator.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Pass builds a passing result.
func Pass(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: true, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failing result.
func Fail(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Message: fmt.Sprintf(format, args...)}
}

// NotValidated is the result every validator starts with.
func NotValidated() ValidationResult {
	return ValidationResult{Valid: false, Message: MessageNotValidated}
}

// Ignored is the result forced by an ignore.
func Ignored() ValidationResult {
	return ValidationResult{Valid: true, Message: MessageIgnored}
}

// ValidatorInfo describes a registered validator.
type ValidatorInfo struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Fixable     bool     `json:"fixable"`
}
