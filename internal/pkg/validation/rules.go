package validation

import (
	"regexp"
	"strings"

	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Password length bounds; bcrypt ignores input past 72 bytes
	PasswordMinLength = 6
	PasswordMaxLength = 72
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// NormalizeEmail returns the canonical, case-insensitive form of an email
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks an already normalized email against EmailPattern
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// Field is a named value checked by Required
type Field struct {
	Name  string
	Value string
}

// Required returns a validation error naming the first blank field
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return apperrors.NewValidationError(f.Name + " is required")
		}
	}
	return nil
}

// ValidatePassword checks password length bounds
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLength {
		return apperrors.NewValidationError("password must be at least 6 characters")
	}
	if len(password) > PasswordMaxLength {
		return apperrors.NewValidationError("password must be at most 72 characters")
	}
	return nil
}
