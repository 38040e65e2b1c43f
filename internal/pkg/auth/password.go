package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the hashing cost used when none is configured
const DefaultBcryptCost = 12

// PasswordHasher hashes and verifies credentials with bcrypt
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher; costs outside bcrypt's range fall back to the default
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of password
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Check reports whether password matches hashedPassword
func (h *PasswordHasher) Check(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
