package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@x.io", NormalizeEmail("  Ada@X.IO "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@x.io"))
	assert.True(t, IsValidEmail("first.last+tag@mail.example.museum"))
	assert.False(t, IsValidEmail("ada"))
	assert.False(t, IsValidEmail("ada@x"))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required(Field{"name", "Chess"}, Field{"description", "Games"}))

	err := Required(Field{"name", "Chess"}, Field{"description", "   "})
	assert.EqualError(t, err, "description is required")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(string(make([]byte, 73))))
}
