package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"invalid credentials", ErrInvalidCredentials, KindUnauthenticated},
		{"forbidden", NewForbiddenError("nope"), KindForbidden},
		{"club not found", ErrClubNotFound, KindNotFound},
		{"duplicate registration", ErrAlreadyRegistered, KindConflict},
		{"last admin", ErrLastAdmin, KindConflict},
		{"deadline", ErrDeadlineNotBeforeDate, KindValidation},
		{"wrapped conflict", fmt.Errorf("creating user: %w", ErrEmailAlreadyExists), KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
		{"internal", NewInternalError("db down", errors.New("dial tcp")), KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestCustomError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("failed to load user", cause)

	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "failed to load user", err.Error())
}

func TestSentinelsMatchBaseAndIdentity(t *testing.T) {
	err := fmt.Errorf("join: %w", ErrAlreadyClubMember)

	assert.True(t, errors.Is(err, ErrAlreadyClubMember))
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrAlreadyRegistered))
	assert.True(t, Is(err, ErrAlreadyRegistered, ErrAlreadyClubMember))
}
