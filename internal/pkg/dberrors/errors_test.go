package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var errTaken = errors.New("taken")

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: UsersEmailKey})

	assert.True(t, IsDuplicateConstraintError(err, UsersEmailKey))
	assert.False(t, IsDuplicateConstraintError(err, ClubsOwnerIDKey))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), UsersEmailKey))
}

func TestTranslateUnique(t *testing.T) {
	mapped := map[string]error{UsersEmailKey: errTaken}

	dup := &pgconn.PgError{Code: UniqueViolation, ConstraintName: UsersEmailKey}
	assert.Same(t, errTaken, TranslateUnique(dup, mapped))

	other := &pgconn.PgError{Code: UniqueViolation, ConstraintName: "something_else"}
	assert.Equal(t, error(other), TranslateUnique(other, mapped))

	fk := &pgconn.PgError{Code: ForeignKeyViolation}
	assert.Equal(t, error(fk), TranslateUnique(fk, mapped))
	assert.True(t, IsForeignKeyError(fk))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("boom")))
}
