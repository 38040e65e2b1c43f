package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// Constraint names declared in migrations/001_init.sql
const (
	UsersEmailKey             = "users_email_key"
	ClubsOwnerIDKey           = "clubs_owner_id_key"
	ClubMembersPkey           = "club_members_pkey"
	RegistrationsUserEventKey = "registrations_user_id_event_id_key"
	AdminRequestsPendingKey   = "admin_requests_one_pending_per_user"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyError checks if the error is a foreign key violation
func IsForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolation
}

// IsNoRows reports whether a single-row query found nothing
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// TranslateUnique returns mapped[constraint] when err is a unique violation on a
// constraint listed in mapped, and err unchanged otherwise.
func TranslateUnique(err error, mapped map[string]error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != UniqueViolation {
		return err
	}
	if target, ok := mapped[pgErr.ConstraintName]; ok {
		return target
	}
	return err
}
