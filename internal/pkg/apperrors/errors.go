package apperrors

import "errors"

// Base errors. Every application error wraps exactly one of these, which
// decides how it is reported to the caller.
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternal         = errors.New("internal error")
)

// Authentication errors
var (
	ErrInvalidCredentials = newSentinel(ErrUnauthenticated, "invalid credentials")
	ErrTokenExpired       = newSentinel(ErrUnauthenticated, "token expired")
	ErrTokenInvalid       = newSentinel(ErrUnauthenticated, "invalid token")
	ErrTokenRevoked       = newSentinel(ErrUnauthenticated, "token revoked")
	ErrInvalidFormat      = newSentinel(ErrUnauthenticated, "invalid token format")
)

// User errors
var (
	ErrUserNotFound       = newSentinel(ErrResourceNotFound, "user not found")
	ErrEmailAlreadyExists = newSentinel(ErrConflict, "email already exists")
	ErrAlreadyAdmin       = newSentinel(ErrConflict, "user is already an admin")
	ErrAlreadyMember      = newSentinel(ErrConflict, "user is already a member")
	ErrLastAdmin          = newSentinel(ErrConflict, "cannot remove the last admin")
	ErrSelfDelete         = newSentinel(ErrConflict, "cannot delete your own account")
)

// Admin request errors
var (
	ErrAdminRequestNotFound   = newSentinel(ErrResourceNotFound, "admin request not found")
	ErrAdminRequestNotPending = newSentinel(ErrConflict, "admin request is not pending")
)

// Club errors
var (
	ErrClubNotFound      = newSentinel(ErrResourceNotFound, "club not found")
	ErrClubAlreadyOwned  = newSentinel(ErrConflict, "you can only create one club, edit your existing club instead")
	ErrAlreadyClubMember = newSentinel(ErrConflict, "already a member of this club")
)

// Event errors
var (
	ErrEventNotFound         = newSentinel(ErrResourceNotFound, "event not found")
	ErrDeadlineNotBeforeDate = newSentinel(ErrValidationFailed, "deadline must be before event date")
	ErrAlreadyRegistered     = newSentinel(ErrConflict, "already registered for this event")
	ErrRegistrationClosed    = newSentinel(ErrValidationFailed, "registration for this event is closed")
)

// Kind classifies an error for the transport layer
type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED"
	KindForbidden       Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConflict        Kind = "CONFLICT"
	KindValidation      Kind = "VALIDATION"
	KindInternal        Kind = "INTERNAL"
)

// KindOf returns the kind of err. Errors that do not wrap a base error are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrPermissionDenied):
		return KindForbidden
	case errors.Is(err, ErrResourceNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidationFailed):
		return KindValidation
	default:
		return KindInternal
	}
}

// NewUnauthenticatedError creates a new custom error for missing or unusable credentials
func NewUnauthenticatedError(message string) error {
	return &CustomError{
		Err:     ErrUnauthenticated,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewInternalError wraps a storage, hashing or token failure
func NewInternalError(message string, cause error) error {
	return &CustomError{
		Err:     ErrInternal,
		Message: message,
		Cause:   cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Cause   error
	Details map[string]interface{}
}

func newSentinel(base error, message string) *CustomError {
	return &CustomError{Err: base, Message: message}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the base error and the underlying cause, if any
func (e *CustomError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
