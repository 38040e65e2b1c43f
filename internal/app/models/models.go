package models

import "github.com/google/uuid"

// Role defines the access level of a user. The set of roles is closed;
// anything outside it is rejected by Valid.
type Role string

const (
	RoleMember       Role = "member"
	RolePendingAdmin Role = "pending_admin"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RolePendingAdmin, RoleAdmin:
		return true
	default:
		return false
	}
}

// Each entity gets its own identifier type so that a club ID can never be
// compared against a user ID by accident.
type (
	UserID         string
	ClubID         string
	EventID        string
	AdminRequestID string
	RegistrationID string
)

// NewUserID generates a new random user identifier
func NewUserID() UserID { return UserID(uuid.NewString()) }

// NewClubID generates a new random club identifier
func NewClubID() ClubID { return ClubID(uuid.NewString()) }

// NewEventID generates a new random event identifier
func NewEventID() EventID { return EventID(uuid.NewString()) }

// NewAdminRequestID generates a new random admin request identifier
func NewAdminRequestID() AdminRequestID { return AdminRequestID(uuid.NewString()) }

// NewRegistrationID generates a new random registration identifier
func NewRegistrationID() RegistrationID { return RegistrationID(uuid.NewString()) }

// ParseUserID validates the textual form of a user identifier
func ParseUserID(s string) (UserID, bool) {
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return UserID(s), true
}

// ParseClubID validates the textual form of a club identifier
func ParseClubID(s string) (ClubID, bool) {
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return ClubID(s), true
}

// ParseEventID validates the textual form of an event identifier
func ParseEventID(s string) (EventID, bool) {
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return EventID(s), true
}

// ParseAdminRequestID validates the textual form of an admin request identifier
func ParseAdminRequestID(s string) (AdminRequestID, bool) {
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return AdminRequestID(s), true
}
