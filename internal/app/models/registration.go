package models

import "time"

// RegistrationStatus is the state of a user's registration for an event
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationAttended   RegistrationStatus = "attended"
	RegistrationCancelled  RegistrationStatus = "cancelled"
)

// Registration links a user to an event. At most one exists per (user, event) pair.
type Registration struct {
	ID           RegistrationID     `json:"id" db:"id"`
	UserID       UserID             `json:"userId" db:"user_id"`
	EventID      EventID            `json:"eventId" db:"event_id"`
	Status       RegistrationStatus `json:"status" db:"status"`
	RegisteredAt time.Time          `json:"registeredAt" db:"registered_at"`

	// Related entities
	Event *Event `json:"event,omitempty"`
}
