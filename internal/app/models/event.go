package models

import "time"

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventCompleted EventStatus = "completed"
)

// Valid reports whether s is a known event status
func (s EventStatus) Valid() bool {
	return s == EventUpcoming || s == EventCompleted
}

// Event is a scheduled club activity that users can register for
type Event struct {
	ID                 EventID     `json:"id" db:"id"`
	Title              string      `json:"title" db:"title"`
	Description        string      `json:"description" db:"description"`
	Date               time.Time   `json:"date" db:"date"`
	Deadline           time.Time   `json:"deadline" db:"deadline"`
	CreatedBy          UserID      `json:"createdBy" db:"created_by"`
	Price              float64     `json:"price" db:"price"`
	IsPaid             bool        `json:"isPaid" db:"is_paid"`
	Status             EventStatus `json:"status" db:"status"`
	RegistrationsCount int         `json:"registrationsCount" db:"registrations_count"`
	CreatedAt          time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time   `json:"updatedAt" db:"updated_at"`

	// Related entities
	Creator      *User   `json:"creator,omitempty"`
	Participants []*User `json:"participants,omitempty"`
}

// DeadlineBeforeDate reports whether the registration window closes before the event starts
func (e *Event) DeadlineBeforeDate() bool {
	return e.Deadline.Before(e.Date)
}
