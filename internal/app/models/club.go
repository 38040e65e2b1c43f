package models

import "time"

// Club represents a club owned by exactly one admin
type Club struct {
	ID          ClubID    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	OwnerID     UserID    `json:"ownerId" db:"owner_id"`
	Photos      []string  `json:"photos" db:"photos"`
	EventsCount int       `json:"eventsCount" db:"events_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Owner   *User   `json:"owner,omitempty"`
	Members []*User `json:"members,omitempty"`
}

// ClubMember represents a user's membership in a club
type ClubMember struct {
	ClubID   ClubID    `json:"clubId" db:"club_id"`
	UserID   UserID    `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}
