package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          UserID    `json:"id" db:"id" example:"0b6f1c7e-3f1a-4d55-9d0e-4c1f2a9b7e11"`
	Email       string    `json:"email" db:"email" example:"jane@example.com"` // Always stored lowercased
	Password    string    `json:"-" db:"password"`                             // bcrypt hash, never serialized
	Name        string    `json:"name" db:"name" example:"Jane Doe"`
	Role        Role      `json:"role" db:"role" example:"member"`
	ClubsJoined []ClubID  `json:"clubsJoined" db:"-"` // Derived from club_members
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// IsAdmin reports whether the user currently holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
