package dto

import (
	"time"

	"github.com/yigit/clubhub/internal/app/models"
)

// UserResponse represents user information without credentials
type UserResponse struct {
	ID          models.UserID   `json:"id" example:"6b1f7f0e-2f3c-4a57-9d55-1d1e0b6f0a11"`
	Name        string          `json:"name" example:"Ada"`
	Email       string          `json:"email" example:"a@x.io"`
	Role        models.Role     `json:"role" example:"member" enums:"member,pending_admin,admin"`
	ClubsJoined []models.ClubID `json:"clubsJoined"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// UserSummary is the short user form embedded in clubs and events
type UserSummary struct {
	ID    models.UserID `json:"id"`
	Name  string        `json:"name" example:"Ada"`
	Email string        `json:"email" example:"a@x.io"`
}

// UserActionResponse is returned by promote and demote
type UserActionResponse struct {
	Message string       `json:"message" example:"User promoted to admin"`
	User    UserResponse `json:"user"`
}

// NewUserResponse converts a user model
func NewUserResponse(u *models.User) UserResponse {
	clubs := u.ClubsJoined
	if clubs == nil {
		clubs = []models.ClubID{}
	}
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		ClubsJoined: clubs,
		CreatedAt:   u.CreatedAt,
	}
}

// NewUserResponses converts a user list
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// NewUserSummary returns nil for a nil user
func NewUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func newUserSummaries(users []*models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}
