package dto

import (
	"time"

	"github.com/yigit/clubhub/internal/app/models"
)

// CreateClubRequest represents club creation data
type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Chess Club"`
	Description string `json:"description" binding:"required,max=2000" example:"Weekly games and tournaments"`
}

// UpdateClubRequest represents a partial club update
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=2000"`
}

// ClubPhotoRequest names the photo to add or remove
type ClubPhotoRequest struct {
	PhotoURL string `json:"photoUrl" binding:"required,max=2048" example:"https://cdn.example.com/p1.jpg"`
}

// ClubResponse represents club information
type ClubResponse struct {
	ID          models.ClubID `json:"id"`
	Name        string        `json:"name" example:"Chess Club"`
	Description string        `json:"description"`
	OwnerID     models.UserID `json:"ownerId"`
	Owner       *UserSummary  `json:"owner,omitempty"`
	Members     []UserSummary `json:"members"`
	Photos      []string      `json:"photos"`
	EventsCount int           `json:"eventsCount" example:"0"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// JoinClubResponse is returned when a user joins a club
type JoinClubResponse struct {
	Message string       `json:"message" example:"Successfully joined club"`
	Club    ClubResponse `json:"club"`
}

// NewClubResponse converts a club model
func NewClubResponse(c *models.Club) ClubResponse {
	photos := c.Photos
	if photos == nil {
		photos = []string{}
	}
	return ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OwnerID:     c.OwnerID,
		Owner:       NewUserSummary(c.Owner),
		Members:     newUserSummaries(c.Members),
		Photos:      photos,
		EventsCount: c.EventsCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewClubResponses converts a club list
func NewClubResponses(clubs []*models.Club) []ClubResponse {
	out := make([]ClubResponse, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, NewClubResponse(c))
	}
	return out
}
