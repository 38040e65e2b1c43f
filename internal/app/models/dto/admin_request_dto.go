package dto

import (
	"time"

	"github.com/yigit/clubhub/internal/app/models"
)

// AdminRequestResponse represents an admin-role request
type AdminRequestResponse struct {
	ID          models.AdminRequestID     `json:"id"`
	UserID      models.UserID             `json:"userId"`
	Name        string                    `json:"name" example:"Bob"`
	Email       string                    `json:"email" example:"b@x.io"`
	Reason      string                    `json:"reason" example:"No reason provided"`
	Status      models.AdminRequestStatus `json:"status" example:"pending" enums:"pending,approved,rejected"`
	RequestedAt time.Time                 `json:"requestedAt"`
	ResolvedAt  *time.Time                `json:"resolvedAt,omitempty"`
	ResolvedBy  *models.UserID            `json:"resolvedBy,omitempty"`
}

// AdminRequestActionResponse is returned by approve and reject
type AdminRequestActionResponse struct {
	Message      string               `json:"message" example:"Admin request approved"`
	AdminRequest AdminRequestResponse `json:"adminRequest"`
}

// NewAdminRequestResponse converts an admin request model
func NewAdminRequestResponse(r *models.AdminRequest) AdminRequestResponse {
	return AdminRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Email:       r.Email,
		Reason:      r.Reason,
		Status:      r.Status,
		RequestedAt: r.RequestedAt,
		ResolvedAt:  r.ResolvedAt,
		ResolvedBy:  r.ResolvedBy,
	}
}

// NewAdminRequestResponses converts a list of admin requests
func NewAdminRequestResponses(reqs []*models.AdminRequest) []AdminRequestResponse {
	out := make([]AdminRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewAdminRequestResponse(r))
	}
	return out
}
