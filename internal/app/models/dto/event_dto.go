package dto

import (
	"time"

	"github.com/yigit/clubhub/internal/app/models"
)

// CreateEventRequest represents event creation data
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=200" example:"Spring Open"`
	Description string    `json:"description" binding:"required,max=5000" example:"Rapid tournament"`
	Date        time.Time `json:"date" binding:"required" example:"2026-05-10T18:00:00Z"`
	Deadline    time.Time `json:"deadline" binding:"required" example:"2026-05-01T00:00:00Z"`
	Price       float64   `json:"price" example:"0"`
	IsPaid      bool      `json:"isPaid" example:"false"`
}

// UpdateEventRequest represents a partial event update
type UpdateEventRequest struct {
	Title       *string             `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string             `json:"description,omitempty" binding:"omitempty,min=1,max=5000"`
	Date        *time.Time          `json:"date,omitempty"`
	Deadline    *time.Time          `json:"deadline,omitempty"`
	Price       *float64            `json:"price,omitempty"`
	IsPaid      *bool               `json:"isPaid,omitempty"`
	Status      *models.EventStatus `json:"status,omitempty" binding:"omitempty,oneof=upcoming completed" enums:"upcoming,completed"`
}

// EventResponse represents event information
type EventResponse struct {
	ID                 models.EventID     `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Date               time.Time          `json:"date"`
	Deadline           time.Time          `json:"deadline"`
	CreatedBy          models.UserID      `json:"createdBy"`
	Creator            *UserSummary       `json:"creator,omitempty"`
	Price              float64            `json:"price" example:"0"`
	IsPaid             bool               `json:"isPaid"`
	Status             models.EventStatus `json:"status" example:"upcoming" enums:"upcoming,completed"`
	RegistrationsCount int                `json:"registrationsCount" example:"0"`
	Participants       []UserSummary      `json:"participants"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// RegistrationResponse represents a user's registration for an event
type RegistrationResponse struct {
	ID           models.RegistrationID     `json:"id"`
	UserID       models.UserID             `json:"userId"`
	EventID      models.EventID            `json:"eventId"`
	Status       models.RegistrationStatus `json:"status" example:"registered" enums:"registered,attended,cancelled"`
	RegisteredAt time.Time                 `json:"registeredAt"`
	Event        *EventResponse            `json:"event,omitempty"`
}

// RegisterForEventResponse is returned after a successful registration
type RegisterForEventResponse struct {
	Message      string               `json:"message" example:"Successfully registered for event"`
	Registration RegistrationResponse `json:"registration"`
}

// NewEventResponse converts an event model
func NewEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:                 e.ID,
		Title:              e.Title,
		Description:        e.Description,
		Date:               e.Date,
		Deadline:           e.Deadline,
		CreatedBy:          e.CreatedBy,
		Creator:            NewUserSummary(e.Creator),
		Price:              e.Price,
		IsPaid:             e.IsPaid,
		Status:             e.Status,
		RegistrationsCount: e.RegistrationsCount,
		Participants:       newUserSummaries(e.Participants),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// NewEventResponses converts an event list
func NewEventResponses(events []*models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}

// NewRegistrationResponse converts a registration model
func NewRegistrationResponse(r *models.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		EventID:      r.EventID,
		Status:       r.Status,
		RegisteredAt: r.RegisteredAt,
	}
	if r.Event != nil {
		ev := NewEventResponse(r.Event)
		resp.Event = &ev
	}
	return resp
}

// NewRegistrationResponses converts a registration list
func NewRegistrationResponses(regs []*models.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, NewRegistrationResponse(r))
	}
	return out
}
