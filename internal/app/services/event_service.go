package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/validation"
)

// Event messages
const (
	MsgEventDeleted       = "Event deleted successfully"
	MsgRegisteredForEvent = "Successfully registered for event"
)

// EventService manages events and registrations
type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	Get(ctx context.Context, id models.EventID) (*models.Event, error)
	ListMine(ctx context.Context, actor auth.Actor) ([]*models.Event, error)
	ListRegistrations(ctx context.Context, actor auth.Actor) ([]*models.Registration, error)
	Create(ctx context.Context, actor auth.Actor, req *dto.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, actor auth.Actor, id models.EventID, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, actor auth.Actor, id models.EventID) error
	Register(ctx context.Context, actor auth.Actor, id models.EventID) (*models.Registration, error)
}

type eventServiceImpl struct {
	deps Dependencies
}

// NewEventService creates a new EventService
func NewEventService(deps Dependencies) EventService {
	return &eventServiceImpl{deps: deps.withDefaults()}
}

// List returns all events ordered by date
func (s *eventServiceImpl) List(ctx context.Context) ([]*models.Event, error) {
	return s.deps.Events.List(ctx)
}

// Get returns one event with creator and participants
func (s *eventServiceImpl) Get(ctx context.Context, id models.EventID) (*models.Event, error) {
	return s.deps.Events.GetByID(ctx, id)
}

// ListMine returns the events created by the actor
func (s *eventServiceImpl) ListMine(ctx context.Context, actor auth.Actor) ([]*models.Event, error) {
	if err := auth.Authorize(actor, auth.ActionViewOwnEvents, nil); err != nil {
		return nil, err
	}
	return s.deps.Events.ListByCreator(ctx, actor.ID)
}

// ListRegistrations returns the actor's registrations with their events
func (s *eventServiceImpl) ListRegistrations(ctx context.Context, actor auth.Actor) ([]*models.Registration, error) {
	return s.deps.Registrations.ListByUser(ctx, actor.ID)
}

// validateSchedule enforces deadline < date and the price rules; it normalizes price in place
func validateSchedule(e *models.Event) error {
	if e.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}
	if e.Deadline.IsZero() {
		return apperrors.NewValidationError("deadline is required")
	}
	if !e.DeadlineBeforeDate() {
		return apperrors.ErrDeadlineNotBeforeDate
	}
	if e.Price < 0 {
		return apperrors.NewValidationError("price cannot be negative")
	}
	if !e.IsPaid {
		e.Price = 0
	}
	return nil
}

// Create schedules an event and counts it on the creator's club
func (s *eventServiceImpl) Create(ctx context.Context, actor auth.Actor, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := auth.Authorize(actor, auth.ActionCreateEvent, nil); err != nil {
		return nil, err
	}
	if err := validation.Required(
		validation.Field{Name: "title", Value: req.Title},
		validation.Field{Name: "description", Value: req.Description},
	); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          models.NewEventID(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
		Deadline:    req.Deadline,
		CreatedBy:   actor.ID,
		Price:       req.Price,
		IsPaid:      req.IsPaid,
		Status:      models.EventUpcoming,
	}
	if err := validateSchedule(event); err != nil {
		return nil, err
	}

	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.deps.Events.Create(ctx, event); err != nil {
			return err
		}
		return s.deps.Clubs.AdjustEventsCount(ctx, actor.ID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info().
		Str("eventID", string(event.ID)).
		Str("creatorID", string(actor.ID)).
		Msg("Event created")
	return s.deps.Events.GetByID(ctx, event.ID)
}

// Update applies the supplied fields; only the creator may update
func (s *eventServiceImpl) Update(ctx context.Context, actor auth.Actor, id models.EventID, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.deps.Events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionUpdateEvent, &event.CreatedBy); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := validation.Required(validation.Field{Name: "title", Value: *req.Title}); err != nil {
			return nil, err
		}
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		if err := validation.Required(validation.Field{Name: "description", Value: *req.Description}); err != nil {
			return nil, err
		}
		event.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Deadline != nil {
		event.Deadline = *req.Deadline
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.IsPaid != nil {
		event.IsPaid = *req.IsPaid
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, apperrors.NewValidationError("status must be either upcoming or completed")
		}
		event.Status = *req.Status
	}
	if err := validateSchedule(event); err != nil {
		return nil, err
	}

	if err := s.deps.Events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event and its registrations; only the creator may delete
func (s *eventServiceImpl) Delete(ctx context.Context, actor auth.Actor, id models.EventID) error {
	event, err := s.deps.Events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(actor, auth.ActionDeleteEvent, &event.CreatedBy); err != nil {
		return err
	}

	err = s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.deps.Events.Delete(ctx, id); err != nil {
			return err
		}
		return s.deps.Clubs.AdjustEventsCount(ctx, event.CreatedBy, -1)
	})
	if err != nil {
		return err
	}

	s.deps.Logger.Info().
		Str("eventID", string(id)).
		Str("actorID", string(actor.ID)).
		Msg("Event deleted")
	return nil
}

// Register signs the actor up for an upcoming event whose deadline has not passed
func (s *eventServiceImpl) Register(ctx context.Context, actor auth.Actor, id models.EventID) (*models.Registration, error) {
	reg := &models.Registration{
		ID:      models.NewRegistrationID(),
		UserID:  actor.ID,
		EventID: id,
		Status:  models.RegistrationRegistered,
	}

	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		event, err := s.deps.Events.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if event.Status == models.EventCompleted {
			return apperrors.ErrRegistrationClosed
		}
		if s.deps.Now().After(event.Deadline) {
			return apperrors.NewValidationError("registration deadline has passed")
		}

		exists, err := s.deps.Registrations.Exists(ctx, actor.ID, id)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrAlreadyRegistered
		}

		if err := s.deps.Registrations.Create(ctx, reg); err != nil {
			return err
		}
		return s.deps.Events.IncrementRegistrations(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	event, err := s.deps.Events.GetByID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrEventNotFound) {
		return nil, err
	}
	reg.Event = event

	s.deps.Logger.Debug().
		Str("eventID", string(id)).
		Str("userID", string(actor.ID)).
		Msg("User registered for event")
	return reg, nil
}
