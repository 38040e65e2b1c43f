package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/db"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/dberrors"
)

// IEventRepository defines persistence for events
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id models.EventID) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	ListByCreator(ctx context.Context, creatorID models.UserID) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id models.EventID) error

	IncrementRegistrations(ctx context.Context, id models.EventID) error
	// ReleaseRegistrationsOf decrements the counter of every event userID is registered for
	ReleaseRegistrationsOf(ctx context.Context, userID models.UserID) error
}

// EventRepository handles database operations for events
type EventRepository struct {
	pool db.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(pool db.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func selectEvents() squirrel.SelectBuilder {
	return psql.Select(
		"e.id", "e.title", "e.description", "e.date", "e.deadline", "e.created_by",
		"e.price::float8", "e.is_paid", "e.status", "e.registrations_count", "e.created_at", "e.updated_at",
		"u.name", "u.email",
	).From("events e").Join("users u ON u.id = e.created_by")
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	e := &models.Event{Creator: &models.User{}}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Deadline, &e.CreatedBy,
		&e.Price, &e.IsPaid, &e.Status, &e.RegistrationsCount, &e.CreatedAt, &e.UpdatedAt,
		&e.Creator.Name, &e.Creator.Email,
	)
	if err != nil {
		return nil, err
	}
	e.Creator.ID = e.CreatedBy
	return e, nil
}

// loadParticipants attaches registered users, in registration order, to each event
func loadParticipants(ctx context.Context, q db.Querier, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]models.EventID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	query, args, err := psql.Select("r.event_id", "u.id", "u.name", "u.email").
		From("registrations r").
		Join("users u ON u.id = r.user_id").
		Where("r.event_id = ANY(?)", idStrings(ids)).
		OrderBy("r.registered_at", "u.id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build participants query: %w", err)
	}

	participants, err := queryUsers[models.EventID](ctx, q, query, args)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}
	for _, e := range events {
		e.Participants = participants[e.ID]
		if e.Participants == nil {
			e.Participants = []*models.User{}
		}
	}
	return nil
}

func (r *EventRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Event, error) {
	builder := selectEvents().OrderBy("e.date", "e.id")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	q := db.Conn(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events, err := collect(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	if err := loadParticipants(ctx, q, events); err != nil {
		return nil, err
	}
	return events, nil
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query, args, err := psql.Insert("events").
		Columns("id", "title", "description", "date", "deadline", "created_by", "price", "is_paid", "status").
		Values(event.ID, event.Title, event.Description, event.Date, event.Deadline, event.CreatedBy, event.Price, event.IsPaid, event.Status).
		Suffix("RETURNING registrations_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert event query: %w", err)
	}

	err = db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&event.RegistrationsCount, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID retrieves an event with creator and participants
func (r *EventRepository) GetByID(ctx context.Context, id models.EventID) (*models.Event, error) {
	query, args, err := selectEvents().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event query: %w", err)
	}

	q := db.Conn(ctx, r.pool)
	event, err := scanEvent(q.QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if err := loadParticipants(ctx, q, []*models.Event{event}); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns all events ordered by date
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	return r.list(ctx, nil)
}

// ListByCreator returns the events created by creatorID
func (r *EventRepository) ListByCreator(ctx context.Context, creatorID models.UserID) ([]*models.Event, error) {
	return r.list(ctx, squirrel.Eq{"e.created_by": creatorID})
}

// Update writes every mutable field of event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query, args, err := psql.Update("events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("date", event.Date).
		Set("deadline", event.Deadline).
		Set("price", event.Price).
		Set("is_paid", event.IsPaid).
		Set("status", event.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&event.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete removes an event and its registrations
func (r *EventRepository) Delete(ctx context.Context, id models.EventID) error {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// IncrementRegistrations bumps the registrations counter by one
func (r *EventRepository) IncrementRegistrations(ctx context.Context, id models.EventID) error {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx,
		`UPDATE events SET registrations_count = registrations_count + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment registrations: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// ReleaseRegistrationsOf decrements counters for the events userID registered for
func (r *EventRepository) ReleaseRegistrationsOf(ctx context.Context, userID models.UserID) error {
	_, err := db.Conn(ctx, r.pool).Exec(ctx, `
		UPDATE events
		SET registrations_count = GREATEST(registrations_count - 1, 0), updated_at = NOW()
		WHERE id IN (SELECT event_id FROM registrations WHERE user_id = $1)`, userID)
	if err != nil {
		return fmt.Errorf("failed to release registrations: %w", err)
	}
	return nil
}
