package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/db"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/dberrors"
)

// IRegistrationRepository defines persistence for event registrations
type IRegistrationRepository interface {
	Create(ctx context.Context, reg *models.Registration) error
	Exists(ctx context.Context, userID models.UserID, eventID models.EventID) (bool, error)
	ListByUser(ctx context.Context, userID models.UserID) ([]*models.Registration, error)
}

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	pool db.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(pool db.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

// Create inserts a registration; a second one for the same (user, event) is a conflict
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	query, args, err := psql.Insert("registrations").
		Columns("id", "user_id", "event_id", "status").
		Values(reg.ID, reg.UserID, reg.EventID, reg.Status).
		Suffix("RETURNING registered_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert registration query: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&reg.RegisteredAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.RegistrationsUserEventKey) {
			return apperrors.ErrAlreadyRegistered
		}
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

// Exists reports whether userID is registered for eventID
func (r *RegistrationRepository) Exists(ctx context.Context, userID models.UserID, eventID models.EventID) (bool, error) {
	var exists bool
	err := db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM registrations WHERE user_id = $1 AND event_id = $2)`,
		userID, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return exists, nil
}

// ListByUser returns the user's registrations with their events, newest first
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID models.UserID) ([]*models.Registration, error) {
	query, args, err := psql.Select(
		"r.id", "r.user_id", "r.event_id", "r.status", "r.registered_at",
		"e.id", "e.title", "e.description", "e.date", "e.deadline", "e.created_by",
		"e.price::float8", "e.is_paid", "e.status", "e.registrations_count", "e.created_at", "e.updated_at",
		"u.name", "u.email",
	).
		From("registrations r").
		Join("events e ON e.id = r.event_id").
		Join("users u ON u.id = e.created_by").
		Where("r.user_id = ?", userID).
		OrderBy("r.registered_at DESC", "r.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list registrations query: %w", err)
	}

	q := db.Conn(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	regs, err := collect(rows, func(row pgx.Row) (*models.Registration, error) {
		reg := &models.Registration{Event: &models.Event{Creator: &models.User{}}}
		e := reg.Event
		err := row.Scan(
			&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &reg.RegisteredAt,
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Deadline, &e.CreatedBy,
			&e.Price, &e.IsPaid, &e.Status, &e.RegistrationsCount, &e.CreatedAt, &e.UpdatedAt,
			&e.Creator.Name, &e.Creator.Email,
		)
		if err != nil {
			return nil, err
		}
		e.Creator.ID = e.CreatedBy
		return reg, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan registrations: %w", err)
	}

	events := make([]*models.Event, len(regs))
	for i, reg := range regs {
		events[i] = reg.Event
	}
	if err := loadParticipants(ctx, q, events); err != nil {
		return nil, err
	}
	return regs, nil
}
