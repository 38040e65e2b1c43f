package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/db"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/dberrors"
)

// IAdminRequestRepository defines persistence for admin-role requests
type IAdminRequestRepository interface {
	Create(ctx context.Context, req *models.AdminRequest) error
	GetByID(ctx context.Context, id models.AdminRequestID) (*models.AdminRequest, error)
	ListPending(ctx context.Context) ([]*models.AdminRequest, error)
	ListAll(ctx context.Context) ([]*models.AdminRequest, error)
	// Resolve moves a pending request to status; ErrAdminRequestNotPending if it already left pending
	Resolve(ctx context.Context, id models.AdminRequestID, status models.AdminRequestStatus, by models.UserID, at time.Time) error
	// ResolvePendingForUser resolves the user's pending request, if any, and reports whether one existed
	ResolvePendingForUser(ctx context.Context, userID models.UserID, status models.AdminRequestStatus, by models.UserID, at time.Time) (bool, error)
}

// AdminRequestRepository handles database operations for admin requests
type AdminRequestRepository struct {
	pool db.Pool
}

// NewAdminRequestRepository creates a new AdminRequestRepository
func NewAdminRequestRepository(pool db.Pool) *AdminRequestRepository {
	return &AdminRequestRepository{pool: pool}
}

var adminRequestColumns = []string{
	"id", "user_id", "name", "email", "reason", "status", "requested_at", "resolved_at", "resolved_by",
}

func scanAdminRequest(row pgx.Row) (*models.AdminRequest, error) {
	r := &models.AdminRequest{}
	err := row.Scan(&r.ID, &r.UserID, &r.Name, &r.Email, &r.Reason, &r.Status, &r.RequestedAt, &r.ResolvedAt, &r.ResolvedBy)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Create inserts a pending request
func (r *AdminRequestRepository) Create(ctx context.Context, req *models.AdminRequest) error {
	query, args, err := psql.Insert("admin_requests").
		Columns("id", "user_id", "name", "email", "reason", "status").
		Values(req.ID, req.UserID, req.Name, req.Email, req.Reason, req.Status).
		Suffix("RETURNING requested_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert admin request query: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&req.RequestedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.AdminRequestsPendingKey) {
			return apperrors.NewConflictError("a pending admin request already exists for this user")
		}
		return fmt.Errorf("failed to create admin request: %w", err)
	}
	return nil
}

// GetByID retrieves an admin request by ID
func (r *AdminRequestRepository) GetByID(ctx context.Context, id models.AdminRequestID) (*models.AdminRequest, error) {
	query, args, err := psql.Select(adminRequestColumns...).From("admin_requests").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin request query: %w", err)
	}

	req, err := scanAdminRequest(db.Conn(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAdminRequestNotFound
		}
		return nil, fmt.Errorf("failed to get admin request: %w", err)
	}
	return req, nil
}

func (r *AdminRequestRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.AdminRequest, error) {
	builder := psql.Select(adminRequestColumns...).From("admin_requests").OrderBy("requested_at DESC", "id")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list admin requests query: %w", err)
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin requests: %w", err)
	}
	reqs, err := collect(rows, scanAdminRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to scan admin requests: %w", err)
	}
	return reqs, nil
}

// ListPending returns pending requests, newest first
func (r *AdminRequestRepository) ListPending(ctx context.Context) ([]*models.AdminRequest, error) {
	return r.list(ctx, squirrel.Eq{"status": models.AdminRequestPending})
}

// ListAll returns the full request history, newest first
func (r *AdminRequestRepository) ListAll(ctx context.Context) ([]*models.AdminRequest, error) {
	return r.list(ctx, nil)
}

func (r *AdminRequestRepository) resolve(ctx context.Context, where squirrel.Eq, status models.AdminRequestStatus, by models.UserID, at time.Time) (int64, error) {
	where["status"] = models.AdminRequestPending
	query, args, err := psql.Update("admin_requests").
		Set("status", status).
		Set("resolved_at", at).
		Set("resolved_by", by).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build resolve admin request query: %w", err)
	}

	tag, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve admin request: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Resolve updates the request only while it is still pending
func (r *AdminRequestRepository) Resolve(ctx context.Context, id models.AdminRequestID, status models.AdminRequestStatus, by models.UserID, at time.Time) error {
	n, err := r.resolve(ctx, squirrel.Eq{"id": id}, status, by, at)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrAdminRequestNotPending
	}
	return nil
}

// ResolvePendingForUser resolves the pending request of userID if there is one
func (r *AdminRequestRepository) ResolvePendingForUser(ctx context.Context, userID models.UserID, status models.AdminRequestStatus, by models.UserID, at time.Time) (bool, error) {
	n, err := r.resolve(ctx, squirrel.Eq{"user_id": userID}, status, by, at)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
