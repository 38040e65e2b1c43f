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

// bootstrapLockKey serializes first-user registration
const bootstrapLockKey int64 = 7_342_001

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id models.UserID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id models.UserID, role models.Role) error
	Delete(ctx context.Context, id models.UserID) error

	// LockAdmins row-locks every admin until the surrounding transaction ends and returns their IDs
	LockAdmins(ctx context.Context) ([]models.UserID, error)
	// LockBootstrap takes a transaction-scoped advisory lock guarding the first-user rule
	LockBootstrap(ctx context.Context) error
}

// UserRepository handles database operations for users
type UserRepository struct {
	pool db.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool db.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) selectUsers() squirrel.SelectBuilder {
	return psql.Select(
		"u.id", "u.email", "u.password", "u.name", "u.role", "u.created_at", "u.updated_at",
		"ARRAY(SELECT cm.club_id::text FROM club_members cm WHERE cm.user_id = u.id ORDER BY cm.joined_at) AS clubs_joined",
	).From("users u")
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	var clubs []string
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt, &clubs); err != nil {
		return nil, err
	}
	u.ClubsJoined = make([]models.ClubID, len(clubs))
	for i, c := range clubs {
		u.ClubsJoined[i] = models.ClubID(c)
	}
	return u, nil
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	query, args, err := r.selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	u, err := scanUser(db.Conn(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Create inserts a new user. The email must already be normalized.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "email", "password", "name", "role").
		Values(user.ID, user.Email, user.Password, user.Name, user.Role).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}

	err = db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.UsersEmailKey) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id models.UserID) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id})
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.email": email})
}

// List returns all users, oldest first
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query, args, err := r.selectUsers().OrderBy("u.created_at", "u.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return users, nil
}

// Count returns the number of registered users
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := db.Conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// UpdateRole sets the role of a user
func (r *UserRepository) UpdateRole(ctx context.Context, id models.UserID, role models.Role) error {
	query, args, err := psql.Update("users").
		Set("role", role).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update role query: %w", err)
	}

	tag, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user; memberships, registrations, clubs and events cascade
func (r *UserRepository) Delete(ctx context.Context, id models.UserID) error {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// LockAdmins returns the IDs of all admins, locked FOR UPDATE
func (r *UserRepository) LockAdmins(ctx context.Context) ([]models.UserID, error) {
	rows, err := db.Conn(ctx, r.pool).Query(ctx, `SELECT id FROM users WHERE role = $1 ORDER BY id FOR UPDATE`, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to lock admins: %w", err)
	}
	defer rows.Close()

	var ids []models.UserID
	for rows.Next() {
		var id models.UserID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan admin id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LockBootstrap blocks until no other transaction holds the bootstrap lock
func (r *UserRepository) LockBootstrap(ctx context.Context) error {
	if _, err := db.Conn(ctx, r.pool).Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, bootstrapLockKey); err != nil {
		return fmt.Errorf("failed to take bootstrap lock: %w", err)
	}
	return nil
}
