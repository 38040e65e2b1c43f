package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/db"
)

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	_ IUserRepository         = (*UserRepository)(nil)
	_ IAdminRequestRepository = (*AdminRequestRepository)(nil)
	_ IClubRepository         = (*ClubRepository)(nil)
	_ IEventRepository        = (*EventRepository)(nil)
	_ IRegistrationRepository = (*RegistrationRepository)(nil)
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	AdminRequestRepository *AdminRequestRepository
	ClubRepository         *ClubRepository
	EventRepository        *EventRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories initializes all repositories on one pool
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(pool),
		AdminRequestRepository: NewAdminRequestRepository(pool),
		ClubRepository:         NewClubRepository(pool),
		EventRepository:        NewEventRepository(pool),
		RegistrationRepository: NewRegistrationRepository(pool),
	}
}

// queryUsers scans rows of (owner key, id, name, email) into users grouped by key
func queryUsers[K ~string](ctx context.Context, q db.Querier, sql string, args []interface{}) (map[K][]*models.User, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[K][]*models.User)
	for rows.Next() {
		var key K
		u := &models.User{}
		if err := rows.Scan(&key, &u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out[key] = append(out[key], u)
	}
	return out, rows.Err()
}

// collect scans every row with scan
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func idStrings[T ~string](ids []T) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
