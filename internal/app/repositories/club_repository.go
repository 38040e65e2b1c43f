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

// IClubRepository defines persistence for clubs and their members
type IClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id models.ClubID) (*models.Club, error)
	GetByOwner(ctx context.Context, ownerID models.UserID) (*models.Club, error)
	List(ctx context.Context) ([]*models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Delete(ctx context.Context, id models.ClubID) error

	AddMember(ctx context.Context, clubID models.ClubID, userID models.UserID) error
	IsMember(ctx context.Context, clubID models.ClubID, userID models.UserID) (bool, error)

	AddPhoto(ctx context.Context, id models.ClubID, url string) error
	RemovePhoto(ctx context.Context, id models.ClubID, url string) error

	// AdjustEventsCount adds delta to the events counter of the club owned by ownerID, never below zero.
	// It is a no-op when the owner has no club.
	AdjustEventsCount(ctx context.Context, ownerID models.UserID, delta int) error
}

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	pool db.Pool
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(pool db.Pool) *ClubRepository {
	return &ClubRepository{pool: pool}
}

func (r *ClubRepository) selectClubs() squirrel.SelectBuilder {
	return psql.Select(
		"c.id", "c.name", "c.description", "c.owner_id", "c.photos", "c.events_count", "c.created_at", "c.updated_at",
		"o.name", "o.email",
	).From("clubs c").Join("users o ON o.id = c.owner_id")
}

func scanClub(row pgx.Row) (*models.Club, error) {
	c := &models.Club{Owner: &models.User{}}
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.OwnerID, &c.Photos, &c.EventsCount, &c.CreatedAt, &c.UpdatedAt,
		&c.Owner.Name, &c.Owner.Email,
	)
	if err != nil {
		return nil, err
	}
	c.Owner.ID = c.OwnerID
	if c.Photos == nil {
		c.Photos = []string{}
	}
	return c, nil
}

// loadMembers attaches members, ordered by join time, to each club
func (r *ClubRepository) loadMembers(ctx context.Context, clubs []*models.Club) error {
	if len(clubs) == 0 {
		return nil
	}
	ids := make([]models.ClubID, len(clubs))
	for i, c := range clubs {
		ids[i] = c.ID
	}

	query, args, err := psql.Select("cm.club_id", "u.id", "u.name", "u.email").
		From("club_members cm").
		Join("users u ON u.id = cm.user_id").
		Where("cm.club_id = ANY(?)", idStrings(ids)).
		OrderBy("cm.joined_at", "u.id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build club members query: %w", err)
	}

	members, err := queryUsers[models.ClubID](ctx, db.Conn(ctx, r.pool), query, args)
	if err != nil {
		return fmt.Errorf("failed to load club members: %w", err)
	}
	for _, c := range clubs {
		c.Members = members[c.ID]
		if c.Members == nil {
			c.Members = []*models.User{}
		}
	}
	return nil
}

func (r *ClubRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Club, error) {
	query, args, err := r.selectClubs().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build club query: %w", err)
	}

	club, err := scanClub(db.Conn(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	if err := r.loadMembers(ctx, []*models.Club{club}); err != nil {
		return nil, err
	}
	return club, nil
}

// Create inserts a club. The owner's membership is added separately.
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) error {
	if club.Photos == nil {
		club.Photos = []string{}
	}
	query, args, err := psql.Insert("clubs").
		Columns("id", "name", "description", "owner_id", "photos").
		Values(club.ID, club.Name, club.Description, club.OwnerID, club.Photos).
		Suffix("RETURNING events_count, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert club query: %w", err)
	}

	err = db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&club.EventsCount, &club.CreatedAt, &club.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ClubsOwnerIDKey) {
			return apperrors.ErrClubAlreadyOwned
		}
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

// GetByID retrieves a club with owner and members
func (r *ClubRepository) GetByID(ctx context.Context, id models.ClubID) (*models.Club, error) {
	return r.getOne(ctx, squirrel.Eq{"c.id": id})
}

// GetByOwner retrieves the club owned by ownerID
func (r *ClubRepository) GetByOwner(ctx context.Context, ownerID models.UserID) (*models.Club, error) {
	return r.getOne(ctx, squirrel.Eq{"c.owner_id": ownerID})
}

// List returns all clubs with owners and members
func (r *ClubRepository) List(ctx context.Context) ([]*models.Club, error) {
	query, args, err := r.selectClubs().OrderBy("c.created_at", "c.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list clubs query: %w", err)
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	clubs, err := collect(rows, scanClub)
	if err != nil {
		return nil, fmt.Errorf("failed to scan clubs: %w", err)
	}
	if err := r.loadMembers(ctx, clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// Update writes name and description
func (r *ClubRepository) Update(ctx context.Context, club *models.Club) error {
	query, args, err := psql.Update("clubs").
		Set("name", club.Name).
		Set("description", club.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": club.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update club query: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&club.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrClubNotFound
		}
		return fmt.Errorf("failed to update club: %w", err)
	}
	return nil
}

// Delete removes a club and its memberships
func (r *ClubRepository) Delete(ctx context.Context, id models.ClubID) error {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM clubs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}

// AddMember inserts a membership
func (r *ClubRepository) AddMember(ctx context.Context, clubID models.ClubID, userID models.UserID) error {
	query, args, err := psql.Insert("club_members").Columns("club_id", "user_id").Values(clubID, userID).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add member query: %w", err)
	}

	if _, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ClubMembersPkey) {
			return apperrors.ErrAlreadyClubMember
		}
		return fmt.Errorf("failed to add club member: %w", err)
	}
	return nil
}

// IsMember reports whether userID belongs to clubID
func (r *ClubRepository) IsMember(ctx context.Context, clubID models.ClubID, userID models.UserID) (bool, error) {
	var exists bool
	err := db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM club_members WHERE club_id = $1 AND user_id = $2)`,
		clubID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check club membership: %w", err)
	}
	return exists, nil
}

func (r *ClubRepository) updatePhotos(ctx context.Context, id models.ClubID, expr string, url string) error {
	query, args, err := psql.Update("clubs").
		Set("photos", squirrel.Expr(expr, url)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build club photos query: %w", err)
	}

	tag, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update club photos: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrClubNotFound
	}
	return nil
}

// AddPhoto appends url to the club's photos
func (r *ClubRepository) AddPhoto(ctx context.Context, id models.ClubID, url string) error {
	return r.updatePhotos(ctx, id, "array_append(photos, ?)", url)
}

// RemovePhoto removes every exact occurrence of url; a missing url leaves photos unchanged
func (r *ClubRepository) RemovePhoto(ctx context.Context, id models.ClubID, url string) error {
	return r.updatePhotos(ctx, id, "array_remove(photos, ?)", url)
}

// AdjustEventsCount moves the events counter of the owner's club by delta
func (r *ClubRepository) AdjustEventsCount(ctx context.Context, ownerID models.UserID, delta int) error {
	query, args, err := psql.Update("clubs").
		Set("events_count", squirrel.Expr("GREATEST(events_count + ?, 0)", delta)).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build events count query: %w", err)
	}

	if _, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to adjust club events count: %w", err)
	}
	return nil
}
