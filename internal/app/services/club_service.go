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

// Club messages
const (
	MsgClubJoined       = "Successfully joined club"
	MsgClubDeleted      = "Club deleted successfully"
	MsgClubPhotoAdded   = "Photo added successfully"
	MsgClubPhotoRemoved = "Photo removed successfully"
)

// ClubService manages clubs, their members and photos
type ClubService interface {
	List(ctx context.Context) ([]*models.Club, error)
	Get(ctx context.Context, id models.ClubID) (*models.Club, error)
	GetMine(ctx context.Context, actor auth.Actor) (*models.Club, error)
	Create(ctx context.Context, actor auth.Actor, req *dto.CreateClubRequest) (*models.Club, error)
	Update(ctx context.Context, actor auth.Actor, id models.ClubID, req *dto.UpdateClubRequest) (*models.Club, error)
	Delete(ctx context.Context, actor auth.Actor, id models.ClubID) error
	Join(ctx context.Context, actor auth.Actor, id models.ClubID) (*models.Club, error)
	AddPhoto(ctx context.Context, actor auth.Actor, id models.ClubID, url string) (*models.Club, error)
	RemovePhoto(ctx context.Context, actor auth.Actor, id models.ClubID, url string) (*models.Club, error)
}

type clubServiceImpl struct {
	deps Dependencies
}

// NewClubService creates a new ClubService
func NewClubService(deps Dependencies) ClubService {
	return &clubServiceImpl{deps: deps.withDefaults()}
}

// List returns all clubs with owners and members
func (s *clubServiceImpl) List(ctx context.Context) ([]*models.Club, error) {
	return s.deps.Clubs.List(ctx)
}

// Get returns one club with owner and members
func (s *clubServiceImpl) Get(ctx context.Context, id models.ClubID) (*models.Club, error) {
	return s.deps.Clubs.GetByID(ctx, id)
}

// GetMine returns the club owned by the actor
func (s *clubServiceImpl) GetMine(ctx context.Context, actor auth.Actor) (*models.Club, error) {
	if err := auth.Authorize(actor, auth.ActionViewOwnClub, nil); err != nil {
		return nil, err
	}
	club, err := s.deps.Clubs.GetByOwner(ctx, actor.ID)
	if errors.Is(err, apperrors.ErrClubNotFound) {
		return nil, apperrors.NewResourceNotFoundError("you don't have a club yet")
	}
	return club, err
}

// Create makes the actor the owner and first member of a new club. An admin owns at most one club.
func (s *clubServiceImpl) Create(ctx context.Context, actor auth.Actor, req *dto.CreateClubRequest) (*models.Club, error) {
	if err := auth.Authorize(actor, auth.ActionCreateClub, nil); err != nil {
		return nil, err
	}
	if err := validation.Required(
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "description", Value: req.Description},
	); err != nil {
		return nil, err
	}

	club := &models.Club{
		ID:          models.NewClubID(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		OwnerID:     actor.ID,
		Photos:      []string{},
	}

	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.deps.Clubs.GetByOwner(ctx, actor.ID); err == nil {
			return apperrors.ErrClubAlreadyOwned
		} else if !errors.Is(err, apperrors.ErrClubNotFound) {
			return err
		}

		if err := s.deps.Clubs.Create(ctx, club); err != nil {
			return err
		}
		return s.deps.Clubs.AddMember(ctx, club.ID, actor.ID)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info().
		Str("clubID", string(club.ID)).
		Str("ownerID", string(actor.ID)).
		Msg("Club created")
	return s.deps.Clubs.GetByID(ctx, club.ID)
}

// Update changes name and description; allowed for the owner and any admin
func (s *clubServiceImpl) Update(ctx context.Context, actor auth.Actor, id models.ClubID, req *dto.UpdateClubRequest) (*models.Club, error) {
	club, err := s.deps.Clubs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionUpdateClub, &club.OwnerID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validation.Required(validation.Field{Name: "name", Value: *req.Name}); err != nil {
			return nil, err
		}
		club.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		if err := validation.Required(validation.Field{Name: "description", Value: *req.Description}); err != nil {
			return nil, err
		}
		club.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.deps.Clubs.Update(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// Delete removes the club; allowed for the owner and any admin
func (s *clubServiceImpl) Delete(ctx context.Context, actor auth.Actor, id models.ClubID) error {
	club, err := s.deps.Clubs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(actor, auth.ActionDeleteClub, &club.OwnerID); err != nil {
		return err
	}

	if err := s.deps.Clubs.Delete(ctx, id); err != nil {
		return err
	}
	s.deps.Logger.Info().
		Str("clubID", string(id)).
		Str("actorID", string(actor.ID)).
		Msg("Club deleted")
	return nil
}

// Join adds the actor to the club's members
func (s *clubServiceImpl) Join(ctx context.Context, actor auth.Actor, id models.ClubID) (*models.Club, error) {
	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.deps.Clubs.GetByID(ctx, id); err != nil {
			return err
		}

		member, err := s.deps.Clubs.IsMember(ctx, id, actor.ID)
		if err != nil {
			return err
		}
		if member {
			return apperrors.ErrAlreadyClubMember
		}
		return s.deps.Clubs.AddMember(ctx, id, actor.ID)
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Debug().
		Str("clubID", string(id)).
		Str("userID", string(actor.ID)).
		Msg("User joined club")
	return s.deps.Clubs.GetByID(ctx, id)
}

// AddPhoto appends a photo URL; only the owner may manage photos
func (s *clubServiceImpl) AddPhoto(ctx context.Context, actor auth.Actor, id models.ClubID, url string) (*models.Club, error) {
	return s.managePhoto(ctx, actor, id, url, s.deps.Clubs.AddPhoto)
}

// RemovePhoto drops every exact match of url; a missing URL leaves the club unchanged
func (s *clubServiceImpl) RemovePhoto(ctx context.Context, actor auth.Actor, id models.ClubID, url string) (*models.Club, error) {
	return s.managePhoto(ctx, actor, id, url, s.deps.Clubs.RemovePhoto)
}

func (s *clubServiceImpl) managePhoto(
	ctx context.Context,
	actor auth.Actor,
	id models.ClubID,
	url string,
	apply func(context.Context, models.ClubID, string) error,
) (*models.Club, error) {
	if err := validation.Required(validation.Field{Name: "photoUrl", Value: url}); err != nil {
		return nil, err
	}

	club, err := s.deps.Clubs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.Authorize(actor, auth.ActionManagePhoto, &club.OwnerID); err != nil {
		return nil, err
	}

	if err := apply(ctx, id, url); err != nil {
		return nil, err
	}
	return s.deps.Clubs.GetByID(ctx, id)
}
