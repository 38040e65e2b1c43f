package services

import (
	"context"

	"github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

// User administration messages
const (
	MsgUserPromoted = "User promoted to admin"
	MsgUserDemoted  = "User demoted to member"
	MsgUserDeleted  = "User deleted successfully"
)

// UserService defines admin operations on user accounts
type UserService interface {
	List(ctx context.Context, actor auth.Actor) ([]*models.User, error)
	Promote(ctx context.Context, actor auth.Actor, userID models.UserID) (*models.User, error)
	Demote(ctx context.Context, actor auth.Actor, userID models.UserID) (*models.User, error)
	Delete(ctx context.Context, actor auth.Actor, userID models.UserID) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	deps Dependencies
}

// NewUserService creates a new UserService
func NewUserService(deps Dependencies) UserService {
	return &userServiceImpl{deps: deps.withDefaults()}
}

// List returns every user without credentials
func (s *userServiceImpl) List(ctx context.Context, actor auth.Actor) ([]*models.User, error) {
	if err := auth.Authorize(actor, auth.ActionListUsers, nil); err != nil {
		return nil, err
	}
	return s.deps.Users.List(ctx)
}

// Promote grants the admin role. A pending admin request of the target is approved by the actor.
func (s *userServiceImpl) Promote(ctx context.Context, actor auth.Actor, userID models.UserID) (*models.User, error) {
	if err := auth.Authorize(actor, auth.ActionPromoteUser, nil); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.deps.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		if user.IsAdmin() {
			return apperrors.ErrAlreadyAdmin
		}

		if err := s.deps.Users.UpdateRole(ctx, userID, models.RoleAdmin); err != nil {
			return err
		}
		resolved, err := s.deps.AdminRequests.ResolvePendingForUser(ctx, userID, models.AdminRequestApproved, actor.ID, s.deps.Now())
		if err != nil {
			return err
		}
		if resolved {
			s.deps.Logger.Debug().Str("userID", string(userID)).Msg("Pending admin request approved by promotion")
		}
		user.Role = models.RoleAdmin

		return s.deps.revoke(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	s.deps.revokeAfterCommit(ctx, userID)

	s.deps.Logger.Info().
		Str("actorID", string(actor.ID)).
		Str("userID", string(userID)).
		Msg("User promoted to admin")
	return user, nil
}

// Demote sets the role back to member. The last remaining admin cannot be demoted.
func (s *userServiceImpl) Demote(ctx context.Context, actor auth.Actor, userID models.UserID) (*models.User, error) {
	if err := auth.Authorize(actor, auth.ActionDemoteUser, nil); err != nil {
		return nil, err
	}

	var user *models.User
	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.deps.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		if user.Role == models.RoleMember {
			return apperrors.ErrAlreadyMember
		}
		if user.IsAdmin() {
			if err := s.ensureNotLastAdmin(ctx); err != nil {
				return err
			}
		}

		if err := s.deps.Users.UpdateRole(ctx, userID, models.RoleMember); err != nil {
			return err
		}
		if _, err := s.deps.AdminRequests.ResolvePendingForUser(ctx, userID, models.AdminRequestRejected, actor.ID, s.deps.Now()); err != nil {
			return err
		}
		user.Role = models.RoleMember

		return s.deps.revoke(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	s.deps.revokeAfterCommit(ctx, userID)

	s.deps.Logger.Info().
		Str("actorID", string(actor.ID)).
		Str("userID", string(userID)).
		Msg("User demoted to member")
	return user, nil
}

// Delete removes another user's account together with everything it owns
func (s *userServiceImpl) Delete(ctx context.Context, actor auth.Actor, userID models.UserID) error {
	if err := auth.Authorize(actor, auth.ActionDeleteUser, nil); err != nil {
		return err
	}
	if userID == actor.ID {
		return apperrors.ErrSelfDelete
	}

	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.deps.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user.IsAdmin() {
			if err := s.ensureNotLastAdmin(ctx); err != nil {
				return err
			}
		}

		if err := s.deps.Events.ReleaseRegistrationsOf(ctx, userID); err != nil {
			return err
		}
		if err := s.deps.Users.Delete(ctx, userID); err != nil {
			return err
		}
		return s.deps.revoke(ctx, userID)
	})
	if err != nil {
		return err
	}
	s.deps.revokeAfterCommit(ctx, userID)

	s.deps.Logger.Info().
		Str("actorID", string(actor.ID)).
		Str("userID", string(userID)).
		Msg("User deleted")
	return nil
}

// ensureNotLastAdmin locks all admin rows so concurrent demotions serialize on the count
func (s *userServiceImpl) ensureNotLastAdmin(ctx context.Context) error {
	admins, err := s.deps.Users.LockAdmins(ctx)
	if err != nil {
		return err
	}
	if len(admins) <= 1 {
		return apperrors.ErrLastAdmin
	}
	return nil
}
