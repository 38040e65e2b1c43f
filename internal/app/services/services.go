// Package services implements the business rules of users, admin requests,
// clubs and events on top of the repositories.
package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/repositories"
	"github.com/yigit/clubhub/internal/db"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
	"github.com/yigit/clubhub/internal/pkg/session"
)

// Dependencies groups what every service may need. Nil Revoker means no revocation.
type Dependencies struct {
	Users         repositories.IUserRepository
	AdminRequests repositories.IAdminRequestRepository
	Clubs         repositories.IClubRepository
	Events        repositories.IEventRepository
	Registrations repositories.IRegistrationRepository
	Tx            db.Transactor
	Revoker       session.Revoker
	Logger        zerolog.Logger
	Now           func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Revoker == nil {
		d.Revoker = session.NoopStore{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Services holds every service built from one set of dependencies
type Services struct {
	Auth          AuthService
	AdminRequests AdminRequestService
	Users         UserService
	Clubs         ClubService
	Events        EventService
}

// NewServices builds all services
func NewServices(deps Dependencies, tokens TokenIssuer, hasher PasswordHasher) *Services {
	deps = deps.withDefaults()
	return &Services{
		Auth:          NewAuthService(deps, tokens, hasher),
		AdminRequests: NewAdminRequestService(deps),
		Users:         NewUserService(deps),
		Clubs:         NewClubService(deps),
		Events:        NewEventService(deps),
	}
}

// revoke invalidates the user's existing tokens. Callers run it as the last step of
// their transaction so that a revocation failure rolls the role change back.
func (d Dependencies) revoke(ctx context.Context, userID models.UserID) error {
	if err := d.Revoker.RevokeUser(ctx, userID); err != nil {
		d.Logger.Error().Err(err).Str("userID", string(userID)).Msg("Failed to revoke sessions")
		return apperrors.NewInternalError("failed to revoke sessions", err)
	}
	return nil
}

// revokeAfterCommit writes the marker again once the new role is visible. A login that
// read the old role while the transaction was open gets a token older than this marker.
// The change is already committed, so a failure here is only logged.
func (d Dependencies) revokeAfterCommit(ctx context.Context, userID models.UserID) {
	if err := d.Revoker.RevokeUser(ctx, userID); err != nil {
		d.Logger.Error().Err(err).Str("userID", string(userID)).Msg("Failed to refresh session revocation after commit")
	}
}
