package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestClubService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*env, *models.User, *models.User) {
		e := newEnv()
		ada := register(t, e, "Ada", "a@x.io", models.RoleAdmin)
		cy := register(t, e, "Cy", "c@x.io", models.RoleMember)
		return e, ada, cy
	}

	t.Run("Should create a club with the owner as first member", func(t *testing.T) {
		e, ada, _ := setup(t)

		club, err := e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: " Chess ", Description: "Games"})
		require.NoError(t, err)
		assert.Equal(t, "Chess", club.Name)
		assert.Equal(t, ada.ID, club.OwnerID)
		require.Len(t, club.Members, 1)
		assert.Equal(t, ada.ID, club.Members[0].ID)
		assert.Empty(t, club.Photos)

		mine, err := e.services.Clubs.GetMine(ctx, actorOf(ada))
		require.NoError(t, err)
		assert.Equal(t, club.ID, mine.ID)
	})

	t.Run("Should allow one club per admin", func(t *testing.T) {
		e, ada, _ := setup(t)

		_, err := e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "Chess", Description: "Games"})
		require.NoError(t, err)
		_, err = e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "Go", Description: "More games"})
		assert.ErrorIs(t, err, apperrors.ErrClubAlreadyOwned)
		assert.Len(t, e.store.clubs, 1)
	})

	t.Run("Should reject club creation by members and with blank fields", func(t *testing.T) {
		e, ada, cy := setup(t)

		_, err := e.services.Clubs.Create(ctx, actorOf(cy), &dto.CreateClubRequest{Name: "Chess", Description: "Games"})
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

		_, err = e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "  ", Description: "Games"})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("Should report NotFound when the admin has no club", func(t *testing.T) {
		e, ada, _ := setup(t)

		_, err := e.services.Clubs.GetMine(ctx, actorOf(ada))
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})

	t.Run("Should reject a duplicate join", func(t *testing.T) {
		e, ada, cy := setup(t)
		club, err := e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "Chess", Description: "Games"})
		require.NoError(t, err)

		joined, err := e.services.Clubs.Join(ctx, actorOf(cy), club.ID)
		require.NoError(t, err)
		assert.Len(t, joined.Members, 2)

		_, err = e.services.Clubs.Join(ctx, actorOf(cy), club.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyClubMember)

		_, err = e.services.Clubs.Join(ctx, actorOf(ada), club.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyClubMember)

		me, err := e.services.Auth.Me(ctx, cy.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.ClubID{club.ID}, me.ClubsJoined)
	})

	t.Run("Should return NotFound when joining an unknown club", func(t *testing.T) {
		e, _, cy := setup(t)

		_, err := e.services.Clubs.Join(ctx, actorOf(cy), models.NewClubID())
		assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
	})

	t.Run("Should manage photos for the exact owner only", func(t *testing.T) {
		e, ada, _ := setup(t)
		bob := register(t, e, "Bob", "b@x.io", models.RoleMember)
		_, err := e.services.Users.Promote(ctx, actorOf(ada), bob.ID)
		require.NoError(t, err)
		bob.Role = models.RoleAdmin

		club, err := e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "Chess", Description: "Games"})
		require.NoError(t, err)

		club, err = e.services.Clubs.AddPhoto(ctx, actorOf(ada), club.ID, "u1")
		require.NoError(t, err)
		club, err = e.services.Clubs.AddPhoto(ctx, actorOf(ada), club.ID, "u2")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, club.Photos)

		_, err = e.services.Clubs.AddPhoto(ctx, actorOf(bob), club.ID, "u3")
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

		_, err = e.services.Clubs.AddPhoto(ctx, actorOf(ada), club.ID, "")
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

		club, err = e.services.Clubs.RemovePhoto(ctx, actorOf(ada), club.ID, "u3")
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2"}, club.Photos)

		club, err = e.services.Clubs.RemovePhoto(ctx, actorOf(ada), club.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{"u2"}, club.Photos)
	})

	t.Run("Should let another admin update and delete the club", func(t *testing.T) {
		e, ada, cy := setup(t)
		bob := register(t, e, "Bob", "b@x.io", models.RoleMember)
		_, err := e.services.Users.Promote(ctx, actorOf(ada), bob.ID)
		require.NoError(t, err)
		bob.Role = models.RoleAdmin

		club, err := e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "Chess", Description: "Games"})
		require.NoError(t, err)

		_, err = e.services.Clubs.Update(ctx, actorOf(cy), club.ID, &dto.UpdateClubRequest{Name: strPtr("Mine")})
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

		updated, err := e.services.Clubs.Update(ctx, actorOf(bob), club.ID, &dto.UpdateClubRequest{Name: strPtr("Chess & Go")})
		require.NoError(t, err)
		assert.Equal(t, "Chess & Go", updated.Name)
		assert.Equal(t, "Games", updated.Description)

		require.NoError(t, e.services.Clubs.Delete(ctx, actorOf(bob), club.ID))
		_, err = e.services.Clubs.Get(ctx, club.ID)
		assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
	})

	t.Run("Should log each club lifecycle event once", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEnvWithLogger(zerolog.New(&buf))
		ada := register(t, e, "Ada", "a@x.io", models.RoleAdmin)

		club, err := e.services.Clubs.Create(ctx, actorOf(ada), &dto.CreateClubRequest{Name: "Chess", Description: "Games"})
		require.NoError(t, err)
		require.NoError(t, e.services.Clubs.Delete(ctx, actorOf(ada), club.ID))

		assert.Equal(t, 1, strings.Count(buf.String(), `"message":"Club created"`))
		assert.Equal(t, 1, strings.Count(buf.String(), `"message":"Club deleted"`))
		assert.Contains(t, buf.String(), `"clubID":"`+string(club.ID)+`"`)
	})
}
