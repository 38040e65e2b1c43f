package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

func TestAdminRequestService(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*env, *models.User, *models.User, models.AdminRequestID) {
		e := newEnv()
		ada := register(t, e, "Ada", "a@x.io", models.RoleAdmin)
		bob := register(t, e, "Bob", "b@x.io", models.RoleAdmin)
		require.Len(t, e.store.requests, 1)
		return e, ada, bob, e.store.requests[0].ID
	}

	t.Run("Should approve a pending request and promote the requester", func(t *testing.T) {
		e, ada, bob, reqID := setup(t)

		req, err := e.services.AdminRequests.Approve(ctx, actorOf(ada), reqID)
		require.NoError(t, err)
		assert.Equal(t, models.AdminRequestApproved, req.Status)
		require.NotNil(t, req.ResolvedBy)
		assert.Equal(t, ada.ID, *req.ResolvedBy)
		assert.Equal(t, testNow, *req.ResolvedAt)

		updated, err := e.services.Auth.Me(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, updated.Role)
		assert.Equal(t, 2, e.revoker.revoked[bob.ID])
		assert.Equal(t, 1, e.revoker.afterCommit[bob.ID], "marker is written again after commit")
	})

	t.Run("Should refuse to resolve a request twice", func(t *testing.T) {
		e, ada, _, reqID := setup(t)

		_, err := e.services.AdminRequests.Approve(ctx, actorOf(ada), reqID)
		require.NoError(t, err)

		_, err = e.services.AdminRequests.Approve(ctx, actorOf(ada), reqID)
		assert.ErrorIs(t, err, apperrors.ErrAdminRequestNotPending)
		_, err = e.services.AdminRequests.Reject(ctx, actorOf(ada), reqID)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("Should reject without changing the requester role", func(t *testing.T) {
		e, ada, bob, reqID := setup(t)

		req, err := e.services.AdminRequests.Reject(ctx, actorOf(ada), reqID)
		require.NoError(t, err)
		assert.Equal(t, models.AdminRequestRejected, req.Status)

		updated, err := e.services.Auth.Me(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, models.RolePendingAdmin, updated.Role)
		assert.Zero(t, e.revoker.revoked[bob.ID])
	})

	t.Run("Should forbid non-admins", func(t *testing.T) {
		e, _, bob, reqID := setup(t)

		_, err := e.services.AdminRequests.Approve(ctx, actorOf(bob), reqID)
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
		_, err = e.services.AdminRequests.ListPending(ctx, actorOf(bob))
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
		assert.True(t, e.store.requests[0].IsPending())
	})

	t.Run("Should return NotFound for an unknown request", func(t *testing.T) {
		e, ada, _, _ := setup(t)

		_, err := e.services.AdminRequests.Approve(ctx, actorOf(ada), models.NewAdminRequestID())
		assert.ErrorIs(t, err, apperrors.ErrAdminRequestNotFound)
	})

	t.Run("Should list pending and full history newest first", func(t *testing.T) {
		e, ada, _, reqID := setup(t)
		register(t, e, "Cy", "c@x.io", models.RoleAdmin)

		_, err := e.services.AdminRequests.Reject(ctx, actorOf(ada), reqID)
		require.NoError(t, err)

		pending, err := e.services.AdminRequests.ListPending(ctx, actorOf(ada))
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Cy", pending[0].Name)

		all, err := e.services.AdminRequests.ListAll(ctx, actorOf(ada))
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Cy", all[0].Name)
		assert.Equal(t, "Bob", all[1].Name)
	})
}
