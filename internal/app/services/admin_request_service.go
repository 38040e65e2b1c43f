package services

import (
	"context"

	"github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
)

// Admin request messages
const (
	MsgAdminRequestApproved = "Admin request approved"
	MsgAdminRequestRejected = "Admin request rejected"
)

// AdminRequestService drives the pending -> approved | rejected workflow
type AdminRequestService interface {
	ListPending(ctx context.Context, actor auth.Actor) ([]*models.AdminRequest, error)
	ListAll(ctx context.Context, actor auth.Actor) ([]*models.AdminRequest, error)
	Approve(ctx context.Context, actor auth.Actor, id models.AdminRequestID) (*models.AdminRequest, error)
	Reject(ctx context.Context, actor auth.Actor, id models.AdminRequestID) (*models.AdminRequest, error)
}

type adminRequestServiceImpl struct {
	deps Dependencies
}

// NewAdminRequestService creates a new AdminRequestService
func NewAdminRequestService(deps Dependencies) AdminRequestService {
	return &adminRequestServiceImpl{deps: deps.withDefaults()}
}

// ListPending returns the requests still awaiting a decision, newest first
func (s *adminRequestServiceImpl) ListPending(ctx context.Context, actor auth.Actor) ([]*models.AdminRequest, error) {
	if err := auth.Authorize(actor, auth.ActionViewAdminRequests, nil); err != nil {
		return nil, err
	}
	return s.deps.AdminRequests.ListPending(ctx)
}

// ListAll returns the full history, newest first
func (s *adminRequestServiceImpl) ListAll(ctx context.Context, actor auth.Actor) ([]*models.AdminRequest, error) {
	if err := auth.Authorize(actor, auth.ActionViewAdminRequests, nil); err != nil {
		return nil, err
	}
	return s.deps.AdminRequests.ListAll(ctx)
}

// Approve resolves the request and makes the requester an admin in one transaction
func (s *adminRequestServiceImpl) Approve(ctx context.Context, actor auth.Actor, id models.AdminRequestID) (*models.AdminRequest, error) {
	return s.resolve(ctx, actor, id, models.AdminRequestApproved)
}

// Reject resolves the request; the requester keeps the pending_admin role
func (s *adminRequestServiceImpl) Reject(ctx context.Context, actor auth.Actor, id models.AdminRequestID) (*models.AdminRequest, error) {
	return s.resolve(ctx, actor, id, models.AdminRequestRejected)
}

func (s *adminRequestServiceImpl) resolve(ctx context.Context, actor auth.Actor, id models.AdminRequestID, status models.AdminRequestStatus) (*models.AdminRequest, error) {
	if err := auth.Authorize(actor, auth.ActionResolveAdminRequest, nil); err != nil {
		return nil, err
	}

	var req *models.AdminRequest
	err := s.deps.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if req, err = s.deps.AdminRequests.GetByID(ctx, id); err != nil {
			return err
		}

		// Conditional on status = pending; a concurrent resolution makes this fail
		at := s.deps.Now()
		if err := s.deps.AdminRequests.Resolve(ctx, id, status, actor.ID, at); err != nil {
			return err
		}
		req.Status = status
		req.ResolvedAt = &at
		req.ResolvedBy = &actor.ID

		if status != models.AdminRequestApproved {
			return nil
		}
		if err := s.deps.Users.UpdateRole(ctx, req.UserID, models.RoleAdmin); err != nil {
			return err
		}
		return s.deps.revoke(ctx, req.UserID)
	})
	if err != nil {
		return nil, err
	}
	if status == models.AdminRequestApproved {
		s.deps.revokeAfterCommit(ctx, req.UserID)
	}

	s.deps.Logger.Info().
		Str("actorID", string(actor.ID)).
		Str("requestID", string(id)).
		Str("status", string(status)).
		Msg("Admin request resolved")
	return req, nil
}
