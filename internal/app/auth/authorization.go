package auth

import (
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/pkg/apperrors"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	ID   models.UserID
	Role models.Role
}

// Action names an operation subject to authorization
type Action string

const (
	ActionListUsers   Action = "users:list"
	ActionPromoteUser Action = "users:promote"
	ActionDemoteUser  Action = "users:demote"
	ActionDeleteUser  Action = "users:delete"

	ActionViewAdminRequests   Action = "admin_requests:view"
	ActionResolveAdminRequest Action = "admin_requests:resolve"

	ActionCreateClub  Action = "clubs:create"
	ActionViewOwnClub Action = "clubs:view_own"
	ActionUpdateClub  Action = "clubs:update"
	ActionDeleteClub  Action = "clubs:delete"
	ActionManagePhoto Action = "clubs:photos"

	ActionCreateEvent   Action = "events:create"
	ActionViewOwnEvents Action = "events:view_own"
	ActionUpdateEvent   Action = "events:update"
	ActionDeleteEvent   Action = "events:delete"
)

// Authorize decides whether actor may perform action on a resource owned by owner.
// owner is nil for actions that do not target an owned resource.
// Every refusal is a Forbidden error.
func Authorize(actor Actor, action Action, owner *models.UserID) error {
	isOwner := owner != nil && actor.ID != "" && *owner == actor.ID

	switch actor.Role {
	case models.RoleAdmin:
		switch action {
		case ActionManagePhoto, ActionUpdateEvent, ActionDeleteEvent:
			if isOwner {
				return nil
			}
			return forbidden(action)
		case ActionUpdateClub, ActionDeleteClub:
			return nil
		case ActionListUsers, ActionPromoteUser, ActionDemoteUser, ActionDeleteUser,
			ActionViewAdminRequests, ActionResolveAdminRequest,
			ActionCreateClub, ActionViewOwnClub,
			ActionCreateEvent, ActionViewOwnEvents:
			return nil
		default:
			return forbidden(action)
		}

	case models.RoleMember, models.RolePendingAdmin:
		switch action {
		case ActionUpdateClub, ActionDeleteClub, ActionManagePhoto:
			if isOwner {
				return nil
			}
			return forbidden(action)
		default:
			return forbidden(action)
		}

	default:
		return forbidden(action)
	}
}

func forbidden(action Action) error {
	switch action {
	case ActionUpdateClub, ActionDeleteClub:
		return apperrors.NewForbiddenError("only the club owner or an admin can modify this club")
	case ActionManagePhoto:
		return apperrors.NewForbiddenError("only the club owner can manage photos")
	case ActionUpdateEvent, ActionDeleteEvent:
		return apperrors.NewForbiddenError("only the event creator can modify this event")
	default:
		return apperrors.NewForbiddenError("admin access required")
	}
}
