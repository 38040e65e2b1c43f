package models

import "time"

// AdminRequestStatus is the state of an admin request
type AdminRequestStatus string

const (
	AdminRequestPending  AdminRequestStatus = "pending"
	AdminRequestApproved AdminRequestStatus = "approved"
	AdminRequestRejected AdminRequestStatus = "rejected"
)

// DefaultAdminRequestReason is stored when the registrant gives no reason
const DefaultAdminRequestReason = "No reason provided"

// AdminRequest is a request by a registered user to be granted the admin role.
// It leaves the pending state exactly once.
type AdminRequest struct {
	ID          AdminRequestID     `json:"id" db:"id"`
	UserID      UserID             `json:"userId" db:"user_id"`
	Name        string             `json:"name" db:"name"`
	Email       string             `json:"email" db:"email"`
	Reason      string             `json:"reason" db:"reason"`
	Status      AdminRequestStatus `json:"status" db:"status"`
	RequestedAt time.Time          `json:"requestedAt" db:"requested_at"`
	ResolvedAt  *time.Time         `json:"resolvedAt,omitempty" db:"resolved_at"`
	ResolvedBy  *UserID            `json:"resolvedBy,omitempty" db:"resolved_by"`
}

// IsPending reports whether the request can still be resolved
func (r *AdminRequest) IsPending() bool {
	return r.Status == AdminRequestPending
}
