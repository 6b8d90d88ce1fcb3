package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RequestStatus represents the status of a verification request.
// Transitions are one-directional: pending -> approved. There is no
// rejection or cancellation state.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
)

// VerificationRequest is a directed ask from one user to view another
// company's verification status, addressed by registration number.
type VerificationRequest struct {
	ID                        uuid.UUID     `json:"id"`
	RequesterUserID           uuid.UUID     `json:"requesterUserId"`
	RequesterEmail            string        `json:"requesterEmail"`
	RequestedUserID           null.String   `json:"requestedUserId,omitempty"` // set when approved
	CompanyRegistrationNumber string        `json:"companyRegistrationNumber"`
	Status                    RequestStatus `json:"status"`
	CreatedAt                 time.Time     `json:"createdAt"`
	UpdatedAt                 time.Time     `json:"updatedAt"`
}

// ApprovedRelationship is the derived grant created when a request is
// approved. It links requester to approver and is additive: once created
// it is never mutated.
type ApprovedRelationship struct {
	ID                        int64       `json:"id"`
	RequesterUserID           uuid.UUID   `json:"requesterUserId"`
	ApproverUserID            uuid.UUID   `json:"approverUserId"`
	CompanyRegistrationNumber null.String `json:"companyRegistrationNumber,omitempty"`
	CreatedAt                 time.Time   `json:"createdAt"`
	UpdatedAt                 *time.Time  `json:"updatedAt,omitempty"`
}
