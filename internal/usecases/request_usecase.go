package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/domain/repositories"
	"snapaml.backend/pkg/utils"
)

// RequestUsecase manages the verification request / approval workflow.
type RequestUsecase struct {
	requestRepo      repositories.VerificationRequestRepository
	relationshipRepo repositories.ApprovedRelationshipRepository
	companyRepo      repositories.CompanySubmissionRepository
	riskRepo         repositories.RiskProfileRepository
}

// NewRequestUsecase creates a new request usecase
func NewRequestUsecase(
	requestRepo repositories.VerificationRequestRepository,
	relationshipRepo repositories.ApprovedRelationshipRepository,
	companyRepo repositories.CompanySubmissionRepository,
	riskRepo repositories.RiskProfileRepository,
) *RequestUsecase {
	return &RequestUsecase{
		requestRepo:      requestRepo,
		relationshipRepo: relationshipRepo,
		companyRepo:      companyRepo,
		riskRepo:         riskRepo,
	}
}

// CreateRequest files a pending verification request against a registration
// number. One pending request per (requester, target) pair.
func (u *RequestUsecase) CreateRequest(ctx context.Context, requesterID uuid.UUID, requesterEmail, registrationNumber string) (*entities.VerificationRequest, error) {
	if requesterID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in to create a request")
	}

	requesterEmail = strings.TrimSpace(requesterEmail)
	registrationNumber = strings.TrimSpace(registrationNumber)
	if requesterEmail == "" {
		return nil, domainerrors.Validation("requester email is required")
	}
	if registrationNumber == "" {
		return nil, domainerrors.Validation("registration number is required")
	}

	pending, err := u.requestRepo.HasPending(ctx, requesterID, registrationNumber)
	if err != nil {
		return nil, domainerrors.Persistence(err)
	}
	if pending {
		return nil, domainerrors.Conflict("a pending request for this company already exists")
	}

	req := &entities.VerificationRequest{
		ID:                        utils.GenerateUUIDv7(),
		RequesterUserID:           requesterID,
		RequesterEmail:            requesterEmail,
		CompanyRegistrationNumber: registrationNumber,
		Status:                    entities.RequestStatusPending,
	}
	if err := u.requestRepo.Create(ctx, req); err != nil {
		return nil, domainerrors.Persistence(err)
	}
	return req, nil
}

// ListIncomingRequests returns pending requests addressed to the caller's
// own registration number, newest first. A caller without a submission has
// no incoming requests.
func (u *RequestUsecase) ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]entities.VerificationRequest, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in required")
	}

	own, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return []entities.VerificationRequest{}, nil
		}
		return nil, domainerrors.Persistence(err)
	}
	if own.CompanyRegistrationNumber == "" {
		return []entities.VerificationRequest{}, nil
	}

	list, err := u.requestRepo.ListPendingByRegistrationNumber(ctx, own.CompanyRegistrationNumber)
	if err != nil {
		return nil, domainerrors.Persistence(err)
	}
	return list, nil
}

// ListOutgoingRequests returns the caller's own still-pending requests.
func (u *RequestUsecase) ListOutgoingRequests(ctx context.Context, requesterID uuid.UUID) ([]entities.VerificationRequest, error) {
	if requesterID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in required")
	}

	all, err := u.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, domainerrors.Persistence(err)
	}

	pending := make([]entities.VerificationRequest, 0, len(all))
	for _, req := range all {
		if req.Status == entities.RequestStatusPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

// ApproveRequest grants a pending request. The approver must hold a
// completed submission whose registration number matches the request's
// target. The operation is idempotent: the status flip is skipped when
// already approved and the relationship insert is preceded by an existence
// check, so a retry after partial failure converges instead of duplicating.
func (u *RequestUsecase) ApproveRequest(ctx context.Context, approverID, requestID uuid.UUID) (*entities.VerificationRequest, error) {
	if approverID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in to approve a request")
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("request not found")
		}
		return nil, domainerrors.Persistence(err)
	}

	own, err := u.companyRepo.GetByUserID(ctx, approverID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Forbidden("no completed submission for this company")
		}
		return nil, domainerrors.Persistence(err)
	}
	if !own.IsCompleted() || !strings.EqualFold(own.CompanyRegistrationNumber, req.CompanyRegistrationNumber) {
		return nil, domainerrors.Forbidden("no completed submission for this company")
	}

	if req.Status != entities.RequestStatusApproved {
		if err := u.requestRepo.Approve(ctx, req.ID, approverID); err != nil {
			return nil, domainerrors.Persistence(err)
		}
		req.Status = entities.RequestStatusApproved
	}
	req.RequestedUserID = null.StringFrom(approverID.String())

	exists, err := u.relationshipRepo.Exists(ctx, req.RequesterUserID, approverID, req.CompanyRegistrationNumber)
	if err != nil {
		return nil, domainerrors.Persistence(err)
	}
	if !exists {
		rel := &entities.ApprovedRelationship{
			RequesterUserID:           req.RequesterUserID,
			ApproverUserID:            approverID,
			CompanyRegistrationNumber: null.StringFrom(req.CompanyRegistrationNumber),
		}
		if err := u.relationshipRepo.Create(ctx, rel); err != nil {
			return nil, domainerrors.Persistence(err)
		}
	}

	return req, nil
}

// Counterparty is an approved counterpart submission, optionally enriched
// with its externally produced risk profile.
type Counterparty struct {
	Submission  *entities.CompanySubmission  `json:"submission"`
	RiskProfile *entities.CompanyRiskProfile `json:"riskProfile,omitempty"`
}

// ListApprovedCounterparties returns the submissions the caller was granted
// access to. A missing risk profile is an empty enrichment, not an error.
func (u *RequestUsecase) ListApprovedCounterparties(ctx context.Context, requesterID uuid.UUID) ([]Counterparty, error) {
	if requesterID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in required")
	}

	rels, err := u.relationshipRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, domainerrors.Persistence(err)
	}

	counterparties := make([]Counterparty, 0, len(rels))
	for _, rel := range rels {
		sub, err := u.companyRepo.GetByUserID(ctx, rel.ApproverUserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			return nil, domainerrors.Persistence(err)
		}

		cp := Counterparty{Submission: sub}
		risk, err := u.riskRepo.GetBySubmissionID(ctx, sub.ID)
		if err == nil {
			cp.RiskProfile = risk
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Persistence(err)
		}
		counterparties = append(counterparties, cp)
	}
	return counterparties, nil
}
