package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/domain/repositories"
)

// SubmissionUsecase is the persistence gateway for wizard steps. Each submit
// maps the step's draft data onto flat submission columns and upserts them
// keyed on the user, so resubmitting a step is always safe.
type SubmissionUsecase struct {
	companyRepo    repositories.CompanySubmissionRepository
	individualRepo repositories.IndividualSubmissionRepository
	userRepo       repositories.UserRepository
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(
	companyRepo repositories.CompanySubmissionRepository,
	individualRepo repositories.IndividualSubmissionRepository,
	userRepo repositories.UserRepository,
) *SubmissionUsecase {
	return &SubmissionUsecase{
		companyRepo:    companyRepo,
		individualRepo: individualRepo,
		userRepo:       userRepo,
	}
}

// SubmitCompanyStep validates and persists one company wizard step. The
// final step additionally stamps completed_at and flips the user's KYC
// status.
func (u *SubmissionUsecase) SubmitCompanyStep(ctx context.Context, userID uuid.UUID, step int, data map[string]interface{}) error {
	if userID == uuid.Nil {
		return domainerrors.Unauthorized("sign in to continue onboarding")
	}

	specs, ok := companyStepFields[step]
	if !ok {
		return domainerrors.Validation("unknown wizard step")
	}

	payload, err := buildStepPayload(specs, step, data)
	if err != nil {
		return err
	}

	if step == 2 {
		if industry, ok := payload["industry"].(string); ok && !IsValidIndustry(industry) {
			return domainerrors.Validation("unknown industry")
		}
		if sub, ok := payload["sub_industry"].(string); ok {
			industry, _ := payload["industry"].(string)
			if !IsValidSubIndustry(industry, sub) {
				return domainerrors.Validation("sub-industry does not belong to industry")
			}
		}
	}

	final := step == entities.WizardStepCount
	if final {
		payload["completed_at"] = time.Now()
		payload["status"] = string(entities.SubmissionStatusCompleted)
	}

	if err := u.companyRepo.Upsert(ctx, userID, payload); err != nil {
		return domainerrors.Persistence(err)
	}

	status := entities.KYCStatusInProgress
	if final {
		status = entities.KYCStatusCompleted
	}
	if err := u.userRepo.UpdateKYCStatus(ctx, userID, status); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.Persistence(err)
	}
	return nil
}

// SubmitIndividualStep validates and persists one individual wizard step.
// Individuals carry no completion timestamp; finishing step 4 still flips
// the user's KYC status.
func (u *SubmissionUsecase) SubmitIndividualStep(ctx context.Context, userID uuid.UUID, step int, data map[string]interface{}) error {
	if userID == uuid.Nil {
		return domainerrors.Unauthorized("sign in to continue onboarding")
	}

	specs, ok := individualStepFields[step]
	if !ok {
		return domainerrors.Validation("unknown wizard step")
	}

	payload, err := buildStepPayload(specs, step, data)
	if err != nil {
		return err
	}

	if err := u.individualRepo.Upsert(ctx, userID, payload); err != nil {
		return domainerrors.Persistence(err)
	}

	status := entities.KYCStatusInProgress
	if step == entities.WizardStepCount {
		status = entities.KYCStatusCompleted
	}
	if err := u.userRepo.UpdateKYCStatus(ctx, userID, status); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.Persistence(err)
	}
	return nil
}

// CompanyWizardState is the hydration result for the company wizard.
type CompanyWizardState struct {
	ResumeStep int                          `json:"resumeStep"`
	Finished   bool                         `json:"finished"`
	Submission *entities.CompanySubmission `json:"submission,omitempty"`
}

// HydrateCompanyWizard loads the persisted submission (if any) and computes
// the resume step. All four steps complete means the wizard is bypassed
// entirely; the caller redirects instead of rendering a step.
func (u *SubmissionUsecase) HydrateCompanyWizard(ctx context.Context, userID uuid.UUID) (*CompanyWizardState, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in to continue onboarding")
	}

	sub, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &CompanyWizardState{ResumeStep: 1}, nil
		}
		return nil, domainerrors.Persistence(err)
	}

	next := NextIncompleteStep(sub.StepFlags())
	if next > entities.WizardStepCount {
		return &CompanyWizardState{Finished: true, Submission: sub}, nil
	}
	return &CompanyWizardState{ResumeStep: next, Submission: sub}, nil
}

// IndividualWizardState is the hydration result for the individual wizard.
type IndividualWizardState struct {
	ResumeStep int                              `json:"resumeStep"`
	Finished   bool                             `json:"finished"`
	Submission *entities.IndividualSubmission `json:"submission,omitempty"`
}

// HydrateIndividualWizard mirrors HydrateCompanyWizard for the KYC variant.
func (u *SubmissionUsecase) HydrateIndividualWizard(ctx context.Context, userID uuid.UUID) (*IndividualWizardState, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in to continue onboarding")
	}

	sub, err := u.individualRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &IndividualWizardState{ResumeStep: 1}, nil
		}
		return nil, domainerrors.Persistence(err)
	}

	next := NextIncompleteStep(sub.StepFlags())
	if next > entities.WizardStepCount {
		return &IndividualWizardState{Finished: true, Submission: sub}, nil
	}
	return &IndividualWizardState{ResumeStep: next, Submission: sub}, nil
}

// GetCompanySubmission returns the caller's own submission.
func (u *SubmissionUsecase) GetCompanySubmission(ctx context.Context, userID uuid.UUID) (*entities.CompanySubmission, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.Unauthorized("sign in required")
	}
	return u.companyRepo.GetByUserID(ctx, userID)
}
