package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"snapaml.backend/internal/domain/entities"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/interfaces/http/middleware"
	"snapaml.backend/internal/interfaces/http/response"
	"snapaml.backend/internal/usecases"
)

// WizardHandler drives the four-step onboarding wizards. Drafts live in an
// in-memory store until a step is submitted; submitted steps are persisted
// and survive logout.
type WizardHandler struct {
	submissionUsecase *usecases.SubmissionUsecase
	companyDrafts     *usecases.WizardStore
	individualDrafts  *usecases.WizardStore
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(submissionUsecase *usecases.SubmissionUsecase) *WizardHandler {
	return &WizardHandler{
		submissionUsecase: submissionUsecase,
		companyDrafts:     usecases.NewWizardStore(),
		individualDrafts:  usecases.NewWizardStore(),
	}
}

// GetCompanyWizard returns the resume point and any unsubmitted draft
// GET /api/v1/kyb/wizard
func (h *WizardHandler) GetCompanyWizard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	state, err := h.submissionUsecase.HydrateCompanyWizard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	session := h.companyDrafts.Session(userID)
	if session.CurrentStep() < state.ResumeStep {
		session.SetCurrentStep(state.ResumeStep)
	}

	response.Success(c, http.StatusOK, gin.H{
		"resumeStep":  state.ResumeStep,
		"currentStep": session.CurrentStep(),
		"finished":    state.Finished,
		"draft":       session.Sections(),
		"submission":  state.Submission,
	})
}

// SubmitCompanyStep validates and persists one wizard step
// POST /api/v1/kyb/wizard/steps/:step
func (h *WizardHandler) SubmitCompanyStep(c *gin.Context) {
	h.submitStep(c, h.companyDrafts, h.submissionUsecase.SubmitCompanyStep)
}

// CompanyWizardBack stashes the in-progress form and moves one step back
// POST /api/v1/kyb/wizard/back
func (h *WizardHandler) CompanyWizardBack(c *gin.Context) {
	h.back(c, h.companyDrafts)
}

// GetIndividualWizard returns the resume point and draft for the KYC flow
// GET /api/v1/kyc/wizard
func (h *WizardHandler) GetIndividualWizard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	state, err := h.submissionUsecase.HydrateIndividualWizard(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	session := h.individualDrafts.Session(userID)
	if session.CurrentStep() < state.ResumeStep {
		session.SetCurrentStep(state.ResumeStep)
	}

	response.Success(c, http.StatusOK, gin.H{
		"resumeStep":  state.ResumeStep,
		"currentStep": session.CurrentStep(),
		"finished":    state.Finished,
		"draft":       session.Sections(),
		"submission":  state.Submission,
	})
}

// SubmitIndividualStep validates and persists one KYC wizard step
// POST /api/v1/kyc/wizard/steps/:step
func (h *WizardHandler) SubmitIndividualStep(c *gin.Context) {
	h.submitStep(c, h.individualDrafts, h.submissionUsecase.SubmitIndividualStep)
}

// IndividualWizardBack stashes the in-progress form and moves one step back
// POST /api/v1/kyc/wizard/back
func (h *WizardHandler) IndividualWizardBack(c *gin.Context) {
	h.back(c, h.individualDrafts)
}

// stepSubmitFunc binds a submission usecase method to one wizard flow.
type stepSubmitFunc func(ctx context.Context, userID uuid.UUID, step int, data map[string]interface{}) error

func (h *WizardHandler) submitStep(c *gin.Context, drafts *usecases.WizardStore, submit stepSubmitFunc) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < 1 || step > entities.WizardStepCount {
		response.Error(c, domainerrors.Validation("invalid wizard step"))
		return
	}

	var data map[string]interface{}
	if err := c.ShouldBindJSON(&data); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	session := drafts.Session(userID)
	submitErr := session.SubmitStep(c.Request.Context(), func(ctx context.Context, s int, d map[string]interface{}) error {
		return submit(ctx, userID, s, d)
	}, step, data)
	if submitErr != nil {
		// The draft stays in the session so the form is not lost.
		session.UpdateSection(sectionName(step), data)
		response.Error(c, submitErr)
		return
	}

	session.UpdateSection(sectionName(step), data)
	if step == entities.WizardStepCount {
		drafts.Drop(userID)
		response.Success(c, http.StatusOK, gin.H{
			"finished": true,
		})
		return
	}

	session.SetCurrentStep(step + 1)
	response.Success(c, http.StatusOK, gin.H{
		"finished": false,
		"nextStep": step + 1,
	})
}

func (h *WizardHandler) back(c *gin.Context, drafts *usecases.WizardStore) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Data map[string]interface{} `json:"data"`
	}
	_ = c.ShouldBindJSON(&input)

	session := drafts.Session(userID)
	current := session.CurrentStep()
	if input.Data != nil {
		session.UpdateSection(sectionName(current), input.Data)
	}
	if current > 1 {
		session.SetCurrentStep(current - 1)
	}

	response.Success(c, http.StatusOK, gin.H{
		"currentStep": session.CurrentStep(),
		"draft":       session.Sections(),
	})
}

func sectionName(step int) string {
	return fmt.Sprintf("step%d", step)
}
