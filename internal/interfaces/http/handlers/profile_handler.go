package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/interfaces/http/middleware"
	"snapaml.backend/internal/interfaces/http/response"
	"snapaml.backend/internal/usecases"
)

// ProfileHandler serves the company profile page data and field edits
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

// GetProfile returns the stored submission and its editable field descriptors
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	submission, err := h.profileUsecase.GetSubmission(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("No submission yet"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"submission": submission,
		"fields":     h.profileUsecase.EditableFields(submission),
	})
}

// UpdateProfileField edits a single field on the stored submission
// PATCH /api/v1/profile/fields/:field
func (h *ProfileHandler) UpdateProfileField(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	field := c.Param("field")
	if err := h.profileUsecase.UpdateField(c.Request.Context(), userID, field, input.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"field": field,
		"value": input.Value,
	})
}
