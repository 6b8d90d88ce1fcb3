package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"snapaml.backend/internal/interfaces/http/response"
	"snapaml.backend/internal/usecases"
)

// VerificationHandler serves the public registration-number badge lookup
type VerificationHandler struct {
	verificationUsecase *usecases.VerificationUsecase
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase *usecases.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// Verify reports whether a registration number belongs to a completed submission
// GET /api/v1/verify/:registrationNumber
func (h *VerificationHandler) Verify(c *gin.Context) {
	registrationNumber := c.Param("registrationNumber")

	status := h.verificationUsecase.Verify(c.Request.Context(), registrationNumber)

	response.Success(c, http.StatusOK, gin.H{
		"registrationNumber": registrationNumber,
		"status":             status,
	})
}
