package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/interfaces/http/middleware"
	"snapaml.backend/internal/interfaces/http/response"
	"snapaml.backend/internal/usecases"
)

// RequestHandler handles peer verification requests between companies
type RequestHandler struct {
	requestUsecase *usecases.RequestUsecase
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestUsecase *usecases.RequestUsecase) *RequestHandler {
	return &RequestHandler{requestUsecase: requestUsecase}
}

// CreateRequest asks another company to verify the caller
// POST /api/v1/requests
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}
	email, _ := middleware.GetUserEmail(c)

	var input struct {
		RegistrationNumber string `json:"registrationNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	req, err := h.requestUsecase.CreateRequest(c.Request.Context(), userID, email, input.RegistrationNumber)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("A pending request for this company already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"request": req,
	})
}

// ListIncoming lists pending requests addressed to the caller's company
// GET /api/v1/requests/incoming
func (h *RequestHandler) ListIncoming(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	list, err := h.requestUsecase.ListIncomingRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests": list,
	})
}

// ListOutgoing lists the caller's own pending requests
// GET /api/v1/requests/outgoing
func (h *RequestHandler) ListOutgoing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	list, err := h.requestUsecase.ListOutgoingRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests": list,
	})
}

// ApproveRequest approves a pending request addressed to the caller's company
// POST /api/v1/requests/:id/approve
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.Validation("invalid request id"))
		return
	}

	req, err := h.requestUsecase.ApproveRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"request": req,
	})
}

// ListCounterparties lists companies that approved the caller, with risk data
// GET /api/v1/counterparties
func (h *RequestHandler) ListCounterparties(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	list, err := h.requestUsecase.ListApprovedCounterparties(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"counterparties": list,
	})
}
