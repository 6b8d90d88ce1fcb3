package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/interfaces/http/middleware"
	"snapaml.backend/internal/interfaces/http/response"
	"snapaml.backend/internal/usecases"
)

// DocumentHandler handles identification document uploads
type DocumentHandler struct {
	documentUsecase *usecases.DocumentUsecase
	maxBytes        int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentUsecase *usecases.DocumentUsecase, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
		maxBytes:        maxBytes,
	}
}

// Upload stores an identification document and records it on the submission
// POST /api/v1/kyc/documents
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		response.Error(c, domainerrors.Validation("document file is required"))
		return
	}
	if fileHeader.Size > h.maxBytes {
		response.Error(c, domainerrors.Validation("document exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.Validation("could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	ref, err := h.documentUsecase.Upload(c.Request.Context(), userID, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"documentRef": ref,
	})
}
