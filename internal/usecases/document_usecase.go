package usecases

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/domain/repositories"
	"snapaml.backend/pkg/utils"
)

// allowedDocumentTypes maps accepted sniffed MIME types to the object name
// extension used in storage.
var allowedDocumentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

// DocumentUsecase handles identification document uploads. The blob is
// type-sniffed and size-checked, handed to the document store, and the
// returned reference recorded on the identification step.
type DocumentUsecase struct {
	store          repositories.DocumentStore
	individualRepo repositories.IndividualSubmissionRepository
	maxBytes       int64
}

// NewDocumentUsecase creates a new document usecase
func NewDocumentUsecase(
	store repositories.DocumentStore,
	individualRepo repositories.IndividualSubmissionRepository,
	maxBytes int64,
) *DocumentUsecase {
	return &DocumentUsecase{
		store:          store,
		individualRepo: individualRepo,
		maxBytes:       maxBytes,
	}
}

// Upload validates and stores an identification document, returning its
// storage reference. The content type is sniffed from the bytes, never
// trusted from the client.
func (u *DocumentUsecase) Upload(ctx context.Context, userID uuid.UUID, data []byte) (string, error) {
	if userID == uuid.Nil {
		return "", domainerrors.Unauthorized("sign in to upload a document")
	}
	if len(data) == 0 {
		return "", domainerrors.Validation("document is empty")
	}
	if int64(len(data)) > u.maxBytes {
		return "", domainerrors.Validation(fmt.Sprintf("document exceeds %d bytes", u.maxBytes))
	}

	mimeType := http.DetectContentType(data)
	ext, ok := allowedDocumentTypes[mimeType]
	if !ok {
		return "", domainerrors.Validation("unsupported file type: " + mimeType)
	}

	objectName := fmt.Sprintf("identification/%s/%s%s", userID, utils.GenerateUUIDv7(), ext)
	ref, err := u.store.Put(ctx, objectName, mimeType, data)
	if err != nil {
		return "", domainerrors.Persistence(err)
	}

	if err := u.individualRepo.Upsert(ctx, userID, map[string]interface{}{
		"document_ref": ref,
	}); err != nil {
		return "", domainerrors.Persistence(err)
	}
	return ref, nil
}
