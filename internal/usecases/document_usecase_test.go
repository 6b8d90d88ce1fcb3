package usecases_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainerrors "snapaml.backend/internal/domain/errors"
	"snapaml.backend/internal/usecases"
)

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
}

func TestDocumentUpload_Validation(t *testing.T) {
	store := new(MockDocumentStore)
	individualRepo := new(MockIndividualSubmissionRepository)
	uc := usecases.NewDocumentUsecase(store, individualRepo, 1024)
	ctx := context.Background()

	_, err := uc.Upload(ctx, uuid.Nil, pngBytes())
	require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	_, err = uc.Upload(ctx, uuid.New(), nil)
	require.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = uc.Upload(ctx, uuid.New(), make([]byte, 2048))
	require.ErrorIs(t, err, domainerrors.ErrValidation)

	// Plain text sniffs to text/plain and is rejected.
	_, err = uc.Upload(ctx, uuid.New(), []byte("hello, this is not a document"))
	require.ErrorIs(t, err, domainerrors.ErrValidation)

	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentUpload_StoresAndRecordsReference(t *testing.T) {
	store := new(MockDocumentStore)
	individualRepo := new(MockIndividualSubmissionRepository)
	uc := usecases.NewDocumentUsecase(store, individualRepo, 10*1024*1024)
	userID := uuid.New()

	var objectName string
	store.On("Put", mock.Anything, mock.Anything, "image/png", mock.Anything).
		Run(func(args mock.Arguments) {
			objectName = args.String(1)
		}).
		Return("https://storage.test/docs/obj.png", nil)
	individualRepo.On("Upsert", mock.Anything, userID, map[string]interface{}{
		"document_ref": "https://storage.test/docs/obj.png",
	}).Return(nil)

	ref, err := uc.Upload(context.Background(), userID, pngBytes())
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/docs/obj.png", ref)
	assert.True(t, strings.HasPrefix(objectName, "identification/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(objectName, ".png"))

	store.AssertExpectations(t)
	individualRepo.AssertExpectations(t)
}

func TestDocumentUpload_PDFAccepted(t *testing.T) {
	store := new(MockDocumentStore)
	individualRepo := new(MockIndividualSubmissionRepository)
	uc := usecases.NewDocumentUsecase(store, individualRepo, 10*1024*1024)
	userID := uuid.New()

	pdf := append([]byte("%PDF-1.7\n"), make([]byte, 32)...)
	store.On("Put", mock.Anything, mock.Anything, "application/pdf", mock.Anything).
		Return("https://storage.test/docs/obj.pdf", nil)
	individualRepo.On("Upsert", mock.Anything, userID, mock.Anything).Return(nil)

	_, err := uc.Upload(context.Background(), userID, pdf)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestDocumentUpload_StoreFailure(t *testing.T) {
	store := new(MockDocumentStore)
	individualRepo := new(MockIndividualSubmissionRepository)
	uc := usecases.NewDocumentUsecase(store, individualRepo, 10*1024*1024)

	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	_, err := uc.Upload(context.Background(), uuid.New(), pngBytes())
	require.ErrorIs(t, err, domainerrors.ErrPersistence)
	individualRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}
