package usecases_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"snapaml.backend/internal/usecases"
	redispkg "snapaml.backend/pkg/redis"
)

func TestVerify_TriState(t *testing.T) {
	companyRepo := new(MockCompanySubmissionRepository)
	uc := usecases.NewVerificationUsecase(companyRepo)
	ctx := context.Background()

	companyRepo.On("ExistsCompleted", mock.Anything, "HRB-OK").Return(true, nil)
	companyRepo.On("ExistsCompleted", mock.Anything, "HRB-DRAFT").Return(false, nil)
	companyRepo.On("ExistsCompleted", mock.Anything, "HRB-DOWN").Return(false, assert.AnError)

	assert.Equal(t, usecases.StatusVerified, uc.Verify(ctx, "HRB-OK"))
	assert.Equal(t, usecases.StatusNotVerified, uc.Verify(ctx, "HRB-DRAFT"))
	assert.Equal(t, usecases.StatusLookupFailed, uc.Verify(ctx, "HRB-DOWN"))
	assert.Equal(t, usecases.StatusNotVerified, uc.Verify(ctx, "   "))
}

func TestVerify_CachesPositiveResults(t *testing.T) {
	mr := miniredis.RunT(t)
	redispkg.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redispkg.SetClient(nil)

	companyRepo := new(MockCompanySubmissionRepository)
	uc := usecases.NewVerificationUsecase(companyRepo)
	ctx := context.Background()

	companyRepo.On("ExistsCompleted", mock.Anything, "HRB-CACHED").Return(true, nil).Once()

	require.Equal(t, usecases.StatusVerified, uc.Verify(ctx, "HRB-CACHED"))
	// Second lookup is served from the cache; the repo is not asked again.
	require.Equal(t, usecases.StatusVerified, uc.Verify(ctx, "HRB-CACHED"))
	companyRepo.AssertNumberOfCalls(t, "ExistsCompleted", 1)

	// Case variants share the cache entry.
	require.Equal(t, usecases.StatusVerified, uc.Verify(ctx, "hrb-cached"))
}

func TestVerify_NegativeResultsNotCached(t *testing.T) {
	mr := miniredis.RunT(t)
	redispkg.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	defer redispkg.SetClient(nil)

	companyRepo := new(MockCompanySubmissionRepository)
	uc := usecases.NewVerificationUsecase(companyRepo)
	ctx := context.Background()

	companyRepo.On("ExistsCompleted", mock.Anything, "HRB-NO").Return(false, nil).Twice()

	require.Equal(t, usecases.StatusNotVerified, uc.Verify(ctx, "HRB-NO"))
	require.Equal(t, usecases.StatusNotVerified, uc.Verify(ctx, "HRB-NO"))
	companyRepo.AssertExpectations(t)
}
