package usecases

import (
	"context"
	"strings"
	"time"

	"snapaml.backend/internal/domain/repositories"
	redispkg "snapaml.backend/pkg/redis"
)

// VerificationStatus is the tri-state outcome of a badge lookup. Not-found
// and lookup failure are distinct: a caller can tell "this company is not
// verified" apart from "we could not check right now".
type VerificationStatus string

const (
	StatusVerified     VerificationStatus = "verified"
	StatusNotVerified  VerificationStatus = "not_verified"
	StatusLookupFailed VerificationStatus = "lookup_failed"
)

// verifyCacheTTL bounds staleness of cached positive lookups. Completed
// submissions are never un-completed, so positives are safe to cache.
const verifyCacheTTL = 10 * time.Minute

// VerificationUsecase answers the public badge lookup.
type VerificationUsecase struct {
	companyRepo repositories.CompanySubmissionRepository
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(companyRepo repositories.CompanySubmissionRepository) *VerificationUsecase {
	return &VerificationUsecase{companyRepo: companyRepo}
}

// Verify reports whether a completed submission exists for the registration
// number. Matching is case-insensitive; partially completed submissions
// never match. Positive results are cached in Redis when a client is
// configured.
func (u *VerificationUsecase) Verify(ctx context.Context, registrationNumber string) VerificationStatus {
	reg := strings.TrimSpace(registrationNumber)
	if reg == "" {
		return StatusNotVerified
	}

	cacheKey := "verify:" + strings.ToLower(reg)
	if redispkg.GetClient() != nil {
		if v, err := redispkg.Get(ctx, cacheKey); err == nil && v == "1" {
			return StatusVerified
		}
	}

	ok, err := u.companyRepo.ExistsCompleted(ctx, reg)
	if err != nil {
		return StatusLookupFailed
	}
	if !ok {
		return StatusNotVerified
	}

	if redispkg.GetClient() != nil {
		_ = redispkg.Set(ctx, cacheKey, "1", verifyCacheTTL)
	}
	return StatusVerified
}
