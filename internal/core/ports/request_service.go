package ports

import (
	"context"
	"time"

	"github.com/bloodconnect/donor-match/internal/core/domain"
)

// CreateRequestInput carries the caller-supplied fields of a new blood
// request. The core assigns id, createdAt, status and the empty
// interested-donors list.
type CreateRequestInput struct {
	RecipientID  string    `validate:"required"`
	BloodType    string    `validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsNeeded  int       `validate:"required,gt=0"`
	City         string    `validate:"required"`
	Hospital     string    `validate:"required"`
	UrgencyLevel string    `validate:"required,oneof=low medium high critical"`
	Notes        string
	ExpiresAt    time.Time `validate:"required"`
}

// RequestService owns the blood-request lifecycle.
type RequestService interface {
	Create(ctx context.Context, in CreateRequestInput) (*domain.BloodRequest, error)
	// List reloads the persisted collection before returning it, so the
	// result reflects out-of-band writes to the bloodRequests key.
	List(ctx context.Context) ([]*domain.BloodRequest, error)
	// UpdateStatus drives a caller-initiated lifecycle transition.
	// found=false when no request has the given id.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (found bool, err error)
}

// MatchingService filters and ranks open requests for a donor.
type MatchingService interface {
	// FindMatchesForDonor returns the active requests in the donor's
	// city (case-insensitive) whose blood type the donor can supply,
	// most urgent first. Recomputed from store state on every call.
	FindMatchesForDonor(p domain.DonorProfile) []*domain.BloodRequest
	// RespondToRequest records the donor's interest. Idempotent: a
	// repeat response is a silent no-op. found=false when no request
	// has the given id.
	RespondToRequest(ctx context.Context, requestID, donorID string) (found bool, err error)
}

// SeedService primes empty storage with the demo catalog.
type SeedService interface {
	EnsureSeeded(ctx context.Context) error
}
