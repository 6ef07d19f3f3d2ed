package ports

import (
	"context"

	"github.com/bloodconnect/donor-match/internal/core/domain"
)

// RecordStore owns the canonical Identity and BloodRequest collections.
// Collections are loaded from and written through the KeyValue adapter;
// every mutating operation performs exactly one save. Returned pointers
// reference the live records and must not be retained past a call.
type RecordStore interface {
	// LoadUsers and LoadRequests deserialize the persisted collections.
	// Absent or malformed payloads yield an empty collection, never an
	// error; only adapter I/O failures are surfaced.
	LoadUsers(ctx context.Context) error
	LoadRequests(ctx context.Context) error

	SaveUsers(ctx context.Context) error
	SaveRequests(ctx context.Context) error

	FindUserByEmail(email string) (*domain.Identity, bool)
	FindUserByID(id string) (*domain.Identity, bool)
	FindRequestByID(id string) (*domain.BloodRequest, bool)

	// InsertUser and InsertRequest append a record whose id must be
	// unique at insertion time; a duplicate id is a programming error
	// and panics.
	InsertUser(ctx context.Context, u *domain.Identity) error
	InsertRequest(ctx context.Context, r *domain.BloodRequest) error

	// UpdateUser and UpdateRequest replace the stored record matching
	// the id. A missing id is an observable no-op: found=false, no save.
	UpdateUser(ctx context.Context, u *domain.Identity) (found bool, err error)
	UpdateRequest(ctx context.Context, r *domain.BloodRequest) (found bool, err error)

	Users() []*domain.Identity
	Requests() []*domain.BloodRequest
}
