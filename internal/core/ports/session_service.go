package ports

import (
	"context"

	"github.com/bloodconnect/donor-match/internal/core/domain"
)

// RegisterInput carries the data needed to create a new identity.
type RegisterInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=donor recipient admin"`
}

// SessionService manages the process-wide current identity, persisted
// under the currentUser key.
type SessionService interface {
	// Login matches an identity by email. (nil, nil) means no match:
	// absent, not an error. The password is not verified beyond the
	// configured demo policy.
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, in RegisterInput) (*domain.Identity, error)
	Logout(ctx context.Context) error
	// CurrentIdentity re-reads the persisted slot on every call so it
	// reflects out-of-band changes to the key.
	CurrentIdentity(ctx context.Context) (*domain.Identity, error)
	UpdateDonorProfile(ctx context.Context, p domain.DonorProfile) error
	UpdateRecipientProfile(ctx context.Context, p domain.RecipientProfile) error
}
