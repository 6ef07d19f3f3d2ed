package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
	"github.com/bloodconnect/donor-match/internal/core/metrics"
	"github.com/bloodconnect/donor-match/internal/core/ports"
)

// SessionService tracks the process-wide current identity. The slot is
// persisted under the currentUser key and re-read on every
// CurrentIdentity call, so out-of-band writes to the key are visible.
type SessionService struct {
	store ports.RecordStore
	kv    ports.KeyValue
	log   zerolog.Logger
	v     *validator.Validate

	// acceptAnyPassword is the demo credential policy: a login matching
	// an email succeeds regardless of password. When disabled, logins
	// are rejected outright since identities carry no credentials.
	acceptAnyPassword bool
}

func NewSessionService(store ports.RecordStore, kv ports.KeyValue, log zerolog.Logger, acceptAnyPassword bool) *SessionService {
	return &SessionService{
		store:             store,
		kv:                kv,
		log:               log,
		v:                 validator.New(),
		acceptAnyPassword: acceptAnyPassword,
	}
}

// Login matches an identity by email and makes it current. A missing
// email yields (nil, nil): absent, not an error.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, ok := s.store.FindUserByEmail(email)
	if !ok {
		metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
		return nil, nil
	}
	if !s.acceptAnyPassword {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.log.Warn().Str("email", email).Msg("login rejected: demo credential policy disabled")
		return nil, nil
	}

	if err := s.writeCurrent(ctx, user); err != nil {
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return user, nil
}

// Register creates a new unverified identity with no profile, inserts
// it into the record store, and makes it the current identity.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Identity, error) {
	if err := checkInput(s.v, in); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if _, exists := s.store.FindUserByEmail(in.Email); exists {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.Identity{
		ID:          newID(),
		Email:       in.Email,
		DisplayName: in.Name,
		Role:        domain.Role(in.Role),
		CreatedAt:   time.Now().UTC(),
		Verified:    false,
	}
	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err := s.writeCurrent(ctx, user); err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(in.Role).Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", in.Role).Msg("identity registered")
	return user, nil
}

// Logout clears the current identity and its persisted key.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, ports.KeyCurrentUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentIdentity reads the persisted slot. (nil, nil) when anonymous.
// A malformed slot is treated as absent.
func (s *SessionService) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	raw, ok, err := s.kv.Get(ctx, ports.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("current identity: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var user domain.Identity
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Str("key", ports.KeyCurrentUser).Msg("malformed session slot, treating as anonymous")
		return nil, nil
	}
	return &user, nil
}

// UpdateDonorProfile attaches or replaces the donor profile on the
// current identity, persisting both the session slot and the store copy.
func (s *SessionService) UpdateDonorProfile(ctx context.Context, p domain.DonorProfile) error {
	return s.updateProfile(ctx, func(u *domain.Identity) error {
		return u.AttachDonorProfile(p)
	})
}

// UpdateRecipientProfile attaches or replaces the recipient profile on
// the current identity, persisting both the session slot and the store
// copy.
func (s *SessionService) UpdateRecipientProfile(ctx context.Context, p domain.RecipientProfile) error {
	return s.updateProfile(ctx, func(u *domain.Identity) error {
		return u.AttachRecipientProfile(p)
	})
}

func (s *SessionService) updateProfile(ctx context.Context, attach func(*domain.Identity) error) error {
	user, err := s.CurrentIdentity(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotAuthenticated
	}
	if err := attach(user); err != nil {
		return err
	}

	found, err := s.store.UpdateUser(ctx, user)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if !found {
		// The session slot referenced an identity the store no longer
		// knows. Keep the no-op soft but make it visible.
		s.log.Warn().Str("user_id", user.ID).Msg("current identity missing from record store")
	}
	return s.writeCurrent(ctx, user)
}

func (s *SessionService) writeCurrent(ctx context.Context, user *domain.Identity) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyCurrentUser, string(raw)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
