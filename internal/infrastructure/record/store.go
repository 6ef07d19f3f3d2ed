// Package record implements the typed Record Store over the KeyValue
// persistence port. Identities and blood requests are held in
// insertion-ordered in-process slices and written through as JSON
// blobs under the users and bloodRequests keys.
package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
	"github.com/bloodconnect/donor-match/internal/core/ports"
)

// Store is the canonical owner of the Identity and BloodRequest
// collections. It is not safe for concurrent use; callers are a single
// logical session per process.
type Store struct {
	kv  ports.KeyValue
	log zerolog.Logger

	users    []*domain.Identity
	requests []*domain.BloodRequest
}

// NewStore creates an empty Store backed by the given adapter. Call
// LoadUsers/LoadRequests before reading.
func NewStore(kv ports.KeyValue, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// LoadUsers replaces the in-process identity collection with the
// persisted one. Absent or malformed payloads yield an empty
// collection; only adapter failures are returned.
func (s *Store) LoadUsers(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, ports.KeyUsers)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if !ok {
		s.users = nil
		return nil
	}
	var users []*domain.Identity
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		s.log.Warn().Err(err).Str("key", ports.KeyUsers).Msg("malformed persisted payload, starting empty")
		s.users = nil
		return nil
	}
	s.users = users
	return nil
}

// LoadRequests replaces the in-process request collection with the
// persisted one, with the same soft-failure rules as LoadUsers.
func (s *Store) LoadRequests(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, ports.KeyRequests)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}
	if !ok {
		s.requests = nil
		return nil
	}
	var requests []*domain.BloodRequest
	if err := json.Unmarshal([]byte(raw), &requests); err != nil {
		s.log.Warn().Err(err).Str("key", ports.KeyRequests).Msg("malformed persisted payload, starting empty")
		s.requests = nil
		return nil
	}
	s.requests = requests
	return nil
}

// SaveUsers writes the full identity collection through the adapter.
func (s *Store) SaveUsers(ctx context.Context) error {
	raw, err := json.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyUsers, string(raw)); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// SaveRequests writes the full request collection through the adapter.
func (s *Store) SaveRequests(ctx context.Context) error {
	raw, err := json.Marshal(s.requests)
	if err != nil {
		return fmt.Errorf("save requests: %w", err)
	}
	if err := s.kv.Set(ctx, ports.KeyRequests, string(raw)); err != nil {
		return fmt.Errorf("save requests: %w", err)
	}
	return nil
}

// FindUserByEmail matches exactly, case-sensitive as stored.
func (s *Store) FindUserByEmail(email string) (*domain.Identity, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) FindUserByID(id string) (*domain.Identity, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) FindRequestByID(id string) (*domain.BloodRequest, bool) {
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// InsertUser appends the identity and saves. The id is assigned by the
// caller and must be unique; a duplicate is a programming error.
func (s *Store) InsertUser(ctx context.Context, u *domain.Identity) error {
	if _, exists := s.FindUserByID(u.ID); exists {
		panic(fmt.Sprintf("record: duplicate user id %q", u.ID))
	}
	s.users = append(s.users, u)
	return s.SaveUsers(ctx)
}

// InsertRequest appends the request and saves, with the same uniqueness
// contract as InsertUser.
func (s *Store) InsertRequest(ctx context.Context, r *domain.BloodRequest) error {
	if _, exists := s.FindRequestByID(r.ID); exists {
		panic(fmt.Sprintf("record: duplicate request id %q", r.ID))
	}
	s.requests = append(s.requests, r)
	return s.SaveRequests(ctx)
}

// UpdateUser replaces the stored identity matching u.ID and saves.
// A missing id is a no-op reported as found=false.
func (s *Store) UpdateUser(ctx context.Context, u *domain.Identity) (bool, error) {
	for i, existing := range s.users {
		if existing.ID == u.ID {
			s.users[i] = u
			return true, s.SaveUsers(ctx)
		}
	}
	return false, nil
}

// UpdateRequest replaces the stored request matching r.ID and saves.
// A missing id is a no-op reported as found=false.
func (s *Store) UpdateRequest(ctx context.Context, r *domain.BloodRequest) (bool, error) {
	for i, existing := range s.requests {
		if existing.ID == r.ID {
			s.requests[i] = r
			return true, s.SaveRequests(ctx)
		}
	}
	return false, nil
}

// Users returns the live identity collection in insertion order.
func (s *Store) Users() []*domain.Identity { return s.users }

// Requests returns the live request collection in insertion order.
func (s *Store) Requests() []*domain.BloodRequest { return s.requests }
