package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub key/value adapter
// ---------------------------------------------------------------------------

type stubKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (kv *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	if kv.getErr != nil {
		return "", false, kv.getErr
	}
	val, ok := kv.data[key]
	return val, ok, nil
}

func (kv *stubKV) Set(_ context.Context, key, value string) error {
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.data[key] = value
	return nil
}

func (kv *stubKV) Delete(_ context.Context, key string) error {
	delete(kv.data, key)
	return nil
}

// ---------------------------------------------------------------------------
// In-memory stub record store
// ---------------------------------------------------------------------------

type stubRecordStore struct {
	users    []*domain.Identity
	requests []*domain.BloodRequest

	userSaves    int
	requestSaves int
	reloads      int
	saveErr      error
}

func newStubRecordStore() *stubRecordStore {
	return &stubRecordStore{}
}

func (s *stubRecordStore) LoadUsers(context.Context) error { return nil }

func (s *stubRecordStore) LoadRequests(context.Context) error {
	s.reloads++
	return nil
}

func (s *stubRecordStore) SaveUsers(context.Context) error {
	s.userSaves++
	return s.saveErr
}

func (s *stubRecordStore) SaveRequests(context.Context) error {
	s.requestSaves++
	return s.saveErr
}

func (s *stubRecordStore) FindUserByEmail(email string) (*domain.Identity, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return nil, false
}

func (s *stubRecordStore) FindUserByID(id string) (*domain.Identity, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (s *stubRecordStore) FindRequestByID(id string) (*domain.BloodRequest, bool) {
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

func (s *stubRecordStore) InsertUser(ctx context.Context, u *domain.Identity) error {
	if _, exists := s.FindUserByID(u.ID); exists {
		panic(fmt.Sprintf("stub: duplicate user id %q", u.ID))
	}
	s.users = append(s.users, u)
	return s.SaveUsers(ctx)
}

func (s *stubRecordStore) InsertRequest(ctx context.Context, r *domain.BloodRequest) error {
	if _, exists := s.FindRequestByID(r.ID); exists {
		panic(fmt.Sprintf("stub: duplicate request id %q", r.ID))
	}
	s.requests = append(s.requests, r)
	return s.SaveRequests(ctx)
}

func (s *stubRecordStore) UpdateUser(ctx context.Context, u *domain.Identity) (bool, error) {
	for i, existing := range s.users {
		if existing.ID == u.ID {
			s.users[i] = u
			return true, s.SaveUsers(ctx)
		}
	}
	return false, nil
}

func (s *stubRecordStore) UpdateRequest(ctx context.Context, r *domain.BloodRequest) (bool, error) {
	for i, existing := range s.requests {
		if existing.ID == r.ID {
			s.requests[i] = r
			return true, s.SaveRequests(ctx)
		}
	}
	return false, nil
}

func (s *stubRecordStore) Users() []*domain.Identity { return s.users }

func (s *stubRecordStore) Requests() []*domain.BloodRequest { return s.requests }

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func donorInCity(city string, bt domain.BloodType) domain.DonorProfile {
	return domain.DonorProfile{
		FullName:          "Test Donor",
		Age:               30,
		Gender:            domain.GenderMale,
		BloodType:         bt,
		PhoneNumber:       "+100000000",
		City:              city,
		IsAvailable:       true,
		ProfileVisibility: domain.VisibilityPublic,
	}
}

func activeRequest(id, city string, bt domain.BloodType, urgency domain.UrgencyLevel) *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:           id,
		RecipientID:  "recipient1",
		BloodType:    bt,
		UnitsNeeded:  2,
		City:         city,
		Hospital:     city + " General Hospital",
		UrgencyLevel: urgency,
		Status:       domain.RequestActive,
	}
}
