package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
	"github.com/bloodconnect/donor-match/internal/core/metrics"
	"github.com/bloodconnect/donor-match/internal/core/ports"
)

// RequestService owns the blood-request lifecycle.
type RequestService struct {
	store ports.RecordStore
	log   zerolog.Logger
	v     *validator.Validate
}

func NewRequestService(store ports.RecordStore, log zerolog.Logger) *RequestService {
	return &RequestService{store: store, log: log, v: validator.New()}
}

// Create validates the input, assigns id/createdAt/status and inserts
// the request as active with no interested donors yet.
func (s *RequestService) Create(ctx context.Context, in ports.CreateRequestInput) (*domain.BloodRequest, error) {
	if err := checkInput(s.v, in); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req := &domain.BloodRequest{
		ID:               newID(),
		RecipientID:      in.RecipientID,
		BloodType:        domain.BloodType(in.BloodType),
		UnitsNeeded:      in.UnitsNeeded,
		City:             in.City,
		Hospital:         in.Hospital,
		UrgencyLevel:     domain.UrgencyLevel(in.UrgencyLevel),
		Notes:            in.Notes,
		Status:           domain.RequestActive,
		CreatedAt:        time.Now().UTC(),
		ExpiresAt:        in.ExpiresAt,
		InterestedDonors: []domain.DonorResponse{},
	}
	if err := s.store.InsertRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	metrics.RequestsCreatedTotal.WithLabelValues(in.UrgencyLevel).Inc()
	s.log.Info().Str("request_id", req.ID).Str("city", req.City).Str("urgency", in.UrgencyLevel).Msg("blood request created")
	return req, nil
}

// List reloads the persisted collection and returns it in insertion
// order, so out-of-band writes to the bloodRequests key are reflected.
func (s *RequestService) List(ctx context.Context) ([]*domain.BloodRequest, error) {
	if err := s.store.LoadRequests(ctx); err != nil {
		return nil, err
	}
	return s.store.Requests(), nil
}

// UpdateStatus drives a caller-initiated lifecycle transition, e.g. to
// fulfilled or expired. found=false when no request has the given id.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("update status: invalid status %q", status)
	}
	req, ok := s.store.FindRequestByID(id)
	if !ok {
		return false, nil
	}
	req.Status = status
	if _, err := s.store.UpdateRequest(ctx, req); err != nil {
		return true, fmt.Errorf("update status: %w", err)
	}
	s.log.Info().Str("request_id", id).Str("status", string(status)).Msg("request status updated")
	return true, nil
}
