package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
	"github.com/bloodconnect/donor-match/internal/core/metrics"
	"github.com/bloodconnect/donor-match/internal/core/ports"
)

// MatchingService filters and ranks open blood requests for a donor.
type MatchingService struct {
	store ports.RecordStore
	log   zerolog.Logger
}

func NewMatchingService(store ports.RecordStore, log zerolog.Logger) *MatchingService {
	return &MatchingService{store: store, log: log}
}

// FindMatchesForDonor returns the active requests the donor can serve:
// same city (case-insensitive), compatible blood type, most urgent
// first. The sort is stable, so requests of equal urgency keep their
// insertion order. Recomputed from store state on every call.
func (s *MatchingService) FindMatchesForDonor(p domain.DonorProfile) []*domain.BloodRequest {
	var matches []*domain.BloodRequest
	for _, r := range s.store.Requests() {
		if r.Status != domain.RequestActive {
			continue
		}
		if !strings.EqualFold(r.City, p.City) {
			continue
		}
		if !domain.IsCompatible(p.BloodType, r.BloodType) {
			continue
		}
		matches = append(matches, r)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].UrgencyLevel.Rank() > matches[j].UrgencyLevel.Rank()
	})

	metrics.MatchRunsTotal.Inc()
	s.log.Debug().Str("city", p.City).Str("blood_type", string(p.BloodType)).Int("matches", len(matches)).Msg("matches computed")
	return matches
}

// RespondToRequest records the donor's interest on a request. A repeat
// response for the same donor is a silent no-op; found=false when no
// request has the given id. The store is saved only when an entry is
// actually appended.
func (s *MatchingService) RespondToRequest(ctx context.Context, requestID, donorID string) (bool, error) {
	req, ok := s.store.FindRequestByID(requestID)
	if !ok {
		return false, nil
	}
	if req.HasResponseFrom(donorID) {
		return true, nil
	}

	req.InterestedDonors = append(req.InterestedDonors, domain.DonorResponse{
		DonorID:     donorID,
		RespondedAt: time.Now().UTC(),
		Status:      domain.ResponseInterested,
	})
	if _, err := s.store.UpdateRequest(ctx, req); err != nil {
		return true, fmt.Errorf("respond to request: %w", err)
	}

	metrics.DonorResponsesTotal.Inc()
	s.log.Info().Str("request_id", requestID).Str("donor_id", donorID).Msg("donor response recorded")
	return true, nil
}
