package service

import (
	"context"
	"testing"

	"github.com/bloodconnect/donor-match/internal/core/domain"
)

func TestMatching_FiltersStatusCityAndCompatibility(t *testing.T) {
	store := newStubRecordStore()
	store.requests = []*domain.BloodRequest{
		activeRequest("open", "Cairo", domain.OPositive, domain.UrgencyMedium),
		activeRequest("wrong-city", "Giza", domain.OPositive, domain.UrgencyCritical),
		activeRequest("incompatible", "Cairo", domain.ANegative, domain.UrgencyCritical),
	}
	fulfilled := activeRequest("closed", "Cairo", domain.OPositive, domain.UrgencyCritical)
	fulfilled.Status = domain.RequestFulfilled
	store.requests = append(store.requests, fulfilled)

	svc := NewMatchingService(store, discardLogger)
	matches := svc.FindMatchesForDonor(donorInCity("Cairo", domain.OPositive))

	if len(matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(matches))
	}
	if matches[0].ID != "open" {
		t.Errorf("expected match %q, got %q", "open", matches[0].ID)
	}
}

func TestMatching_CityComparisonIsCaseInsensitive(t *testing.T) {
	store := newStubRecordStore()
	store.requests = []*domain.BloodRequest{
		activeRequest("r1", "CAIRO", domain.OPositive, domain.UrgencyLow),
	}

	svc := NewMatchingService(store, discardLogger)
	matches := svc.FindMatchesForDonor(donorInCity("cairo", domain.ONegative))
	if len(matches) != 1 {
		t.Fatalf("city match must be case-insensitive, got %d matches", len(matches))
	}
}

func TestMatching_SortsByUrgencyDescending(t *testing.T) {
	store := newStubRecordStore()
	store.requests = []*domain.BloodRequest{
		activeRequest("low", "Cairo", domain.OPositive, domain.UrgencyLow),
		activeRequest("critical", "Cairo", domain.OPositive, domain.UrgencyCritical),
		activeRequest("medium", "Cairo", domain.OPositive, domain.UrgencyMedium),
		activeRequest("high", "Cairo", domain.OPositive, domain.UrgencyHigh),
	}

	svc := NewMatchingService(store, discardLogger)
	matches := svc.FindMatchesForDonor(donorInCity("Cairo", domain.ONegative))

	want := []string{"critical", "high", "medium", "low"}
	if len(matches) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(matches))
	}
	for i, id := range want {
		if matches[i].ID != id {
			t.Errorf("position %d: expected %q, got %q", i, id, matches[i].ID)
		}
	}
}

func TestMatching_EqualUrgencyPreservesInsertionOrder(t *testing.T) {
	store := newStubRecordStore()
	store.requests = []*domain.BloodRequest{
		activeRequest("first", "Cairo", domain.OPositive, domain.UrgencyHigh),
		activeRequest("critical", "Cairo", domain.OPositive, domain.UrgencyCritical),
		activeRequest("second", "Cairo", domain.APositive, domain.UrgencyHigh),
		activeRequest("third", "Cairo", domain.BPositive, domain.UrgencyHigh),
	}

	svc := NewMatchingService(store, discardLogger)
	matches := svc.FindMatchesForDonor(donorInCity("Cairo", domain.ONegative))

	want := []string{"critical", "first", "second", "third"}
	for i, id := range want {
		if matches[i].ID != id {
			t.Errorf("position %d: expected %q, got %q (stability violated)", i, id, matches[i].ID)
		}
	}
}

// The acceptance scenario: a Cairo O- donor sees req1 (O+, critical)
// before req4 (AB+, low); a Cairo A+ donor sees only req4.
func TestMatching_CairoScenario(t *testing.T) {
	store := newStubRecordStore()
	store.requests = []*domain.BloodRequest{
		activeRequest("req1", "Cairo", domain.OPositive, domain.UrgencyCritical),
		activeRequest("req4", "Cairo", domain.ABPositive, domain.UrgencyLow),
	}
	svc := NewMatchingService(store, discardLogger)

	oneg := svc.FindMatchesForDonor(donorInCity("Cairo", domain.ONegative))
	if len(oneg) != 2 || oneg[0].ID != "req1" || oneg[1].ID != "req4" {
		t.Fatalf("O- donor: expected [req1 req4], got %v", requestIDs(oneg))
	}

	apos := svc.FindMatchesForDonor(donorInCity("Cairo", domain.APositive))
	if len(apos) != 1 || apos[0].ID != "req4" {
		t.Fatalf("A+ donor: expected [req4], got %v", requestIDs(apos))
	}
}

func requestIDs(reqs []*domain.BloodRequest) []string {
	ids := make([]string, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return ids
}

func TestRespondToRequest_AppendsOnce(t *testing.T) {
	ctx := context.Background()
	store := newStubRecordStore()
	store.requests = []*domain.BloodRequest{
		activeRequest("req1", "Cairo", domain.OPositive, domain.UrgencyCritical),
	}
	svc := NewMatchingService(store, discardLogger)

	found, err := svc.RespondToRequest(ctx, "req1", "donor9")
	if err != nil || !found {
		t.Fatalf("first response: found=%v err=%v", found, err)
	}

	// Repeat must be a silent no-op.
	found, err = svc.RespondToRequest(ctx, "req1", "donor9")
	if err != nil || !found {
		t.Fatalf("repeat response: found=%v err=%v", found, err)
	}

	req, _ := store.FindRequestByID("req1")
	count := 0
	for _, d := range req.InterestedDonors {
		if d.DonorID == "donor9" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 entry for donor9, got %d", count)
	}
	if req.InterestedDonors[0].Status != domain.ResponseInterested {
		t.Errorf("expected interested status, got %s", req.InterestedDonors[0].Status)
	}
	if req.InterestedDonors[0].RespondedAt.IsZero() {
		t.Error("respondedAt must be set")
	}
	if store.requestSaves != 1 {
		t.Errorf("idempotent repeat must not save again: saves=%d", store.requestSaves)
	}
}

func TestRespondToRequest_UnknownRequest(t *testing.T) {
	svc := NewMatchingService(newStubRecordStore(), discardLogger)
	found, err := svc.RespondToRequest(context.Background(), "ghost", "donor1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found=false for unknown request id")
	}
}
