package domain

import (
	"testing"
	"time"
)

func TestUrgencyRankOrdering(t *testing.T) {
	if !(UrgencyCritical.Rank() > UrgencyHigh.Rank() &&
		UrgencyHigh.Rank() > UrgencyMedium.Rank() &&
		UrgencyMedium.Rank() > UrgencyLow.Rank()) {
		t.Fatal("urgency ranks must order critical > high > medium > low")
	}
	if UrgencyLevel("panic").Rank() >= UrgencyLow.Rank() {
		t.Error("unknown urgency must rank below low")
	}
}

func TestRequestStatusValid(t *testing.T) {
	for _, s := range []RequestStatus{RequestActive, RequestFulfilled, RequestExpired} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if RequestStatus("open").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestHasResponseFrom(t *testing.T) {
	req := BloodRequest{
		InterestedDonors: []DonorResponse{
			{DonorID: "donor1", RespondedAt: time.Now(), Status: ResponseInterested},
		},
	}
	if !req.HasResponseFrom("donor1") {
		t.Error("expected response from donor1")
	}
	if req.HasResponseFrom("donor2") {
		t.Error("did not expect response from donor2")
	}
}

func TestIdentityProfileVariant(t *testing.T) {
	donor := Identity{ID: "d1", Role: RoleDonor}
	if donor.HasProfile() {
		t.Error("fresh identity must have no profile")
	}
	if err := donor.AttachRecipientProfile(RecipientProfile{}); err != ErrProfileMismatch {
		t.Fatalf("expected ErrProfileMismatch, got %v", err)
	}
	if err := donor.AttachDonorProfile(DonorProfile{FullName: "D", BloodType: OPositive}); err != nil {
		t.Fatalf("attach donor profile: %v", err)
	}
	if !donor.HasProfile() || donor.Recipient != nil {
		t.Error("donor variant must be set exclusively")
	}
}
