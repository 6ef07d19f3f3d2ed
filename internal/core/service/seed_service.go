package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match/internal/core/domain"
	"github.com/bloodconnect/donor-match/internal/core/metrics"
	"github.com/bloodconnect/donor-match/internal/core/ports"
)

// SeedService primes empty storage with a fixed demo catalog: four
// fully profiled donors, three recipients, and five requests spanning
// all urgency levels across three cities. The users and bloodRequests
// keys are checked independently, so a partially seeded store is
// completed rather than duplicated.
type SeedService struct {
	kv  ports.KeyValue
	log zerolog.Logger
}

func NewSeedService(kv ports.KeyValue, log zerolog.Logger) *SeedService {
	return &SeedService{kv: kv, log: log}
}

// EnsureSeeded writes the demo catalog for each absent key. Idempotent:
// once a key exists the corresponding catalog is never written again.
func (s *SeedService) EnsureSeeded(ctx context.Context) error {
	seededUsers, err := s.seedKey(ctx, ports.KeyUsers, demoIdentities())
	if err != nil {
		return err
	}
	seededRequests, err := s.seedKey(ctx, ports.KeyRequests, demoRequests())
	if err != nil {
		return err
	}

	if seededUsers || seededRequests {
		metrics.SeedRunsTotal.WithLabelValues("seeded").Inc()
		s.log.Info().Bool("users", seededUsers).Bool("requests", seededRequests).Msg("demo catalog seeded")
	} else {
		metrics.SeedRunsTotal.WithLabelValues("skipped").Inc()
	}
	return nil
}

// seedKey writes records under key only when the key is absent and
// reports whether a write happened.
func (s *SeedService) seedKey(ctx context.Context, key string, records any) (bool, error) {
	_, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("seed %s: %w", key, err)
	}
	if ok {
		return false, nil
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return false, fmt.Errorf("seed %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return false, fmt.Errorf("seed %s: %w", key, err)
	}
	return true, nil
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func demoIdentities() []*domain.Identity {
	return []*domain.Identity{
		{
			ID: "donor1", Email: "ahmed.donor@example.com", DisplayName: "Ahmed Hassan",
			Role: domain.RoleDonor, CreatedAt: at(2024, time.January, 15, 10, 0), Verified: true,
			Donor: &domain.DonorProfile{
				FullName: "Ahmed Hassan", Age: 28, Gender: domain.GenderMale,
				BloodType: domain.OPositive, PhoneNumber: "+1234567890", City: "Cairo",
				LastDonationDate: datePtr(at(2024, time.January, 1, 0, 0)),
				IsAvailable:      true, ProfileVisibility: domain.VisibilityPublic,
			},
		},
		{
			ID: "donor2", Email: "sara.donor@example.com", DisplayName: "Sara Mohamed",
			Role: domain.RoleDonor, CreatedAt: at(2024, time.January, 20, 14, 30), Verified: true,
			Donor: &domain.DonorProfile{
				FullName: "Sara Mohamed", Age: 25, Gender: domain.GenderFemale,
				BloodType: domain.APositive, PhoneNumber: "+1234567891", City: "Alexandria",
				LastDonationDate: datePtr(at(2023, time.December, 15, 0, 0)),
				IsAvailable:      true, ProfileVisibility: domain.VisibilityPublic,
			},
		},
		{
			ID: "donor3", Email: "omar.donor@example.com", DisplayName: "Omar Ali",
			Role: domain.RoleDonor, CreatedAt: at(2024, time.February, 1, 9, 15), Verified: true,
			Donor: &domain.DonorProfile{
				FullName: "Omar Ali", Age: 32, Gender: domain.GenderMale,
				BloodType: domain.BNegative, PhoneNumber: "+1234567892", City: "Cairo",
				LastDonationDate: datePtr(at(2024, time.January, 20, 0, 0)),
				IsAvailable:      true, ProfileVisibility: domain.VisibilityPublic,
			},
		},
		{
			ID: "donor4", Email: "fatima.donor@example.com", DisplayName: "Fatima Al-Zahra",
			Role: domain.RoleDonor, CreatedAt: at(2024, time.February, 5, 16, 45), Verified: true,
			Donor: &domain.DonorProfile{
				FullName: "Fatima Al-Zahra", Age: 29, Gender: domain.GenderFemale,
				BloodType: domain.ABPositive, PhoneNumber: "+1234567893", City: "Giza",
				LastDonationDate: datePtr(at(2023, time.November, 30, 0, 0)),
				IsAvailable:      true, ProfileVisibility: domain.VisibilityPublic,
			},
		},
		{
			ID: "recipient1", Email: "hospital.cairo@example.com", DisplayName: "Dr. Mahmoud Ibrahim",
			Role: domain.RoleRecipient, CreatedAt: at(2024, time.January, 10, 8, 0), Verified: true,
			Recipient: &domain.RecipientProfile{
				ContactName: "Dr. Mahmoud Ibrahim", OrganizationName: "Cairo University Hospital",
				PhoneNumber: "+1234567894", City: "Cairo", OrganizationType: domain.OrgHospital,
			},
		},
		{
			ID: "recipient2", Email: "clinic.alex@example.com", DisplayName: "Dr. Nadia Farouk",
			Role: domain.RoleRecipient, CreatedAt: at(2024, time.January, 25, 11, 20), Verified: true,
			Recipient: &domain.RecipientProfile{
				ContactName: "Dr. Nadia Farouk", OrganizationName: "Alexandria Medical Center",
				PhoneNumber: "+1234567895", City: "Alexandria", OrganizationType: domain.OrgClinic,
			},
		},
		{
			ID: "recipient3", Email: "emergency.giza@example.com", DisplayName: "Dr. Youssef Mansour",
			Role: domain.RoleRecipient, CreatedAt: at(2024, time.February, 3, 13, 10), Verified: true,
			Recipient: &domain.RecipientProfile{
				ContactName: "Dr. Youssef Mansour", OrganizationName: "Giza Emergency Hospital",
				PhoneNumber: "+1234567896", City: "Giza", OrganizationType: domain.OrgHospital,
			},
		},
	}
}

func demoRequests() []*domain.BloodRequest {
	return []*domain.BloodRequest{
		{
			ID: "req1", RecipientID: "recipient1", BloodType: domain.OPositive, UnitsNeeded: 3,
			City: "Cairo", Hospital: "Cairo University Hospital", UrgencyLevel: domain.UrgencyCritical,
			Notes:  "Emergency surgery patient needs immediate blood transfusion. Patient is stable but requires O+ blood within 24 hours.",
			Status: domain.RequestActive,
			CreatedAt: at(2024, time.December, 20, 10, 30), ExpiresAt: at(2024, time.December, 27, 10, 30),
			InterestedDonors: []domain.DonorResponse{
				{DonorID: "donor1", RespondedAt: at(2024, time.December, 20, 11, 15), Status: domain.ResponseInterested},
			},
		},
		{
			ID: "req2", RecipientID: "recipient2", BloodType: domain.APositive, UnitsNeeded: 2,
			City: "Alexandria", Hospital: "Alexandria Medical Center", UrgencyLevel: domain.UrgencyHigh,
			Notes:  "Cancer patient undergoing chemotherapy treatment. Regular blood transfusions needed.",
			Status: domain.RequestActive,
			CreatedAt: at(2024, time.December, 19, 14, 20), ExpiresAt: at(2024, time.December, 26, 14, 20),
			InterestedDonors: []domain.DonorResponse{},
		},
		{
			ID: "req3", RecipientID: "recipient3", BloodType: domain.BNegative, UnitsNeeded: 1,
			City: "Giza", Hospital: "Giza Emergency Hospital", UrgencyLevel: domain.UrgencyMedium,
			Notes:  "Scheduled surgery next week. Rare blood type B- needed for backup during operation.",
			Status: domain.RequestActive,
			CreatedAt: at(2024, time.December, 18, 9, 45), ExpiresAt: at(2024, time.December, 25, 9, 45),
			InterestedDonors: []domain.DonorResponse{},
		},
		{
			ID: "req4", RecipientID: "recipient1", BloodType: domain.ABPositive, UnitsNeeded: 4,
			City: "Cairo", Hospital: "Cairo University Hospital", UrgencyLevel: domain.UrgencyLow,
			Notes:  "Blood bank restocking for AB+ type. Non-urgent but needed for future emergencies.",
			Status: domain.RequestActive,
			CreatedAt: at(2024, time.December, 17, 16, 0), ExpiresAt: at(2024, time.December, 24, 16, 0),
			InterestedDonors: []domain.DonorResponse{
				{DonorID: "donor4", RespondedAt: at(2024, time.December, 17, 17, 30), Status: domain.ResponseInterested},
			},
		},
		{
			ID: "req5", RecipientID: "recipient2", BloodType: domain.ONegative, UnitsNeeded: 5,
			City: "Alexandria", Hospital: "Alexandria Medical Center", UrgencyLevel: domain.UrgencyCritical,
			Notes:  "Multiple trauma patients from car accident. Universal donor blood O- urgently needed.",
			Status: domain.RequestActive,
			CreatedAt: at(2024, time.December, 20, 8, 15), ExpiresAt: at(2024, time.December, 27, 8, 15),
			InterestedDonors: []domain.DonorResponse{},
		},
	}
}
