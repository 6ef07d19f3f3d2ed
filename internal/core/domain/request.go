package domain

import "time"

// RequestStatus represents the lifecycle state of a blood request.
// Transitions are caller-driven; the core stores ExpiresAt but does
// not expire requests on its own.
type RequestStatus string

const (
	RequestActive    RequestStatus = "active"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestExpired   RequestStatus = "expired"
)

// Valid reports whether s is one of the known request states.
func (s RequestStatus) Valid() bool {
	return s == RequestActive || s == RequestFulfilled || s == RequestExpired
}

// UrgencyLevel expresses how quickly a request needs donors.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

var urgencyRank = map[UrgencyLevel]int{
	UrgencyCritical: 4,
	UrgencyHigh:     3,
	UrgencyMedium:   2,
	UrgencyLow:      1,
}

// Rank returns the sort weight of the urgency level, higher = more
// urgent. Unknown levels rank below low.
func (u UrgencyLevel) Rank() int {
	return urgencyRank[u]
}

// Valid reports whether u is one of the known urgency levels.
func (u UrgencyLevel) Valid() bool {
	_, ok := urgencyRank[u]
	return ok
}

// ResponseStatus is a donor's standing on a request they responded to.
type ResponseStatus string

const (
	ResponseInterested ResponseStatus = "interested"
	ResponseConfirmed  ResponseStatus = "confirmed"
	ResponseDeclined   ResponseStatus = "declined"
)

// DonorResponse records a single donor's reply to a blood request.
type DonorResponse struct {
	DonorID     string         `json:"donorId"`
	RespondedAt time.Time      `json:"respondedAt"`
	Status      ResponseStatus `json:"status"`
}

// BloodRequest is the core aggregate: a recipient's ask for a number
// of units of a given blood type in a given city.
// Invariant: a donor id appears at most once in InterestedDonors.
type BloodRequest struct {
	ID               string          `json:"id"`
	RecipientID      string          `json:"recipientId"`
	BloodType        BloodType       `json:"bloodType"`
	UnitsNeeded      int             `json:"unitsNeeded"`
	City             string          `json:"city"`
	Hospital         string          `json:"hospital"`
	UrgencyLevel     UrgencyLevel    `json:"urgencyLevel"`
	Notes            string          `json:"notes,omitempty"`
	Status           RequestStatus   `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	ExpiresAt        time.Time       `json:"expiresAt"`
	InterestedDonors []DonorResponse `json:"interestedDonors"`
}

// HasResponseFrom reports whether the donor already responded to this
// request.
func (r *BloodRequest) HasResponseFrom(donorID string) bool {
	for _, d := range r.InterestedDonors {
		if d.DonorID == donorID {
			return true
		}
	}
	return false
}
