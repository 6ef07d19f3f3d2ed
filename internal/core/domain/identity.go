package domain

import (
	"errors"
	"time"
)

// Role classifies a registered identity.
type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleDonor || r == RoleRecipient || r == RoleAdmin
}

var ErrEmailTaken = errors.New("email already registered")
var ErrProfileMismatch = errors.New("profile variant does not match identity role")
var ErrNotAuthenticated = errors.New("no authenticated identity")

// Gender of a donor.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Visibility controls whether a donor profile is publicly listed.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// OrganizationType classifies the entity behind a recipient profile.
type OrganizationType string

const (
	OrgHospital   OrganizationType = "hospital"
	OrgClinic     OrganizationType = "clinic"
	OrgIndividual OrganizationType = "individual"
)

// DonorProfile carries the donor-specific half of an identity.
type DonorProfile struct {
	FullName          string     `json:"fullName"`
	Age               int        `json:"age"`
	Gender            Gender     `json:"gender"`
	BloodType         BloodType  `json:"bloodType"`
	PhoneNumber       string     `json:"phoneNumber"`
	City              string     `json:"city"`
	LastDonationDate  *time.Time `json:"lastDonationDate,omitempty"`
	IsAvailable       bool       `json:"isAvailable"`
	ProfileVisibility Visibility `json:"profileVisibility"`
}

// RecipientProfile carries the recipient-specific half of an identity.
type RecipientProfile struct {
	ContactName      string           `json:"contactName"`
	OrganizationName string           `json:"organizationName"`
	PhoneNumber      string           `json:"phoneNumber"`
	City             string           `json:"city"`
	OrganizationType OrganizationType `json:"organizationType"`
}

// Identity is a registered user of the platform. The profile is a
// tagged union keyed by Role: at most one of Donor/Recipient is set,
// and only ever the variant matching the role. Profiles are absent
// until profile setup completes.
type Identity struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	DisplayName string            `json:"displayName"`
	Role        Role              `json:"role"`
	Donor       *DonorProfile     `json:"donorProfile,omitempty"`
	Recipient   *RecipientProfile `json:"recipientProfile,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Verified    bool              `json:"verified"`
}

// HasProfile reports whether the variant matching the role is present.
func (i *Identity) HasProfile() bool {
	switch i.Role {
	case RoleDonor:
		return i.Donor != nil
	case RoleRecipient:
		return i.Recipient != nil
	default:
		return false
	}
}

// AttachDonorProfile sets the donor variant. The identity must hold the
// donor role.
func (i *Identity) AttachDonorProfile(p DonorProfile) error {
	if i.Role != RoleDonor {
		return ErrProfileMismatch
	}
	i.Donor = &p
	i.Recipient = nil
	return nil
}

// AttachRecipientProfile sets the recipient variant. The identity must
// hold the recipient role.
func (i *Identity) AttachRecipientProfile(p RecipientProfile) error {
	if i.Role != RoleRecipient {
		return ErrProfileMismatch
	}
	i.Recipient = &p
	i.Donor = nil
	return nil
}
