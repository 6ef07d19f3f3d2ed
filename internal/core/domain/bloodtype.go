package domain

import "fmt"

// BloodType is one of the eight ABO/Rh blood groups.
type BloodType string

const (
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
)

// compatibleRecipients maps a donor blood type to the recipient types
// that donor can safely supply, per standard transfusion compatibility.
// O- is the universal donor; AB+ can only give to AB+.
var compatibleRecipients = map[BloodType][]BloodType{
	ONegative:  {ONegative, OPositive, ANegative, APositive, BNegative, BPositive, ABNegative, ABPositive},
	OPositive:  {OPositive, APositive, BPositive, ABPositive},
	ANegative:  {ANegative, APositive, ABNegative, ABPositive},
	APositive:  {APositive, ABPositive},
	BNegative:  {BNegative, BPositive, ABNegative, ABPositive},
	BPositive:  {BPositive, ABPositive},
	ABNegative: {ABNegative, ABPositive},
	ABPositive: {ABPositive},
}

// IsCompatible reports whether blood of type donor can be transfused to
// a patient needing type recipient. The donor type must be one of the
// eight known groups; anything else is a caller bug and panics.
func IsCompatible(donor, recipient BloodType) bool {
	recipients, ok := compatibleRecipients[donor]
	if !ok {
		panic(fmt.Sprintf("domain: unknown donor blood type %q", donor))
	}
	for _, r := range recipients {
		if r == recipient {
			return true
		}
	}
	return false
}

// ParseBloodType validates a raw string against the eight known groups.
func ParseBloodType(s string) (BloodType, error) {
	bt := BloodType(s)
	if _, ok := compatibleRecipients[bt]; !ok {
		return "", fmt.Errorf("invalid blood type %q", s)
	}
	return bt, nil
}

// BloodTypes lists all eight groups in a stable order.
func BloodTypes() []BloodType {
	return []BloodType{APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative}
}
