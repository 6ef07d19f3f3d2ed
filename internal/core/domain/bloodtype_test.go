package domain

import "testing"

// expectedRecipients is the full 8x8 transfusion compatibility table,
// written out independently of the production map.
var expectedRecipients = map[BloodType]map[BloodType]bool{
	ONegative:  {ONegative: true, OPositive: true, ANegative: true, APositive: true, BNegative: true, BPositive: true, ABNegative: true, ABPositive: true},
	OPositive:  {OPositive: true, APositive: true, BPositive: true, ABPositive: true},
	ANegative:  {ANegative: true, APositive: true, ABNegative: true, ABPositive: true},
	APositive:  {APositive: true, ABPositive: true},
	BNegative:  {BNegative: true, BPositive: true, ABNegative: true, ABPositive: true},
	BPositive:  {BPositive: true, ABPositive: true},
	ABNegative: {ABNegative: true, ABPositive: true},
	ABPositive: {ABPositive: true},
}

func TestIsCompatible_AllPairs(t *testing.T) {
	for _, donor := range BloodTypes() {
		for _, recipient := range BloodTypes() {
			want := expectedRecipients[donor][recipient]
			if got := IsCompatible(donor, recipient); got != want {
				t.Errorf("IsCompatible(%s, %s) = %v, want %v", donor, recipient, got, want)
			}
		}
	}
}

func TestIsCompatible_UniversalDonor(t *testing.T) {
	for _, recipient := range BloodTypes() {
		if !IsCompatible(ONegative, recipient) {
			t.Errorf("O- must be compatible with every recipient, failed for %s", recipient)
		}
	}
}

func TestIsCompatible_UnknownDonorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown donor type")
		}
	}()
	IsCompatible(BloodType("C+"), APositive)
}

func TestParseBloodType(t *testing.T) {
	bt, err := ParseBloodType("AB-")
	if err != nil {
		t.Fatalf("ParseBloodType(AB-) returned error: %v", err)
	}
	if bt != ABNegative {
		t.Fatalf("expected %s, got %s", ABNegative, bt)
	}

	if _, err := ParseBloodType("ab-"); err == nil {
		t.Error("expected error for lowercase input")
	}
	if _, err := ParseBloodType(""); err == nil {
		t.Error("expected error for empty input")
	}
}
