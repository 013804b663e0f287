package domain

import "testing"

func TestValidPlate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		plate string
		valid bool
	}{
		{"mercosul with letter", "ABC1D23", true},
		{"all digits after letters", "ABC1234", true},
		{"lowercase", "abc1d23", false},
		{"too few letters", "AB11D23", false},
		{"four letters", "ABCD123", false},
		{"too short", "ABC123", false},
		{"too long", "ABC1D234", false},
		{"letter in last pair", "ABC1D2E", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidPlate(tc.plate); got != tc.valid {
				t.Errorf("ValidPlate(%q) = %v, want %v", tc.plate, got, tc.valid)
			}
		})
	}
}
