package domain

import "testing"

func TestValidCPF(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid digits", "52998224725", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid second example", "11144477735", true},
		{"wrong check digit", "52998224724", false},
		{"wrong first check digit", "52998224735", false},
		{"all same digits", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"too short", "1234567890", false},
		{"too long", "529982247251", false},
		{"empty", "", false},
		{"letters", "5299822472a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCPF(tc.cpf); got != tc.valid {
				t.Errorf("ValidCPF(%q) = %v, want %v", tc.cpf, got, tc.valid)
			}
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	t.Parallel()

	if got := NormalizeCPF("529.982.247-25"); got != "52998224725" {
		t.Errorf("expected bare digits, got %q", got)
	}
	if got := NormalizeCPF("52998224725"); got != "52998224725" {
		t.Errorf("expected digits unchanged, got %q", got)
	}
}

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	if got := FormatCPF("52998224725"); got != "529.982.247-25" {
		t.Errorf("expected formatted CPF, got %q", got)
	}
}
