package domain

import (
	"fmt"
	"strings"
	"time"
)

// Customer represents a registered customer.
type Customer struct {
	CPF       string // unique identity, stored as 11 unformatted digits
	FullName  string
	CreatedAt time.Time
}

// NormalizeCPF strips formatting characters from a raw CPF, keeping only digits.
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPF renders 11 CPF digits as 000.000.000-00.
func FormatCPF(digits string) string {
	if len(digits) != 11 {
		return digits
	}
	return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
}

// ValidCPF reports whether raw is a valid CPF: 11 digits after normalization,
// not all identical, with both verification digits matching the mod-11
// checksum.
func ValidCPF(raw string) bool {
	d := NormalizeCPF(raw)
	if len(d) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	nums := make([]int, 11)
	for i := 0; i < 11; i++ {
		nums[i] = int(d[i] - '0')
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += nums[i] * (10 - i)
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	if check != nums[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += nums[i] * (11 - i)
	}
	check = 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check == nums[10]
}
