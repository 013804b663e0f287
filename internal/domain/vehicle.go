package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// platePattern matches the Mercosul license plate format: three letters,
// a digit, a letter or digit, then two digits (e.g. ABC1D23).
var platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)

// ValidPlate reports whether value is a well-formed license plate.
func ValidPlate(value string) bool {
	return platePattern.MatchString(value)
}

// Vehicle represents a rentable vehicle in the fleet.
type Vehicle struct {
	Plate     string // unique identity
	Make      string
	Model     string
	DailyRate decimal.Decimal // price per rental day, always positive
	CreatedAt time.Time
}
