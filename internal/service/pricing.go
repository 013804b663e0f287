package service

import (
	"github.com/shopspring/decimal"

	"carrent/internal/domain"
)

// Pricing rates. Reproduced exactly; changing any of them changes every quote.
var (
	weekendHolidaySurcharge = decimal.RequireFromString("0.06")
	insuranceFeeRate        = decimal.RequireFromString("0.10")
	discount7To15Days       = decimal.RequireFromString("0.05")
	discountAbove15Days     = decimal.RequireFromString("0.10")
)

// PricingService computes rental price quotes. It is stateless; a quote is a
// pure function of the vehicle, the period, the insurance flag and the
// holiday table.
type PricingService struct{}

// NewPricingService creates a new PricingService.
func NewPricingService() *PricingService {
	return &PricingService{}
}

// Quote computes the total price for renting the vehicle over the period.
// The steps apply in a fixed order: daily rate times billable days, plus a 6%
// per-day surcharge for each weekend or holiday day in [start, end), plus 10%
// insurance if requested, minus the long-rental discount tier, rounded to 2
// decimal places half-up.
func (s *PricingService) Quote(vehicle *domain.Vehicle, period domain.RentalPeriod, withInsurance bool) (decimal.Decimal, error) {
	if vehicle == nil || period.IsZero() {
		return decimal.Zero, ErrInvalidQuoteInput
	}

	days := period.Days()
	dailyRate := vehicle.DailyRate

	base := dailyRate.Mul(decimal.NewFromInt(int64(days)))
	price := base.Add(s.surcharges(dailyRate, period))

	if withInsurance {
		price = price.Add(price.Mul(insuranceFeeRate))
	}

	price = applyDiscount(price, days)

	// Round rounds half away from zero, which is half-up for positive amounts.
	return price.Round(2), nil
}

// surcharges sums the weekend/holiday surcharge over each billed day. The end
// date is excluded, matching Days semantics.
func (s *PricingService) surcharges(dailyRate decimal.Decimal, period domain.RentalPeriod) decimal.Decimal {
	total := decimal.Zero
	for d := period.StartDate; d.Before(period.EndDate); d = d.AddDate(0, 0, 1) {
		if IsWeekendOrHoliday(d) {
			total = total.Add(dailyRate.Mul(weekendHolidaySurcharge))
		}
	}
	return total
}

// applyDiscount applies the duration tier to the post-insurance price. Tiers
// are mutually exclusive: above 15 days 10% off, 7 to 15 days 5% off.
func applyDiscount(price decimal.Decimal, days int) decimal.Decimal {
	switch {
	case days > 15:
		return price.Sub(price.Mul(discountAbove15Days))
	case days >= 7:
		return price.Sub(price.Mul(discount7To15Days))
	default:
		return price
	}
}
