package utils

import (
	"math"
	"time"

	"sejour-backend/internal/domain"
)

// PriceBreakdown is the full monetary consequence of one booking, computed
// once at creation time from the property's raw price and the system rates.
type PriceBreakdown struct {
	Nights      int32
	BasePrice   int64
	ServiceFee  int64
	TotalAmount int64
	Commission  int64
	HostEarning int64
}

// Day normalizes a timestamp to UTC midnight. All booking dates pass through
// here so range comparisons stay exact.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the chargeable nights for the half-open range
// [checkIn, checkOut): ceil of the duration in days, minimum 1.
func Nights(checkIn, checkOut time.Time) int32 {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int32(math.Ceil(hours / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// RoundPercent applies rate (a percentage) to amount with standard
// round-half-up. The fee must be rounded before it is added to the base
// price so totals reproduce what the UI displays.
func RoundPercent(amount int64, rate float64) int64 {
	return int64(math.Floor(float64(amount)*rate/100 + 0.5))
}

// ComputeBookingPrice prices a stay. The service fee is a guest-side charge
// on top of the base price; the commission comes out of the base price and
// is never taken from the fee, so the host earning is basePrice − commission.
func ComputeBookingPrice(rawPrice int64, checkIn, checkOut time.Time, settings *domain.SystemSettings) PriceBreakdown {
	nights := Nights(checkIn, checkOut)
	basePrice := rawPrice * int64(nights)
	serviceFee := RoundPercent(basePrice, settings.ServiceFeeRate)
	commission := RoundPercent(basePrice, settings.CommissionRate)

	return PriceBreakdown{
		Nights:      nights,
		BasePrice:   basePrice,
		ServiceFee:  serviceFee,
		TotalAmount: basePrice + serviceFee,
		Commission:  commission,
		HostEarning: basePrice - commission,
	}
}
