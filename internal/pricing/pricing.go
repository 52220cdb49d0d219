// Package pricing computes booking totals from an equipment rate sheet.
// It is pure: no storage, no clock, no clamping of inputs.
package pricing

import "time"

// DeliveryFee is a single flat fee per booking when the delivery option is
// chosen. It is never multiplied by quantity.
const DeliveryFee int64 = 500

// Quote is the cost breakdown for one booking.
type Quote struct {
	Days        int   `json:"days"`
	BasePrice   int64 `json:"base_price"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

// RentalDays returns the inclusive day count of a date range: a rental that
// starts and ends on the same day is one day, never zero. Callers guarantee
// end is not before start.
func RentalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Compute prices a date range against a rate sheet. Whole weeks are billed
// at the weekly rate and the remainder at the daily rate, greedily; there is
// no search for a cheaper decomposition. Quantity multiplies the base price
// only. Callers must clamp quantity to >= 1 and ensure end >= start; a
// zero-value start or end yields a zero quote.
func Compute(start, end time.Time, dailyRate, weeklyRate int64, quantity int32, delivery bool) Quote {
	if start.IsZero() || end.IsZero() {
		return Quote{}
	}

	days := RentalDays(start, end)

	var base int64
	if days >= 7 {
		base = int64(days/7)*weeklyRate + int64(days%7)*dailyRate
	} else {
		base = int64(days) * dailyRate
	}

	var fee int64
	if delivery {
		fee = DeliveryFee
	}

	return Quote{
		Days:        days,
		BasePrice:   base,
		DeliveryFee: fee,
		Total:       base*int64(quantity) + fee,
	}
}
