// Package services contains stateless domain services for the rental bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"
	"math"
	"time"

	rentaldomain "github.com/tapestack/tapestack/services/rental/domain"
)

// LateFeeRate is the per-late-day surcharge as a fraction of the daily rate.
const LateFeeRate = 0.10

// Price computes the total charge for a finished rental.
//
// The base charge covers the planned window, not the actual one: billable
// days are ceil(whole hours between rental and due date / 24), minimum one
// day, so returning early never reduces the base price. Late days are whole
// days between due and return date truncated toward zero; a return 23h59m
// past due counts zero late days. The truncate-vs-ceil asymmetry is
// intentional, long-standing billing behavior.
//
// The total is rounded to two decimals half-up (math.Round; identical to
// half-away-from-zero for the non-negative amounts involved).
//
// Returns ErrNotReturned when returnDate is zero and ErrRateUnavailable when
// ratePerDay is not positive.
func Price(rentalDate, dueDate, returnDate time.Time, ratePerDay float64) (float64, error) {
	if returnDate.IsZero() {
		return 0, fmt.Errorf("%w: price requires a return date", rentaldomain.ErrNotReturned)
	}
	if ratePerDay <= 0 {
		return 0, fmt.Errorf("%w: rate per day %v", rentaldomain.ErrRateUnavailable, ratePerDay)
	}

	plannedHours := dueDate.Sub(rentalDate) / time.Hour
	rentalDays := int64(math.Ceil(float64(plannedHours) / 24.0))
	if rentalDays < 1 {
		rentalDays = 1
	}

	lateFee := 0.0
	if returnDate.After(dueDate) {
		if daysLate := returnDate.Sub(dueDate) / (24 * time.Hour); daysLate > 0 {
			lateFee = float64(daysLate) * ratePerDay * LateFeeRate
		}
	}

	return round2(ratePerDay*float64(rentalDays) + lateFee), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
