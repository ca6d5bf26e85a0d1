package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rental is the core aggregate for this bounded context. A rental is created
// OUTSTANDING (no return date, no price) and transitions exactly once to
// RETURNED, at which point ReturnDate and Price are set together.
//
// Revision backs optimistic concurrency: the store increments it on every
// successful write and rejects writes targeting a stale revision. Inserts
// start at revision 1.
type Rental struct {
	ID         uuid.UUID
	Revision   int64
	VHSID      uuid.UUID
	UserID     uuid.UUID
	RentalDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	Price      *float64
}

// NewRental constructs an outstanding Rental with a generated ID. The due
// date must be strictly after now; the rental date is set to now.
func NewRental(vhsID, userID uuid.UUID, dueDate, now time.Time) (*Rental, error) {
	if !dueDate.After(now) {
		return nil, fmt.Errorf("due date %s is not after rental date %s",
			dueDate.Format(time.RFC3339), now.Format(time.RFC3339))
	}
	return &Rental{
		ID:         uuid.New(),
		Revision:   1,
		VHSID:      vhsID,
		UserID:     userID,
		RentalDate: now.UTC(),
		DueDate:    dueDate.UTC(),
	}, nil
}

// Outstanding reports whether the rental has not been returned.
func (r *Rental) Outstanding() bool {
	return r.ReturnDate == nil
}

// Finish records the return at now with the given price. Both fields
// transition together; finishing an already-returned rental is an error.
func (r *Rental) Finish(now time.Time, price float64) error {
	if r.ReturnDate != nil {
		return fmt.Errorf("rental %s already returned at %s", r.ID, r.ReturnDate.Format(time.RFC3339))
	}
	ts := now.UTC()
	r.ReturnDate = &ts
	r.Price = &price
	return nil
}
