package domain

import "errors"

// Sentinel errors for the rental domain. Use errors.Is() to check these;
// pkg/errhttp maps them to HTTP status codes.
var (
	// ErrRentalNotFound indicates the requested rental does not exist.
	ErrRentalNotFound = errors.New("rental not found")

	// ErrDueDateNotFuture indicates a create request whose due date is not
	// strictly after the rental instant.
	ErrDueDateNotFuture = errors.New("due date must be in the future")

	// ErrOutOfStock indicates every stocked copy of the tape is already out.
	ErrOutOfStock = errors.New("vhs not currently available for rental")

	// ErrAlreadyReturned indicates a finish attempt on a rental whose return
	// date is already set. Finishing is not idempotent.
	ErrAlreadyReturned = errors.New("rental has already been finished")

	// ErrNotBorrower indicates the requester is not the rental's borrower.
	ErrNotBorrower = errors.New("not authorized to finish this rental")

	// ErrConcurrentUpdate indicates a write lost a race: either the store
	// rejected a stale revision or Postgres aborted the serializable scope.
	// Callers may retry at the transport layer; the service never does.
	ErrConcurrentUpdate = errors.New("rental was modified concurrently")

	// ErrNotReturned indicates pricing was invoked before the return date was set.
	ErrNotReturned = errors.New("rental has not been returned yet")

	// ErrRateUnavailable indicates the tape carries no usable per-day rate.
	ErrRateUnavailable = errors.New("rental rate is not available")
)

// IsConflict reports whether err belongs to the conflict class: inventory
// exhausted, double finish, or an optimistic write rejected by the store.
func IsConflict(err error) bool {
	return errors.Is(err, ErrOutOfStock) ||
		errors.Is(err, ErrAlreadyReturned) ||
		errors.Is(err, ErrConcurrentUpdate)
}
