package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/services/rental/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// RentalRepository is the persistence interface for the Rental aggregate.
// The domain layer owns this interface; infrastructure implements it.
type RentalRepository interface {
	// Create persists a new outstanding rental, but only while the count of
	// outstanding rentals for the tape is strictly below stockLevel. The
	// availability check and the insert execute in one serializable scope so
	// concurrent creations for the last copy cannot both succeed.
	// Returns domain.ErrOutOfStock when no copy is free and
	// domain.ErrConcurrentUpdate when the scope is aborted by a rival writer.
	Create(ctx context.Context, rental *models.Rental, stockLevel int32) error

	// GetByID returns a consistent snapshot of the rental including its
	// current revision. Returns domain.ErrRentalNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)

	// FindAll retrieves a paginated list of rentals and the total count
	// (ignoring pagination).
	FindAll(ctx context.Context, opts QueryOpts) ([]*models.Rental, int, error)

	// FinishWithRevisionCheck persists the return date and price of rental,
	// conditioned on expectedRevision still being current. On success the
	// stored revision is incremented and rental.Revision is updated to match.
	// Returns domain.ErrConcurrentUpdate if the revision is stale and
	// domain.ErrRentalNotFound if the row vanished.
	FinishWithRevisionCheck(ctx context.Context, rental *models.Rental, expectedRevision int64) error

	// CountOutstandingByVHS counts rentals for the tape whose return date is
	// absent. Read-only; the create path re-evaluates this inside its own
	// transaction rather than trusting a prior call.
	CountOutstandingByVHS(ctx context.Context, vhsID uuid.UUID) (int64, error)

	// FindOverdue lists outstanding rentals whose due date is before now.
	FindOverdue(ctx context.Context, now time.Time) ([]*models.Rental, error)
}
