package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/clock"
	"github.com/tapestack/tapestack/pkg/logger"
	rentaldomain "github.com/tapestack/tapestack/services/rental/domain"
	"github.com/tapestack/tapestack/services/rental/domain/models"
	"github.com/tapestack/tapestack/services/rental/domain/repositories"
	domainsvcs "github.com/tapestack/tapestack/services/rental/domain/services"
)

// TapeInfo is the catalog projection the rental core reads: the per-day rate
// and how many copies may be out at once. The rental context never owns a
// reference to the full catalog aggregate.
type TapeInfo struct {
	RentalPrice float64
	StockLevel  int32
}

// Catalog resolves tape rate and stock level by ID. Implementations surface
// catalog.ErrVHSNotFound when the tape does not exist.
type Catalog interface {
	TapeInfo(ctx context.Context, vhsID uuid.UUID) (TapeInfo, error)
}

// RentalService orchestrates the rental lifecycle: creation under the
// store's serializable availability scope and completion under optimistic
// concurrency on the revision counter. It holds no state between calls;
// everything lives in the store.
type RentalService struct {
	repo    repositories.RentalRepository
	catalog Catalog
	clock   clock.Clock
	log     logger.Logger
}

// NewRentalService returns a RentalService wired with the given repository,
// catalog lookup and clock.
func NewRentalService(repo repositories.RentalRepository, catalog Catalog, clk clock.Clock, log logger.Logger) *RentalService {
	return &RentalService{repo: repo, catalog: catalog, clock: clk, log: log}
}

// Create starts a rental for the given tape and borrower. The due date must
// be strictly in the future; availability against the tape's stock level is
// enforced atomically by the repository. Returns ErrDueDateNotFuture,
// catalog.ErrVHSNotFound, ErrOutOfStock or ErrConcurrentUpdate.
func (s *RentalService) Create(ctx context.Context, userID, vhsID uuid.UUID, dueDate time.Time) (*models.Rental, error) {
	now := s.clock.Now()
	s.log.InfoContext(ctx, "create rental requested", "vhs_id", vhsID, "user_id", userID)

	if !dueDate.After(now) {
		s.log.WarnContext(ctx, "invalid due date for rental creation", "vhs_id", vhsID, "due_date", dueDate)
		return nil, fmt.Errorf("%w: got %s", rentaldomain.ErrDueDateNotFuture, dueDate.Format(time.RFC3339))
	}

	tape, err := s.catalog.TapeInfo(ctx, vhsID)
	if err != nil {
		return nil, fmt.Errorf("lookup vhs: %w", err)
	}

	rental, err := models.NewRental(vhsID, userID, dueDate, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rentaldomain.ErrDueDateNotFuture, err)
	}

	if err := s.repo.Create(ctx, rental, tape.StockLevel); err != nil {
		if rentaldomain.IsConflict(err) {
			s.log.WarnContext(ctx, "vhs unavailable for rental", "vhs_id", vhsID, "stock_level", tape.StockLevel)
		}
		return nil, fmt.Errorf("create rental: %w", err)
	}

	s.log.InfoContext(ctx, "rental created",
		"rental_id", rental.ID, "vhs_id", vhsID, "user_id", userID, "due_date", rental.DueDate)
	return rental, nil
}

// Finish completes a rental: records the return at now, prices the rental
// from the planned window and the tape's rate, and persists the transition
// conditioned on the revision observed at load time. A concurrent writer
// surfaces as ErrConcurrentUpdate; the service never retries, that policy
// belongs to the caller. Finishing twice is ErrAlreadyReturned, and only the
// borrower may finish (ErrNotBorrower).
func (s *RentalService) Finish(ctx context.Context, rentalID, userID uuid.UUID) (*models.Rental, error) {
	now := s.clock.Now()
	s.log.InfoContext(ctx, "finish rental requested", "rental_id", rentalID, "user_id", userID)

	rental, err := s.repo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("load rental: %w", err)
	}

	if !rental.Outstanding() {
		s.log.WarnContext(ctx, "attempt to finish already finished rental", "rental_id", rentalID)
		return nil, fmt.Errorf("%w: rental %s", rentaldomain.ErrAlreadyReturned, rentalID)
	}

	if rental.UserID != userID {
		s.log.WarnContext(ctx, "unauthorized finish attempt", "rental_id", rentalID, "requested_by", userID)
		return nil, fmt.Errorf("%w: rental %s", rentaldomain.ErrNotBorrower, rentalID)
	}

	tape, err := s.catalog.TapeInfo(ctx, rental.VHSID)
	if err != nil {
		return nil, fmt.Errorf("lookup vhs: %w", err)
	}

	price, err := domainsvcs.Price(rental.RentalDate, rental.DueDate, now, tape.RentalPrice)
	if err != nil {
		return nil, fmt.Errorf("price rental: %w", err)
	}

	if err := rental.Finish(now, price); err != nil {
		return nil, fmt.Errorf("%w: %w", rentaldomain.ErrAlreadyReturned, err)
	}

	if err := s.repo.FinishWithRevisionCheck(ctx, rental, rental.Revision); err != nil {
		return nil, fmt.Errorf("persist finished rental: %w", err)
	}

	s.log.InfoContext(ctx, "rental finished",
		"rental_id", rental.ID, "user_id", userID, "price", price)
	return rental, nil
}

// GetByID returns a consistent snapshot of a rental.
func (s *RentalService) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	rental, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get rental: %w", err)
	}
	return rental, nil
}

// List returns a paginated slice of rentals plus total count.
func (s *RentalService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Rental, int, error) {
	rentals, total, err := s.repo.FindAll(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list rentals: %w", err)
	}
	return rentals, total, nil
}

// Available reports whether a copy of the tape is free right now. Advisory:
// the create path re-evaluates the count inside its own serializable scope,
// so this read can never be trusted to reserve anything.
func (s *RentalService) Available(ctx context.Context, vhsID uuid.UUID) (bool, error) {
	tape, err := s.catalog.TapeInfo(ctx, vhsID)
	if err != nil {
		return false, fmt.Errorf("lookup vhs: %w", err)
	}
	outstanding, err := s.repo.CountOutstandingByVHS(ctx, vhsID)
	if err != nil {
		return false, fmt.Errorf("count outstanding: %w", err)
	}
	return outstanding < int64(tape.StockLevel), nil
}
