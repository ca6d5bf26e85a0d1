package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tapestack/tapestack/pkg/database"
	"github.com/tapestack/tapestack/pkg/events"
	rentaldomain "github.com/tapestack/tapestack/services/rental/domain"
	domainevents "github.com/tapestack/tapestack/services/rental/domain/events"
	"github.com/tapestack/tapestack/services/rental/domain/models"
	"github.com/tapestack/tapestack/services/rental/domain/repositories"
	"github.com/tapestack/tapestack/services/rental/infrastructure/persistence/postgres/db"
)

// Postgres error codes translated into domain conflicts.
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
)

// RentalRepository implements repositories.RentalRepository against PostgreSQL.
// Two concurrency disciplines back the two hazards of the rental lifecycle:
// creation runs in a SERIALIZABLE transaction so the availability count and
// the insert form one atomic scope (write-skew cannot oversell the stock),
// and finishing is a compare-and-swap on the revision column so a stale
// writer is rejected instead of silently overwriting the return.
type RentalRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewRentalRepository returns a RentalRepository backed by the given
// connection pool and event bus. The bus publishes lifecycle events within
// the same transaction as the write (outbox pattern).
func NewRentalRepository(database *database.Database, bus *events.EventBus) *RentalRepository {
	return &RentalRepository{db: database, bus: bus}
}

// Create persists a new outstanding rental after re-validating availability
// inside the same SERIALIZABLE transaction. Returns ErrOutOfStock when the
// outstanding count has reached stockLevel and ErrConcurrentUpdate when
// Postgres aborts the scope because a rival creation committed first.
func (r *RentalRepository) Create(ctx context.Context, rental *models.Rental, stockLevel int32) error {
	err := r.db.WithSerializableTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		outstanding, err := q.CountOutstandingByVhsID(ctx, rental.VHSID)
		if err != nil {
			return fmt.Errorf("count outstanding rentals: %w", err)
		}
		if outstanding >= int64(stockLevel) {
			return rentaldomain.ErrOutOfStock
		}

		if err := q.InsertRental(ctx, db.InsertRentalParams{
			ID:         rental.ID,
			Revision:   rental.Revision,
			VhsID:      rental.VHSID,
			UserID:     rental.UserID,
			RentalDate: rental.RentalDate,
			DueDate:    rental.DueDate,
			ReturnDate: nullTime(rental.ReturnDate),
			Price:      nullFloat(rental.Price),
		}); err != nil {
			return fmt.Errorf("insert rental: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, rental); err != nil {
				return fmt.Errorf("publish rental created: %w", err)
			}
		}
		return nil
	})
	return translateConflict(err)
}

// GetByID retrieves a rental snapshot including its current revision.
// Returns ErrRentalNotFound if no row matches.
func (r *RentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	q := db.New(r.db.DB())
	row, err := q.GetRentalByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rentaldomain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("query rental: %w", err)
	}
	return rowToRental(row), nil
}

// FindAll retrieves a paginated list of rentals and the total count.
func (r *RentalRepository) FindAll(ctx context.Context, opts repositories.QueryOpts) ([]*models.Rental, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindRentals(ctx, db.FindRentalsParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query rentals: %w", err)
	}

	total, err := q.CountRentals(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count rentals: %w", err)
	}

	rentals := make([]*models.Rental, len(rows))
	for i, row := range rows {
		rentals[i] = rowToRental(row)
	}
	return rentals, int(total), nil
}

// FinishWithRevisionCheck writes the return date and price conditioned on
// expectedRevision still being the stored revision. Zero rows affected means
// the write lost: either a rival writer advanced the revision
// (ErrConcurrentUpdate) or the row no longer exists (ErrRentalNotFound).
func (r *RentalRepository) FinishWithRevisionCheck(ctx context.Context, rental *models.Rental, expectedRevision int64) error {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		affected, err := q.FinishRental(ctx, db.FinishRentalParams{
			ReturnDate: nullTime(rental.ReturnDate),
			Price:      nullFloat(rental.Price),
			ID:         rental.ID,
			Revision:   expectedRevision,
		})
		if err != nil {
			return fmt.Errorf("finish rental: %w", err)
		}
		if affected == 0 {
			if _, err := q.GetRentalByID(ctx, rental.ID); errors.Is(err, sql.ErrNoRows) {
				return rentaldomain.ErrRentalNotFound
			}
			return rentaldomain.ErrConcurrentUpdate
		}

		if r.bus != nil {
			if err := r.publishFinished(tx, rental); err != nil {
				return fmt.Errorf("publish rental finished: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return translateConflict(err)
	}
	rental.Revision = expectedRevision + 1
	return nil
}

// CountOutstandingByVHS counts rentals for the tape with no return date.
func (r *RentalRepository) CountOutstandingByVHS(ctx context.Context, vhsID uuid.UUID) (int64, error) {
	q := db.New(r.db.DB())
	count, err := q.CountOutstandingByVhsID(ctx, vhsID)
	if err != nil {
		return 0, fmt.Errorf("count outstanding rentals: %w", err)
	}
	return count, nil
}

// FindOverdue lists outstanding rentals whose due date is before now.
func (r *RentalRepository) FindOverdue(ctx context.Context, now time.Time) ([]*models.Rental, error) {
	q := db.New(r.db.DB())
	rows, err := q.FindOverdueRentals(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("query overdue rentals: %w", err)
	}
	rentals := make([]*models.Rental, len(rows))
	for i, row := range rows {
		rentals[i] = rowToRental(row)
	}
	return rentals, nil
}

func (r *RentalRepository) publishCreated(tx *sql.Tx, rental *models.Rental) error {
	event := domainevents.RentalCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		RentalID:   rental.ID,
		VHSID:      rental.VHSID,
		UserID:     rental.UserID,
		DueDate:    rental.DueDate,
		OccurredAt: rental.RentalDate,
	}
	return r.publish(tx, domainevents.TopicRentalCreated, event.EventID, event)
}

func (r *RentalRepository) publishFinished(tx *sql.Tx, rental *models.Rental) error {
	event := domainevents.RentalFinishedEvent{
		EventID:    uuid.New(),
		Version:    1,
		RentalID:   rental.ID,
		VHSID:      rental.VHSID,
		UserID:     rental.UserID,
		OccurredAt: time.Now().UTC(),
	}
	if rental.Price != nil {
		event.Price = *rental.Price
	}
	return r.publish(tx, domainevents.TopicRentalFinished, event.EventID, event)
}

func (r *RentalRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// translateConflict maps serialization aborts onto the domain conflict error
// so callers see the same taxonomy regardless of which writer lost the race.
func translateConflict(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgUniqueViolation:
			return fmt.Errorf("%w: %s", rentaldomain.ErrConcurrentUpdate, pgErr.Code)
		}
	}
	return err
}

// rowToRental maps a db.RentalRental to a domain models.Rental.
func rowToRental(row db.RentalRental) *models.Rental {
	rental := &models.Rental{
		ID:         row.ID,
		Revision:   row.Revision,
		VHSID:      row.VhsID,
		UserID:     row.UserID,
		RentalDate: row.RentalDate,
		DueDate:    row.DueDate,
	}
	if row.ReturnDate.Valid {
		t := row.ReturnDate.Time
		rental.ReturnDate = &t
	}
	if row.Price.Valid {
		p := row.Price.Float64
		rental.Price = &p
	}
	return rental
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
