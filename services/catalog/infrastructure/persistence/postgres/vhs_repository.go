package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tapestack/tapestack/pkg/database"
	"github.com/tapestack/tapestack/pkg/events"
	catalogdomain "github.com/tapestack/tapestack/services/catalog/domain"
	domainevents "github.com/tapestack/tapestack/services/catalog/domain/events"
	"github.com/tapestack/tapestack/services/catalog/domain/models"
	"github.com/tapestack/tapestack/services/catalog/domain/repositories"
	"github.com/tapestack/tapestack/services/catalog/infrastructure/persistence/postgres/db"
)

// VHSRepository implements repositories.VHSRepository against PostgreSQL.
type VHSRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewVHSRepository returns a VHSRepository backed by the given connection
// pool and event bus. The bus is used to publish VHSCreatedEvents after a
// successful save.
func NewVHSRepository(database *database.Database, bus *events.EventBus) *VHSRepository {
	return &VHSRepository{db: database, bus: bus}
}

// Save persists a new VHS and publishes a VHSCreatedEvent within the same
// transaction. Returns ErrVHSAlreadyExists on unique constraint violations.
func (r *VHSRepository) Save(ctx context.Context, vhs *models.VHS) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertVhs(ctx, db.InsertVhsParams{
			ID:          vhs.ID,
			Title:       vhs.Title,
			ReleaseDate: vhs.ReleaseDate,
			Genre:       vhs.Genre,
			RentalPrice: vhs.RentalPrice,
			StockLevel:  vhs.StockLevel,
			Status:      string(vhs.Status),
			CreatedAt:   vhs.CreatedAt,
		}); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return catalogdomain.ErrVHSAlreadyExists
			}
			return fmt.Errorf("insert vhs: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, vhs); err != nil {
				return fmt.Errorf("publish vhs created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a VHS by ID. Returns ErrVHSNotFound if not found.
func (r *VHSRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.VHS, error) {
	q := db.New(r.db.DB())
	row, err := q.GetVhsByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrVHSNotFound
		}
		return nil, fmt.Errorf("query vhs: %w", err)
	}
	return rowToVHS(row), nil
}

// FindAll retrieves a paginated list of tapes and total count.
func (r *VHSRepository) FindAll(ctx context.Context, opts repositories.QueryOpts) ([]*models.VHS, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.FindVhs(ctx, db.FindVhsParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query vhs list: %w", err)
	}

	total, err := q.CountVhs(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count vhs: %w", err)
	}

	tapes := make([]*models.VHS, len(rows))
	for i, row := range rows {
		tapes[i] = rowToVHS(row)
	}
	return tapes, int(total), nil
}

func (r *VHSRepository) publishCreated(tx *sql.Tx, vhs *models.VHS) error {
	event := domainevents.VHSCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		VHSID:       vhs.ID,
		Title:       vhs.Title,
		ReleaseDate: vhs.ReleaseDate,
		Genre:       vhs.Genre,
		RentalPrice: vhs.RentalPrice,
		StockLevel:  vhs.StockLevel,
		Status:      string(vhs.Status),
		OccurredAt:  vhs.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicVHSCreated, msg)
}

// rowToVHS maps a db.CatalogVhs to a domain models.VHS.
func rowToVHS(row db.CatalogVhs) *models.VHS {
	return &models.VHS{
		ID:          row.ID,
		Title:       row.Title,
		ReleaseDate: row.ReleaseDate,
		Genre:       row.Genre,
		RentalPrice: row.RentalPrice,
		StockLevel:  row.StockLevel,
		Status:      models.Status(row.Status),
		CreatedAt:   row.CreatedAt,
	}
}
