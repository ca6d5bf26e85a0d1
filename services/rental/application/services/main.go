package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/app"
	"github.com/tapestack/tapestack/pkg/clock"
	catalogsvcs "github.com/tapestack/tapestack/services/catalog/application/services"
	"github.com/tapestack/tapestack/services/rental/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Rental *RentalService
}

// New wires all rental application services with infrastructure from the
// Application container. The catalog context is reached only through the
// narrow Catalog interface.
func New(a *app.Application) *Services {
	repo := postgres.NewRentalRepository(a.Db, a.EventBus)
	catalog := &catalogAdapter{svcs: catalogsvcs.New(a)}
	return &Services{
		Rental: NewRentalService(repo, catalog, clock.System(), a.Logger),
	}
}

// catalogAdapter projects the catalog service onto the two fields the
// rental core reads.
type catalogAdapter struct {
	svcs *catalogsvcs.Services
}

func (c *catalogAdapter) TapeInfo(ctx context.Context, vhsID uuid.UUID) (TapeInfo, error) {
	vhs, err := c.svcs.VHS.GetByID(ctx, vhsID)
	if err != nil {
		return TapeInfo{}, err
	}
	return TapeInfo{RentalPrice: vhs.RentalPrice, StockLevel: vhs.StockLevel}, nil
}
