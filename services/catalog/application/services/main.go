package services

import (
	"github.com/tapestack/tapestack/pkg/app"
	"github.com/tapestack/tapestack/pkg/cache"
	"github.com/tapestack/tapestack/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	VHS *VHSService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewVHSRepository(a.Db, a.EventBus)
	vhsCache := cache.NewVHSCache(a.Redis)
	return &Services{
		VHS: NewVHSService(repo, vhsCache),
	}
}
