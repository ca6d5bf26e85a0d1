package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/services/catalog/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// VHSRepository is the persistence interface for the VHS aggregate.
type VHSRepository interface {
	Save(ctx context.Context, vhs *models.VHS) error

	// GetByID returns the tape or domain.ErrVHSNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.VHS, error)

	// FindAll retrieves a paginated list of tapes and the total count
	// (ignoring pagination).
	FindAll(ctx context.Context, opts QueryOpts) ([]*models.VHS, int, error)
}
