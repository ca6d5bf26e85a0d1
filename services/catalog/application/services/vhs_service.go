package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/tapestack/tapestack/pkg/cache"
	catalogdomain "github.com/tapestack/tapestack/services/catalog/domain"
	"github.com/tapestack/tapestack/services/catalog/domain/models"
	"github.com/tapestack/tapestack/services/catalog/domain/repositories"
)

// VHSService orchestrates creation and retrieval of catalog entries.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type VHSService struct {
	repo  repositories.VHSRepository
	cache *pkgcache.VHSCache
}

// NewVHSService returns a VHSService wired with the given repository and cache.
func NewVHSService(repo repositories.VHSRepository, vhsCache *pkgcache.VHSCache) *VHSService {
	return &VHSService{repo: repo, cache: vhsCache}
}

// CreateParams carries the fields needed to add a tape to the catalog.
type CreateParams struct {
	Title       string
	ReleaseDate time.Time
	Genre       string
	RentalPrice float64
	StockLevel  int32
}

// Create validates and persists a VHS. The repository publishes VHSCreatedEvent.
func (s *VHSService) Create(ctx context.Context, p CreateParams) (*models.VHS, error) {
	vhs, err := models.NewVHS(p.Title, p.ReleaseDate, p.Genre, p.RentalPrice, p.StockLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidVHS, err)
	}

	if err := s.repo.Save(ctx, vhs); err != nil {
		return nil, fmt.Errorf("save vhs: %w", err)
	}

	return vhs, nil
}

// GetByID retrieves a VHS using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *VHSService) GetByID(ctx context.Context, id uuid.UUID) (*models.VHS, error) {
	if s.cache != nil {
		// redis.Nil is a miss; any other error also falls through to Postgres.
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.VHS{
				ID:          cached.ID,
				Title:       cached.Title,
				ReleaseDate: cached.ReleaseDate,
				Genre:       cached.Genre,
				RentalPrice: cached.RentalPrice,
				StockLevel:  cached.StockLevel,
				Status:      models.Status(cached.Status),
				CreatedAt:   cached.CreatedAt,
			}, nil
		}
	}

	vhs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vhs: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedVHS{
				ID:          vhs.ID,
				Title:       vhs.Title,
				ReleaseDate: vhs.ReleaseDate,
				Genre:       vhs.Genre,
				RentalPrice: vhs.RentalPrice,
				StockLevel:  vhs.StockLevel,
				Status:      string(vhs.Status),
				CreatedAt:   vhs.CreatedAt,
			})
		}()
	}

	return vhs, nil
}

// List returns a paginated slice of tapes plus total count.
func (s *VHSService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.VHS, int, error) {
	tapes, total, err := s.repo.FindAll(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list vhs: %w", err)
	}
	return tapes, total, nil
}
