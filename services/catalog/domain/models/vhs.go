package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a catalog entry. Retired tapes stay
// listed for historical rentals but are not offered for new ones.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusRetired   Status = "RETIRED"
)

// VHS is the catalog aggregate. The rental context reads only RentalPrice
// and StockLevel through the repository; it never owns a reference to the
// full object.
type VHS struct {
	ID          uuid.UUID
	Title       string
	ReleaseDate time.Time
	Genre       string
	RentalPrice float64
	StockLevel  int32
	Status      Status
	CreatedAt   time.Time
}

const maxTitleLength = 255

// NewVHS constructs a valid VHS aggregate with generated ID and current timestamp.
func NewVHS(title string, releaseDate time.Time, genre string, rentalPrice float64, stockLevel int32) (*VHS, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title must not be empty")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title must not exceed %d characters", maxTitleLength)
	}
	if rentalPrice <= 0 {
		return nil, fmt.Errorf("rental price must be positive, got %v", rentalPrice)
	}
	if stockLevel <= 0 {
		return nil, fmt.Errorf("stock level must be positive, got %d", stockLevel)
	}
	return &VHS{
		ID:          uuid.New(),
		Title:       title,
		ReleaseDate: releaseDate.UTC(),
		Genre:       genre,
		RentalPrice: rentalPrice,
		StockLevel:  stockLevel,
		Status:      StatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
