package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/services/catalog/domain/models"
)

// VHSResponse is the wire shape of a catalog entry.
type VHSResponse struct {
	ID          uuid.UUID `json:"id"           example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string    `json:"title"        example:"The Terminator"`
	ReleaseDate time.Time `json:"release_date" example:"1984-10-26T00:00:00Z"`
	Genre       string    `json:"genre"        example:"SCIFI"`
	RentalPrice float64   `json:"rental_price" example:"3.30"`
	StockLevel  int32     `json:"stock_level"  example:"5"`
	Status      string    `json:"status"       example:"AVAILABLE"`
	CreatedAt   time.Time `json:"created_at"   example:"2024-01-15T10:30:00Z"`
} // @name VHSResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"vhs not found"`
} // @name VHSErrorResponse

func toVHSResponse(v *models.VHS) VHSResponse {
	return VHSResponse{
		ID:          v.ID,
		Title:       v.Title,
		ReleaseDate: v.ReleaseDate,
		Genre:       v.Genre,
		RentalPrice: v.RentalPrice,
		StockLevel:  v.StockLevel,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
	}
}
