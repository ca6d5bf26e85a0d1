package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/services/rental/domain/models"
)

// RentalResponse is the wire shape of a rental.
type RentalResponse struct {
	ID         uuid.UUID  `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	VHSID      uuid.UUID  `json:"vhs_id"      example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID     uuid.UUID  `json:"user_id"     example:"6f1d2e3c-4b5a-4cde-9f01-23456789abcd"`
	RentalDate time.Time  `json:"rental_date" example:"2025-01-01T10:00:00Z"`
	DueDate    time.Time  `json:"due_date"    example:"2025-01-04T10:00:00Z"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Price      *float64   `json:"price,omitempty" example:"9.90"`
} // @name RentalResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"rental not found"`
} // @name ErrorResponse

func toRentalResponse(r *models.Rental) RentalResponse {
	return RentalResponse{
		ID:         r.ID,
		VHSID:      r.VHSID,
		UserID:     r.UserID,
		RentalDate: r.RentalDate,
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
		Price:      r.Price,
	}
}
