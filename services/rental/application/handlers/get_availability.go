package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	appsvcs "github.com/tapestack/tapestack/services/rental/application/services"
)

// AvailabilityResponse reports whether a copy of a tape is free right now.
// The answer is advisory; creation re-checks availability atomically.
type AvailabilityResponse struct {
	VHSID     uuid.UUID `json:"vhs_id"    example:"550e8400-e29b-41d4-a716-446655440000"`
	Available bool      `json:"available" example:"true"`
} // @name AvailabilityResponse

// GetAvailabilityHandler handles GET /rentals/vhs/{vhsId}/availability requests.
type GetAvailabilityHandler struct {
	svc *appsvcs.Services
}

// NewGetAvailabilityHandler returns a GetAvailabilityHandler backed by the given services.
func NewGetAvailabilityHandler(svc *appsvcs.Services) *GetAvailabilityHandler {
	return &GetAvailabilityHandler{svc: svc}
}

// Execute reports current availability for a tape.
//
//	@Summary		Check availability
//	@Description	Reports whether a copy of the tape can be rented right now
//	@Tags			rentals
//	@Produce		json
//	@Param			vhsId	path		string	true	"VHS ID"
//	@Success		200		{object}	AvailabilityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/rentals/vhs/{vhsId}/availability [get]
func (h *GetAvailabilityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	vhsID, err := uuid.Parse(chi.URLParam(r, "vhsId"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "vhsId must be a valid UUID")
		return
	}

	available, err := h.svc.Rental.Available(r.Context(), vhsID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AvailabilityResponse{VHSID: vhsID, Available: available})
}
