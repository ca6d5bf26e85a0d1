package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	appsvcs "github.com/tapestack/tapestack/services/rental/application/services"
)

// GetRentalHandler handles GET /rentals/{rentalId} requests.
type GetRentalHandler struct {
	svc *appsvcs.Services
}

// NewGetRentalHandler returns a GetRentalHandler backed by the given services.
func NewGetRentalHandler(svc *appsvcs.Services) *GetRentalHandler {
	return &GetRentalHandler{svc: svc}
}

// Execute returns a single rental by ID.
//
//	@Summary		Get rental
//	@Description	Returns a consistent snapshot of a rental
//	@Tags			rentals
//	@Produce		json
//	@Param			rentalId	path		string	true	"Rental ID"
//	@Success		200			{object}	RentalResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/rentals/{rentalId} [get]
func (h *GetRentalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	rentalID, err := uuid.Parse(chi.URLParam(r, "rentalId"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "rentalId must be a valid UUID")
		return
	}

	rental, err := h.svc.Rental.GetByID(r.Context(), rentalID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRentalResponse(rental))
}
