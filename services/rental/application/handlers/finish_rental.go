package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/auth"
	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	appsvcs "github.com/tapestack/tapestack/services/rental/application/services"
)

// FinishRentalHandler handles PATCH /rentals/{rentalId}/finish requests.
type FinishRentalHandler struct {
	svc *appsvcs.Services
}

// NewFinishRentalHandler returns a FinishRentalHandler backed by the given services.
func NewFinishRentalHandler(svc *appsvcs.Services) *FinishRentalHandler {
	return &FinishRentalHandler{svc: svc}
}

// Execute records the return of a tape and computes the final price.
//
//	@Summary		Finish rental
//	@Description	Marks the rental as returned and bills the authenticated borrower
//	@Tags			rentals
//	@Produce		json
//	@Param			rentalId	path		string	true	"Rental ID"
//	@Success		200			{object}	RentalResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/rentals/{rentalId}/finish [patch]
func (h *FinishRentalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	rentalID, err := uuid.Parse(chi.URLParam(r, "rentalId"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "rentalId must be a valid UUID")
		return
	}

	rental, err := h.svc.Rental.Finish(r.Context(), rentalID, userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toRentalResponse(rental))
}
