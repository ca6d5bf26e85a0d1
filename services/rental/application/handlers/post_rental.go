package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/auth"
	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	pkgvalidator "github.com/tapestack/tapestack/pkg/validator"
	appsvcs "github.com/tapestack/tapestack/services/rental/application/services"
)

// CreateRentalRequest is the request body for POST /rentals.
// The due date must be an RFC 3339 UTC instant, matching the format the
// legacy clients already send.
type CreateRentalRequest struct {
	VHSID   string `json:"vhs_id"   validate:"required,uuid4"             example:"550e8400-e29b-41d4-a716-446655440000"`
	DueDate string `json:"due_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-01-04T10:00:00Z"`
} // @name CreateRentalRequest

// PostRentalHandler handles POST /rentals requests.
type PostRentalHandler struct {
	svc *appsvcs.Services
}

// NewPostRentalHandler returns a PostRentalHandler backed by the given services.
func NewPostRentalHandler(svc *appsvcs.Services) *PostRentalHandler {
	return &PostRentalHandler{svc: svc}
}

// Execute creates a new rental for the authenticated borrower.
//
//	@Summary		Create rental
//	@Description	Rents a tape to the authenticated user until the given due date
//	@Tags			rentals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateRentalRequest	true	"Rental creation request"
//	@Success		201		{object}	RentalResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/rentals [post]
func (h *PostRentalHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRentalRequest](w, r)
	if !ok {
		return
	}

	vhsID, err := uuid.Parse(req.VHSID)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "vhs_id must be a valid UUID")
		return
	}
	dueDate, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "due_date must be an RFC 3339 instant")
		return
	}

	rental, err := h.svc.Rental.Create(r.Context(), userID, vhsID, dueDate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toRentalResponse(rental))
}
