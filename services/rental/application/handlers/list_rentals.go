package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	appsvcs "github.com/tapestack/tapestack/services/rental/application/services"
	"github.com/tapestack/tapestack/services/rental/domain/repositories"
)

var (
	errInvalidLimit  = errors.New("limit must be an integer between 1 and 100")
	errInvalidOffset = errors.New("offset must be a non-negative integer")
)

// ListRentalsResponse is the paginated wire shape for rental listings.
type ListRentalsResponse struct {
	Rentals []RentalResponse `json:"rentals"`
	Total   int              `json:"total"  example:"42"`
	Limit   int              `json:"limit"  example:"20"`
	Offset  int              `json:"offset" example:"0"`
} // @name ListRentalsResponse

// ListRentalsHandler handles GET /rentals requests.
type ListRentalsHandler struct {
	svc *appsvcs.Services
}

// NewListRentalsHandler returns a ListRentalsHandler backed by the given services.
func NewListRentalsHandler(svc *appsvcs.Services) *ListRentalsHandler {
	return &ListRentalsHandler{svc: svc}
}

// Execute lists rentals, newest first.
//
//	@Summary		List rentals
//	@Description	Returns a page of rentals ordered by rental date descending
//	@Tags			rentals
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ListRentalsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/rentals [get]
func (h *ListRentalsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts, err := pageOpts(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	rentals, total, err := h.svc.Rental.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListRentalsResponse{
		Rentals: make([]RentalResponse, 0, len(rentals)),
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	}
	for _, rental := range rentals {
		resp.Rentals = append(resp.Rentals, toRentalResponse(rental))
	}

	httpx.JSON(w, http.StatusOK, resp)
}

// pageOpts parses limit/offset query parameters with the shared defaults.
func pageOpts(r *http.Request) (repositories.QueryOpts, error) {
	opts := repositories.QueryOpts{Limit: 20, Offset: 0}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			return opts, errInvalidLimit
		}
		opts.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return opts, errInvalidOffset
		}
		opts.Offset = offset
	}
	return opts, nil
}
