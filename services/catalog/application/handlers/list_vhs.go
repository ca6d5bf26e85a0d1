package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	appsvcs "github.com/tapestack/tapestack/services/catalog/application/services"
	"github.com/tapestack/tapestack/services/catalog/domain/repositories"
)

var (
	errInvalidLimit  = errors.New("limit must be an integer between 1 and 100")
	errInvalidOffset = errors.New("offset must be a non-negative integer")
)

// ListVHSResponse is the paginated wire shape for catalog listings.
type ListVHSResponse struct {
	VHS    []VHSResponse `json:"vhs"`
	Total  int           `json:"total"  example:"42"`
	Limit  int           `json:"limit"  example:"20"`
	Offset int           `json:"offset" example:"0"`
} // @name ListVHSResponse

// ListVHSHandler handles GET /vhs requests.
type ListVHSHandler struct {
	svc *appsvcs.Services
}

// NewListVHSHandler returns a ListVHSHandler backed by the given services.
func NewListVHSHandler(svc *appsvcs.Services) *ListVHSHandler {
	return &ListVHSHandler{svc: svc}
}

// Execute lists catalog entries ordered by title.
//
//	@Summary		List VHS
//	@Description	Returns a page of catalog entries ordered by title
//	@Tags			catalog
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	ListVHSResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/vhs [get]
func (h *ListVHSHandler) Execute(w http.ResponseWriter, r *http.Request) {
	opts := repositories.QueryOpts{Limit: 20, Offset: 0}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			httpx.JSONError(w, http.StatusBadRequest, errInvalidLimit.Error())
			return
		}
		opts.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			httpx.JSONError(w, http.StatusBadRequest, errInvalidOffset.Error())
			return
		}
		opts.Offset = offset
	}

	tapes, total, err := h.svc.VHS.List(r.Context(), opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListVHSResponse{
		VHS:    make([]VHSResponse, 0, len(tapes)),
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, vhs := range tapes {
		resp.VHS = append(resp.VHS, toVHSResponse(vhs))
	}

	httpx.JSON(w, http.StatusOK, resp)
}
