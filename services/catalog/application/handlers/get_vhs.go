package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	appsvcs "github.com/tapestack/tapestack/services/catalog/application/services"
)

// GetVHSHandler handles GET /vhs/{vhsId} requests.
type GetVHSHandler struct {
	svc *appsvcs.Services
}

// NewGetVHSHandler returns a GetVHSHandler backed by the given services.
func NewGetVHSHandler(svc *appsvcs.Services) *GetVHSHandler {
	return &GetVHSHandler{svc: svc}
}

// Execute returns a single catalog entry by ID.
//
//	@Summary		Get VHS
//	@Description	Returns a catalog entry, served from cache when warm
//	@Tags			catalog
//	@Produce		json
//	@Param			vhsId	path		string	true	"VHS ID"
//	@Success		200		{object}	VHSResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/vhs/{vhsId} [get]
func (h *GetVHSHandler) Execute(w http.ResponseWriter, r *http.Request) {
	vhsID, err := uuid.Parse(chi.URLParam(r, "vhsId"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "vhsId must be a valid UUID")
		return
	}

	vhs, err := h.svc.VHS.GetByID(r.Context(), vhsID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toVHSResponse(vhs))
}
