package handlers

import (
	"net/http"
	"time"

	"github.com/tapestack/tapestack/pkg/errhttp"
	"github.com/tapestack/tapestack/pkg/httpx"
	pkgvalidator "github.com/tapestack/tapestack/pkg/validator"
	appsvcs "github.com/tapestack/tapestack/services/catalog/application/services"
)

// CreateVHSRequest is the request body for POST /vhs.
type CreateVHSRequest struct {
	Title       string  `json:"title"        validate:"required,min=1,max=255" example:"The Terminator"`
	ReleaseDate string  `json:"release_date" validate:"required,datetime=2006-01-02" example:"1984-10-26"`
	Genre       string  `json:"genre"        validate:"required,max=64"        example:"SCIFI"`
	RentalPrice float64 `json:"rental_price" validate:"required,gt=0"          example:"3.30"`
	StockLevel  int32   `json:"stock_level"  validate:"required,gt=0"          example:"5"`
} // @name CreateVHSRequest

// PostVHSHandler handles POST /vhs requests.
type PostVHSHandler struct {
	svc *appsvcs.Services
}

// NewPostVHSHandler returns a PostVHSHandler backed by the given services.
func NewPostVHSHandler(svc *appsvcs.Services) *PostVHSHandler {
	return &PostVHSHandler{svc: svc}
}

// Execute adds a new tape to the catalog.
//
//	@Summary		Create VHS
//	@Description	Adds a tape to the catalog with its rate and stock level
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateVHSRequest	true	"VHS creation request"
//	@Success		201		{object}	VHSResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/vhs [post]
func (h *PostVHSHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateVHSRequest](w, r)
	if !ok {
		return
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "release_date must be a YYYY-MM-DD date")
		return
	}

	vhs, err := h.svc.VHS.Create(r.Context(), appsvcs.CreateParams{
		Title:       req.Title,
		ReleaseDate: releaseDate,
		Genre:       req.Genre,
		RentalPrice: req.RentalPrice,
		StockLevel:  req.StockLevel,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toVHSResponse(vhs))
}
