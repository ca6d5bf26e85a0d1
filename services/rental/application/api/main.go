package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/tapestack/tapestack/pkg/app"
	"github.com/tapestack/tapestack/pkg/auth"
	"github.com/tapestack/tapestack/services/rental/application/handlers"
	appsvcs "github.com/tapestack/tapestack/services/rental/application/services"
)

// RentalRoutes registers rental endpoints on the provided chi router.
// Mutating endpoints require an authenticated session; the borrower identity
// is taken from the session, never from the request body.
func RentalRoutes(r chi.Router, a *app.Application, store sessions.Store) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/rentals", func(r chi.Router) {
			r.Get("/", handlers.NewListRentalsHandler(svcs).Execute)
			r.Get("/{rentalId}", handlers.NewGetRentalHandler(svcs).Execute)
			r.Get("/vhs/{vhsId}/availability", handlers.NewGetAvailabilityHandler(svcs).Execute)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAuth(store, a.Logger))
				r.Post("/", handlers.NewPostRentalHandler(svcs).Execute)
				r.Patch("/{rentalId}/finish", handlers.NewFinishRentalHandler(svcs).Execute)
			})
		})
	})
}
