package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/tapestack/tapestack/pkg/app"
	"github.com/tapestack/tapestack/services/catalog/application/handlers"
	appsvcs "github.com/tapestack/tapestack/services/catalog/application/services"
)

// VHSRoutes registers catalog endpoints on the provided chi router.
func VHSRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/vhs", func(r chi.Router) {
			r.Get("/", handlers.NewListVHSHandler(svcs).Execute)
			r.Get("/{vhsId}", handlers.NewGetVHSHandler(svcs).Execute)
			r.Post("/", handlers.NewPostVHSHandler(svcs).Execute)
		})
	})
}
