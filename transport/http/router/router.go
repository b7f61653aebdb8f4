package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	// registers the generated OpenAPI document
	_ "venue/docs"
	"venue/internal/handlers/admin"
	"venue/internal/handlers/facility"
	"venue/internal/handlers/rating"
	"venue/internal/handlers/reservation"
	"venue/internal/handlers/summary"
	"venue/internal/handlers/user"
)

type DomainHandlers struct {
	User        user.Handler
	Facility    facility.Handler
	Admin       admin.Handler
	Reservation reservation.Handler
	Rating      rating.Handler
	Summary     summary.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Rating.Router(routerGroup)
		r.DomainHandlers.Summary.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
