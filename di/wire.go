//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"venue/config"
	"venue/shared/cache"
	"venue/transport/http"
	"venue/transport/http/middleware"
	"venue/transport/http/router"

	facilityRepository "venue/internal/domains/facility/repository"
	facilityService "venue/internal/domains/facility/service"
	ratingRepository "venue/internal/domains/rating/repository"
	ratingService "venue/internal/domains/rating/service"
	reservationRepository "venue/internal/domains/reservation/repository"
	reservationService "venue/internal/domains/reservation/service"
	summaryService "venue/internal/domains/summary/service"
	userRepository "venue/internal/domains/user/repository"
	userService "venue/internal/domains/user/service"

	adminHandler "venue/internal/handlers/admin"
	facilityHandler "venue/internal/handlers/facility"
	ratingHandler "venue/internal/handlers/rating"
	reservationHandler "venue/internal/handlers/reservation"
	summaryHandler "venue/internal/handlers/summary"
	userHandler "venue/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	provideOtel,
	provideRedis,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var ratingDomain = wire.NewSet(
	ratingRepository.New,
	ratingService.New,
)

var domains = wire.NewSet(
	userDomain,
	facilityDomain,
	reservationDomain,
	ratingDomain,
	summaryService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	facilityHandler.New,
	adminHandler.New,
	reservationHandler.New,
	ratingHandler.New,
	summaryHandler.New,
	router.New,
)

// InitializeService wires the HTTP server. The returned func releases the
// database pools, the redis client and the tracer provider.
func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}
