//go:build wireinject
// +build wireinject

package di

import (
	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/metrics"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/infras/redis"
	bookingEvent "shareit/internal/domains/booking/event"
	bookingRepository "shareit/internal/domains/booking/repository"
	bookingService "shareit/internal/domains/booking/service"
	commentRepository "shareit/internal/domains/comment/repository"
	itemRepository "shareit/internal/domains/item/repository"
	itemService "shareit/internal/domains/item/service"
	requestRepository "shareit/internal/domains/request/repository"
	requestService "shareit/internal/domains/request/service"
	userRepository "shareit/internal/domains/user/repository"
	userService "shareit/internal/domains/user/service"
	bookingHandler "shareit/internal/handlers/booking"
	itemHandler "shareit/internal/handlers/item"
	requestHandler "shareit/internal/handlers/request"
	userHandler "shareit/internal/handlers/user"
	"shareit/shared/cache"
	gRepo "shareit/shared/repository"
	"shareit/shared/timezone"
	"shareit/transport/http"
	"shareit/transport/http/middleware"
	"shareit/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewTransactor,
	timezone.NewSystemClock,
)

var repositories = wire.NewSet(
	userRepository.New,
	itemRepository.New,
	commentRepository.New,
	requestRepository.New,
	bookingRepository.New,
)

var bookingDomain = wire.NewSet(
	bookingEvent.NewPublisher,
	bookingService.NewAnnotator,
	bookingService.New,
)

var domains = wire.NewSet(
	repositories,
	userService.New,
	itemService.New,
	requestService.New,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	itemHandler.New,
	requestHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
