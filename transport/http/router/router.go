package router

import (
	"net/http"
	"shareit/config"
	"shareit/infras/metrics"
	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/item"
	"shareit/internal/handlers/request"
	"shareit/internal/handlers/user"
	"shareit/shared/constant"
	"shareit/transport/http/middleware"
	"shareit/transport/http/response"

	// swagger spec registration
	_ "shareit/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	User    user.Handler
	Item    item.Handler
	Booking booking.Handler
	Request request.Handler
}

// HealthFunc reports whether the server still accepts traffic.
type HealthFunc func() bool

type Router struct {
	DomainHandlers DomainHandlers
	config         *config.Config
	middleware     middleware.AppMiddleware
	metrics        *metrics.Metrics
}

func New(domainHandlers DomainHandlers, cfg *config.Config, appMiddleware middleware.AppMiddleware, m *metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		config:         cfg,
		middleware:     appMiddleware,
		metrics:        m,
	}
}

func (r *Router) SetupRoutes(router chi.Router, healthy HealthFunc) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(r.middleware.RequestID)
	router.Use(r.middleware.Logging)
	router.Use(r.middleware.Tracing)
	router.Use(r.middleware.Metrics)

	if r.config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.config.App.CORS.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: r.config.App.CORS.AllowCredentials,
			MaxAge:           r.config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if !healthy() {
			response.WithUnhealthy(w)

			return
		}

		response.WithMessage(w, http.StatusOK, "OK")
	})
	router.Method(http.MethodGet, "/metrics", r.metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.RateLimit())

		r.DomainHandlers.User.Router(routerGroup)

		routerGroup.Group(func(identified chi.Router) {
			identified.Use(middleware.Identity)

			r.DomainHandlers.Item.Router(identified)
			r.DomainHandlers.Booking.Router(identified)
			r.DomainHandlers.Request.Router(identified)
		})
	})
}
