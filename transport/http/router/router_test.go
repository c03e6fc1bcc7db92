package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/metrics"
	"shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/service/mocks"
	itemMocks "shareit/internal/domains/item/service/mocks"
	requestMocks "shareit/internal/domains/request/service/mocks"
	userDto "shareit/internal/domains/user/model/dto"
	userMocks "shareit/internal/domains/user/service/mocks"
	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/item"
	"shareit/internal/handlers/request"
	"shareit/internal/handlers/user"
	cacheMocks "shareit/shared/cache/mocks"
	"shareit/transport/http/middleware"
	"shareit/transport/http/router"
)

type fixture struct {
	mux     *chi.Mux
	users   *userMocks.MockUser
	healthy bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()
	m := metrics.New()
	cfg := &config.Config{}

	f := &fixture{users: userMocks.NewMockUser(ctrl), healthy: true}

	r := router.New(router.DomainHandlers{
		User:    user.New(f.users, ot),
		Item:    item.New(itemMocks.NewMockItem(ctrl), ot),
		Booking: booking.New(bookingMocks.NewMockBooking(ctrl), ot),
		Request: request.New(requestMocks.NewMockRequest(ctrl), ot),
	}, cfg, middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl), m), m)

	f.mux = chi.NewRouter()
	r.SetupRoutes(f.mux, func() bool { return f.healthy })

	return f
}

func (f *fixture) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestRouter_Health(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.get("/health").Code)

	f.healthy = false

	assert.Equal(t, http.StatusServiceUnavailable, f.get("/health").Code)
}

func TestRouter_Metrics(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_Identity(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return([]userDto.UserResponse{}, nil)

	assert.Equal(t, http.StatusOK, f.get("/v1/users").Code, "users do not need the identity header")
	assert.Equal(t, http.StatusBadRequest, f.get("/v1/bookings").Code)
	assert.Equal(t, http.StatusBadRequest, f.get("/v1/items").Code)
	assert.Equal(t, http.StatusBadRequest, f.get("/v1/requests").Code)
	assert.NotEmpty(t, f.get("/v1/bookings").Header().Get("X-Request-ID"))
}
