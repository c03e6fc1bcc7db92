package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/config"
	"shareit/infras/metrics"
	"shareit/infras/otel/mocks"
	cacheMocks "shareit/shared/cache/mocks"
	"shareit/shared/constant"
	"shareit/transport/http/middleware"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantCode int
		wantID   int64
	}{
		{name: "valid header", header: "7", wantCode: http.StatusOK, wantID: 7},
		{name: "padded header", header: " 12 ", wantCode: http.StatusOK, wantID: 12},
		{name: "missing header", header: "", wantCode: http.StatusBadRequest},
		{name: "not a number", header: "abc", wantCode: http.StatusBadRequest},
		{name: "zero", header: "0", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64

			handler := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, _ = middleware.UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderUserID, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func newMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache, *metrics.Metrics) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	m := metrics.New()

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache, m), cache, m
}

func TestRequestID(t *testing.T) {
	mw, _, _ := newMiddleware(t, &config.Config{})

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("first request opens window", func(t *testing.T) {
		mw, cache, _ := newMiddleware(t, cfg)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(redis.Nil)
		cache.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		mw.RateLimit()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		mw, cache, _ := newMiddleware(t, cfg)

		cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, value any) error {
				*(value.(*int)) = 2

				return nil
			})

		rec := httptest.NewRecorder()
		mw.RateLimit()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure lets request through", func(t *testing.T) {
		mw, cache, _ := newMiddleware(t, cfg)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		mw.RateLimit()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		mw, _, _ := newMiddleware(t, &config.Config{})

		rec := httptest.NewRecorder()
		mw.RateLimit()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	mw, _, m := newMiddleware(t, &config.Config{})

	router := chi.NewRouter()
	router.Use(mw.Metrics)
	router.Get("/v1/bookings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/5", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	count, err := testutil.GatherAndCount(m.Registry(), "shareit_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "shareit_http_request_duration_seconds" {
			continue
		}

		labels := map[string]string{}
		for _, label := range family.GetMetric()[0].GetLabel() {
			labels[label.GetName()] = label.GetValue()
		}

		assert.Equal(t, "/v1/bookings/{id}", labels["route"])
		assert.Equal(t, "200", labels["code"])
	}
}
