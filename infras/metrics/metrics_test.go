package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"shareit/infras/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingCounters(t *testing.T) {
	m := metrics.New()

	m.BookingStatus("WAITING")
	m.BookingStatus("WAITING")
	m.BookingStatus("APPROVED")
	m.BookingRefused("create", "forbidden")

	count, err := testutil.GatherAndCount(m.Registry(), "shareit_booking_status_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "shareit_booking_refused_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/v1/bookings", http.StatusOK, 15*time.Millisecond)
	m.CacheLookup("user:get", true)
	m.CacheLookup("user:get", false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shareit_http_request_duration_seconds_count{code="200",method="GET",route="/v1/bookings"} 1`)
	assert.Contains(t, rec.Body.String(), `shareit_cache_lookups_total{prefix="user:get",result="hit"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
