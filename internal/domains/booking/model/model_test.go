package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/booking/model"
)

var now = time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestBooking_GetJoinQuery(t *testing.T) {
	assert.Equal(t,
		"JOIN users booker ON booker.id = bookings.booker_id JOIN items ON items.id = bookings.item_id",
		model.Booking{}.GetJoinQuery())
}

func TestBooking_Access(t *testing.T) {
	booking := model.Booking{BookerID: 1, ItemOwnerID: 2}

	assert.True(t, booking.IsOwnedBy(2))
	assert.False(t, booking.IsOwnedBy(1))
	assert.True(t, booking.CanBeViewedBy(1))
	assert.True(t, booking.CanBeViewedBy(2))
	assert.False(t, booking.CanBeViewedBy(3))
}

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       error
	}{
		{"valid", now.Add(time.Hour), now.Add(2 * time.Hour), nil},
		{"missing start", time.Time{}, now.Add(time.Hour), model.ErrWindowMissing},
		{"start now", now, now.Add(time.Hour), model.ErrStartNotFuture},
		{"start past", now.Add(-time.Hour), now.Add(time.Hour), model.ErrStartNotFuture},
		{"end past", now.Add(time.Hour), now.Add(-time.Hour), model.ErrEndNotFuture},
		{"start equals end", now.Add(time.Hour), now.Add(time.Hour), model.ErrStartNotBeforeEnd},
		{"start after end", now.Add(2 * time.Hour), now.Add(time.Hour), model.ErrStartNotBeforeEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, model.ValidateWindow(tt.start, tt.end, now), tt.want)
		})
	}
}
