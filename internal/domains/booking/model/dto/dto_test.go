package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/shared/failure"
)

var now = time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestCreateBookingRequest_Window(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr string
	}{
		{
			name: "local layout",
			req:  dto.CreateBookingRequest{ItemID: 1, Start: "2030-01-16T10:00:00", End: "2030-01-17T10:00:00"},
		},
		{
			name: "rfc3339",
			req:  dto.CreateBookingRequest{ItemID: 1, Start: "2030-01-16T10:00:00Z", End: "2030-01-17T10:00:00Z"},
		},
		{
			name:    "malformed start",
			req:     dto.CreateBookingRequest{ItemID: 1, Start: "tomorrow", End: "2030-01-17T10:00:00"},
			wantErr: "invalid start: tomorrow",
		},
		{
			name:    "malformed end",
			req:     dto.CreateBookingRequest{ItemID: 1, Start: "2030-01-16T10:00:00", End: "16/01/2030"},
			wantErr: "invalid end: 16/01/2030",
		},
		{
			name:    "start in the past",
			req:     dto.CreateBookingRequest{ItemID: 1, Start: "2030-01-14T10:00:00Z", End: "2030-01-17T10:00:00Z"},
			wantErr: model.ErrStartNotFuture.Error(),
		},
		{
			name:    "end before start",
			req:     dto.CreateBookingRequest{ItemID: 1, Start: "2030-01-17T10:00:00Z", End: "2030-01-16T10:00:00Z"},
			wantErr: model.ErrStartNotBeforeEnd.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := tt.req.Window(now)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.True(t, start.Before(end))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{ItemID: 3}
	start, end := now.Add(time.Hour), now.Add(2*time.Hour)

	booking := req.ToModel(5, start, end, now)

	assert.Equal(t, model.StatusWaiting, booking.Status)
	assert.Equal(t, int64(3), booking.ItemID)
	assert.Equal(t, int64(5), booking.BookerID)
	assert.Equal(t, now, booking.CreatedAt)
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:              9,
		Start:           now,
		End:             now.Add(time.Hour),
		BookerID:        2,
		ItemID:          4,
		Status:          model.StatusApproved,
		BookerName:      "Bob",
		BookerEmail:     "bob@example.com",
		ItemName:        "Drill",
		ItemDescription: "Cordless",
		ItemAvailable:   true,
		ItemOwnerID:     1,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "APPROVED", res.Status)
	assert.Equal(t, dto.BookerResponse{ID: 2, Name: "Bob", Email: "bob@example.com"}, res.Booker)
	assert.Equal(t, dto.ItemResponse{ID: 4, Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1}, res.Item)
	assert.True(t, res.Start.Equal(now))
}

func TestFromBooking(t *testing.T) {
	assert.Nil(t, dto.FromBooking(nil))

	short := dto.FromBooking(&model.Booking{ID: 1, BookerID: 2, Start: now, End: now.Add(time.Hour)})

	require.NotNil(t, short)
	assert.Equal(t, int64(2), short.BookerID)
}
