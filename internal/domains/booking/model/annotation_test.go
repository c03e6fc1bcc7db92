package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"shareit/internal/domains/booking/model"
)

func approved(id, itemID int64, start, end time.Time) model.Booking {
	return model.Booking{ID: id, ItemID: itemID, Start: start, End: end, Status: model.StatusApproved}
}

func TestNextAndLastBooking(t *testing.T) {
	bookings := []model.Booking{
		approved(1, 1, now.Add(-48*time.Hour), now.Add(-24*time.Hour)),
		approved(2, 1, now.Add(-12*time.Hour), now.Add(-time.Hour)),
		approved(3, 1, now.Add(24*time.Hour), now.Add(48*time.Hour)),
		approved(4, 1, now.Add(2*time.Hour), now.Add(3*time.Hour)),
		{ID: 5, ItemID: 1, Start: now.Add(time.Hour), End: now.Add(90 * time.Minute), Status: model.StatusWaiting},
		{ID: 6, ItemID: 1, Start: now.Add(-3 * time.Hour), End: now.Add(-30 * time.Minute), Status: model.StatusRejected},
		approved(7, 1, now.Add(-time.Hour), now.Add(time.Hour)),
	}

	next := model.NextBooking(bookings, now)
	last := model.LastBooking(bookings, now)

	require.NotNil(t, next)
	require.NotNil(t, last)
	assert.Equal(t, int64(4), next.ID)
	assert.Equal(t, int64(2), last.ID)
}

func TestNextAndLastBooking_None(t *testing.T) {
	assert.Nil(t, model.NextBooking(nil, now))
	assert.Nil(t, model.LastBooking(nil, now))

	current := []model.Booking{approved(1, 1, now.Add(-time.Hour), now.Add(time.Hour))}

	assert.Nil(t, model.NextBooking(current, now))
	assert.Nil(t, model.LastBooking(current, now))
}

func TestAnnotate(t *testing.T) {
	bookings := []model.Booking{
		approved(1, 10, now.Add(time.Hour), now.Add(2*time.Hour)),
		approved(2, 11, now.Add(-2*time.Hour), now.Add(-time.Hour)),
	}

	res := model.Annotate(bookings, []int64{10, 11, 12}, now)

	require.Len(t, res, 3)
	assert.Equal(t, int64(1), res[10].Next.ID)
	assert.Nil(t, res[10].Last)
	assert.Equal(t, int64(2), res[11].Last.ID)
	assert.Nil(t, res[11].Next)
	assert.Equal(t, model.Annotation{}, res[12])
}

func TestNextBooking_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bookings := drawBookings(t)
		next := model.NextBooking(bookings, now)

		for _, b := range bookings {
			eligible := b.Status == model.StatusApproved && b.Start.After(now)
			if !eligible {
				continue
			}

			if next == nil {
				t.Fatalf("booking %d is eligible but next is nil", b.ID)
			}

			if b.Start.Before(next.Start) {
				t.Fatalf("booking %d starts before chosen next %d", b.ID, next.ID)
			}
		}

		if next != nil && (next.Status != model.StatusApproved || !next.Start.After(now)) {
			t.Fatalf("next %d is not an approved future booking", next.ID)
		}
	})
}

func TestLastBooking_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bookings := drawBookings(t)
		last := model.LastBooking(bookings, now)

		for _, b := range bookings {
			eligible := b.Status == model.StatusApproved && b.End.Before(now)
			if !eligible {
				continue
			}

			if last == nil {
				t.Fatalf("booking %d is eligible but last is nil", b.ID)
			}

			if b.End.After(last.End) {
				t.Fatalf("booking %d ends after chosen last %d", b.ID, last.ID)
			}
		}

		if last != nil && (last.Status != model.StatusApproved || !last.End.Before(now)) {
			t.Fatalf("last %d is not an approved past booking", last.ID)
		}
	})
}
