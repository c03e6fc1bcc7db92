package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
)

var now = time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

func TestByBooker(t *testing.T) {
	filter := repository.ByBooker(7, model.StateCurrent, now)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.booker_id = :bookings_booker_id")
	assert.Contains(t, where, "bookings.start_date <= :current_start")
	assert.Contains(t, where, "bookings.end_date > :current_end")
	assert.Equal(t, int64(7), args["bookings_booker_id"])
	assert.Equal(t, now, args["current_start"])
}

func TestByBooker_All(t *testing.T) {
	filter := repository.ByBooker(7, model.StateAll, now)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.booker_id = :bookings_booker_id")
	assert.Len(t, args, 1)
}

func TestByOwner(t *testing.T) {
	filter := repository.ByOwner(3, model.StateWaiting, now)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "items.owner_id = :items_owner_id")
	assert.Contains(t, where, "bookings.status = :bookings_status")
	assert.Equal(t, int64(3), args["items_owner_id"])
	assert.Equal(t, model.StatusWaiting, args["bookings_status"])
}

func TestApprovedForItems(t *testing.T) {
	filter := repository.ApprovedForItems([]int64{10, 11})
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.item_id IN (:item_id_0, :item_id_1)")
	assert.Contains(t, where, "bookings.status = :bookings_status")
	assert.Equal(t, model.StatusApproved, args["bookings_status"])
	assert.Equal(t, int64(11), args["item_id_1"])
}

func TestFinishedBy(t *testing.T) {
	filter := repository.FinishedBy(7, 10, now)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.end_date < :past_end")
	assert.Contains(t, where, "bookings.item_id = :bookings_item_id")
	assert.Equal(t, model.StatusApproved, args["bookings_status"])
	assert.Equal(t, now, args["past_end"])
}

func TestByID(t *testing.T) {
	filter := repository.ByID(42)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.id = :bookings_id")
	assert.Equal(t, int64(42), args["bookings_id"])
}
