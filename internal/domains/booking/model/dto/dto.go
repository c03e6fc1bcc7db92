package dto

import (
	"fmt"
	"shareit/internal/domains/booking/model"
	"shareit/shared/failure"
	"shareit/shared/timezone"
	"time"
)

// CreateBookingRequest carries the booking window as text; accepted layouts are RFC3339 and 2006-01-02T15:04:05.
type CreateBookingRequest struct {
	ItemID int64  `json:"item_id" validate:"required,gt=0"`
	Start  string `json:"start"   validate:"required"`
	End    string `json:"end"     validate:"required"`
}

// Window parses the bounds and enforces the strict date rule against now.
func (r *CreateBookingRequest) Window(now time.Time) (start, end time.Time, err error) {
	start, err = timezone.ParseDateTime(r.Start)
	if err != nil {
		return start, end, failure.BadRequestFromString(fmt.Sprintf("invalid start: %s", r.Start)) // nolint:wrapcheck
	}

	end, err = timezone.ParseDateTime(r.End)
	if err != nil {
		return start, end, failure.BadRequestFromString(fmt.Sprintf("invalid end: %s", r.End)) // nolint:wrapcheck
	}

	if err = model.ValidateWindow(start, end, now); err != nil {
		return start, end, failure.BadRequest(err) // nolint:wrapcheck
	}

	return start, end, nil
}

func (r *CreateBookingRequest) ToModel(bookerID int64, start, end, now time.Time) model.Booking {
	booking := model.Booking{
		Start:    start,
		End:      end,
		BookerID: bookerID,
		ItemID:   r.ItemID,
		Status:   model.StatusWaiting,
	}
	booking.Touch(now)

	return booking
}

type BookerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
}

type BookingResponse struct {
	ID     int64          `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Booker BookerResponse `json:"booker"`
	Item   ItemResponse   `json:"item"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Start = timezone.ToAppTime(model.Start)
	r.End = timezone.ToAppTime(model.End)
	r.Status = model.Status.String()
	r.Booker = BookerResponse{
		ID:    model.BookerID,
		Name:  model.BookerName,
		Email: model.BookerEmail,
	}
	r.Item = ItemResponse{
		ID:          model.ItemID,
		Name:        model.ItemName,
		Description: model.ItemDescription,
		Available:   model.ItemAvailable,
		OwnerID:     model.ItemOwnerID,
	}
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// ShortResponse is the compact booking shown next to an item.
type ShortResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// FromBooking returns nil for a nil booking.
func FromBooking(booking *model.Booking) *ShortResponse {
	if booking == nil {
		return nil
	}

	return &ShortResponse{
		ID:       booking.ID,
		BookerID: booking.BookerID,
		Start:    timezone.ToAppTime(booking.Start),
		End:      timezone.ToAppTime(booking.End),
	}
}
