package model

import "time"

// Annotation is the booking context an owner sees next to an item.
type Annotation struct {
	Next *Booking
	Last *Booking
}

// NextBooking is the approved booking with the earliest start strictly after now.
func NextBooking(bookings []Booking, now time.Time) *Booking {
	var next *Booking

	for i := range bookings {
		b := &bookings[i]
		if b.Status != StatusApproved || !StateFuture.Contains(*b, now) {
			continue
		}

		if next == nil || b.Start.Before(next.Start) || (b.Start.Equal(next.Start) && b.ID < next.ID) {
			next = b
		}
	}

	return next
}

// LastBooking is the approved booking with the latest end strictly before now.
func LastBooking(bookings []Booking, now time.Time) *Booking {
	var last *Booking

	for i := range bookings {
		b := &bookings[i]
		if b.Status != StatusApproved || !StatePast.Contains(*b, now) {
			continue
		}

		if last == nil || b.End.After(last.End) || (b.End.Equal(last.End) && b.ID > last.ID) {
			last = b
		}
	}

	return last
}

// Annotate groups bookings by item and computes next and last for each item id.
func Annotate(bookings []Booking, itemIDs []int64, now time.Time) map[int64]Annotation {
	byItem := make(map[int64][]Booking, len(itemIDs))
	for _, b := range bookings {
		byItem[b.ItemID] = append(byItem[b.ItemID], b)
	}

	res := make(map[int64]Annotation, len(itemIDs))
	for _, id := range itemIDs {
		res[id] = Annotation{
			Next: NextBooking(byItem[id], now),
			Last: LastBooking(byItem[id], now),
		}
	}

	return res
}
