package model

import (
	"fmt"
	itemModel "shareit/internal/domains/item/model"
	userModel "shareit/internal/domains/user/model"
	"shareit/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	// BookerAlias is the alias users is joined under when reading bookings.
	BookerAlias = "booker"

	FieldID       = "id"
	FieldStart    = "start_date"
	FieldEnd      = "end_date"
	FieldBookerID = "booker_id"
	FieldItemID   = "item_id"
	FieldStatus   = "status"
)

// Booking is a booking row resolved against its booker and item.
type Booking struct {
	ID       int64     `db:"id"`
	Start    time.Time `db:"start_date"`
	End      time.Time `db:"end_date"`
	BookerID int64     `db:"booker_id"`
	ItemID   int64     `db:"item_id"`
	Status   Status    `db:"status"`

	BookerName      string `db:"booker_name"      table:"booker" column:"name"`
	BookerEmail     string `db:"booker_email"     table:"booker" column:"email"`
	ItemName        string `db:"item_name"        table:"items"  column:"name"`
	ItemDescription string `db:"item_description" table:"items"  column:"description"`
	ItemAvailable   bool   `db:"item_available"   table:"items"  column:"available"`
	ItemOwnerID     int64  `db:"item_owner_id"    table:"items"  column:"owner_id"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s %s ON %s.%s = %s.%s JOIN %s ON %s.%s = %s.%s",
		userModel.TableName, BookerAlias, BookerAlias, userModel.FieldID, TableName, FieldBookerID,
		itemModel.TableName, itemModel.TableName, itemModel.FieldID, TableName, FieldItemID)
}

func (b Booking) IsOwnedBy(userID int64) bool {
	return b.ItemOwnerID == userID
}

// CanBeViewedBy reports whether userID is the booker or the item owner.
func (b Booking) CanBeViewedBy(userID int64) bool {
	return b.BookerID == userID || b.ItemOwnerID == userID
}

// ValidateWindow checks that both bounds lie strictly after now and start precedes end.
func ValidateWindow(start, end, now time.Time) error {
	switch {
	case start.IsZero() || end.IsZero():
		return ErrWindowMissing
	case !start.After(now):
		return ErrStartNotFuture
	case !end.After(now):
		return ErrEndNotFuture
	case !start.Before(end):
		return ErrStartNotBeforeEnd
	}

	return nil
}
