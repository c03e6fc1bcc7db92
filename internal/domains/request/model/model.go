package model

import "shareit/shared/model"

const (
	TableName  = "requests"
	EntityName = "request"

	FieldID          = "id"
	FieldDescription = "description"
	FieldRequesterID = "requester_id"
)

// Request is a published wish for an item that nobody has listed yet.
type Request struct {
	ID          int64  `db:"id"`
	Description string `db:"description"`
	RequesterID int64  `db:"requester_id"`
	model.Metadata
}
