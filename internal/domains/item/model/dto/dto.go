package dto

import (
	bookingModel "shareit/internal/domains/booking/model"
	bookingDto "shareit/internal/domains/booking/model/dto"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model"
	"strings"
	"time"
)

type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank,max=2000"`
	Available   *bool  `json:"available"   validate:"required"`
	RequestID   *int64 `json:"request_id"  validate:"omitempty,gt=0"`
}

func (r *CreateItemRequest) ToModel(ownerID int64, now time.Time) model.Item {
	item := model.Item{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Available:   r.Available != nil && *r.Available,
		OwnerID:     ownerID,
		RequestID:   r.RequestID,
	}
	item.Touch(now)

	return item
}

// UpdateItemRequest is a partial update; nil and blank fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=2000"`
	Available   *bool   `db:"available"   json:"available"`
}

// Apply copies the written fields onto item.
func Apply(item *model.Item, fields map[string]any) {
	if name, ok := fields[model.FieldName].(string); ok {
		item.Name = name
	}

	if description, ok := fields[model.FieldDescription].(string); ok {
		item.Description = description
	}

	if available, ok := fields[model.FieldAvailable].(bool); ok {
		item.Available = available
	}
}

type ItemResponse struct {
	ID          int64                        `json:"id"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Available   bool                         `json:"available"`
	OwnerID     int64                        `json:"owner_id"`
	RequestID   *int64                       `json:"request_id"`
	LastBooking *bookingDto.ShortResponse    `json:"last_booking"`
	NextBooking *bookingDto.ShortResponse    `json:"next_booking"`
	Comments    []commentDto.CommentResponse `json:"comments"`
}

func (r *ItemResponse) FromModel(model model.Item) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Available = model.Available
	r.OwnerID = model.OwnerID
	r.RequestID = model.RequestID
	r.Comments = []commentDto.CommentResponse{}
}

// Decorate attaches the owner's booking context and the comments.
func (r *ItemResponse) Decorate(annotation bookingModel.Annotation, comments []commentDto.CommentResponse) {
	r.LastBooking = bookingDto.FromBooking(annotation.Last)
	r.NextBooking = bookingDto.FromBooking(annotation.Next)

	if comments != nil {
		r.Comments = comments
	}
}

func FromModels(models []model.Item) []ItemResponse {
	res := make([]ItemResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
