package dto

import (
	itemModel "shareit/internal/domains/item/model"
	"shareit/internal/domains/request/model"
	"strings"
	"time"
)

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,notblank,max=2000"`
}

func (r *CreateRequestRequest) ToModel(requesterID int64, now time.Time) model.Request {
	request := model.Request{
		Description: strings.TrimSpace(r.Description),
		RequesterID: requesterID,
	}
	request.Touch(now)

	return request
}

// ItemAnswer is an item listed in reply to a request.
type ItemAnswer struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   int64  `json:"request_id"`
}

type RequestResponse struct {
	ID          int64        `json:"id"`
	Description string       `json:"description"`
	Created     time.Time    `json:"created"`
	Items       []ItemAnswer `json:"items"`
}

func (r *RequestResponse) FromModel(model model.Request, items []itemModel.Item) {
	r.ID = model.ID
	r.Description = model.Description
	r.Created = model.CreatedAt
	r.Items = make([]ItemAnswer, 0, len(items))

	for _, item := range items {
		if item.RequestID == nil || *item.RequestID != model.ID {
			continue
		}

		r.Items = append(r.Items, ItemAnswer{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			OwnerID:     item.OwnerID,
			RequestID:   *item.RequestID,
		})
	}
}

// FromModels builds responses, attaching to each request the items that answer it.
func FromModels(models []model.Request, items []itemModel.Item) []RequestResponse {
	res := make([]RequestResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod, items)
	}

	return res
}
