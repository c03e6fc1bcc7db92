package dto

import (
	"shareit/internal/domains/comment/model"
	"strings"
	"time"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

func (r *CreateCommentRequest) ToModel(itemID, authorID int64, now time.Time) model.Comment {
	comment := model.Comment{
		Text:     strings.TrimSpace(r.Text),
		ItemID:   itemID,
		AuthorID: authorID,
	}
	comment.Touch(now)

	return comment
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.Text = model.Text
	r.AuthorName = model.AuthorName
	r.Created = model.CreatedAt
}

// GroupByItem maps each item id to the responses of its comments, preserving input order.
func GroupByItem(models []model.Comment) map[int64][]CommentResponse {
	res := make(map[int64][]CommentResponse)

	for _, mod := range models {
		var comment CommentResponse

		comment.FromModel(mod)
		res[mod.ItemID] = append(res[mod.ItemID], comment)
	}

	return res
}
