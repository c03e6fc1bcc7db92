package model

import (
	"fmt"
	userModel "shareit/internal/domains/user/model"
	"shareit/shared/model"
)

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID       = "id"
	FieldText     = "text"
	FieldItemID   = "item_id"
	FieldAuthorID = "author_id"
)

type Comment struct {
	ID         int64  `db:"id"`
	Text       string `db:"text"`
	ItemID     int64  `db:"item_id"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `db:"author_name" table:"users" column:"name"`
	model.Metadata
}

func (Comment) GetJoinQuery() string {
	return fmt.Sprintf("JOIN %s ON %s.%s = %s.%s",
		userModel.TableName, userModel.TableName, userModel.FieldID, TableName, FieldAuthorID)
}
