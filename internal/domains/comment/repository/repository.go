package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/comment/model"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type Comment interface {
	Insert(ctx context.Context, model model.Comment) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Comment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Comment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Comment]
}

func New(db *postgres.Connection, otel otel.Otel) Comment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Comment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ByItems selects the comments left on any of itemIDs.
func ByItems(itemIDs []int64) gDto.FilterGroup {
	return gDto.And(gDto.Filter{Table: model.TableName, Field: model.FieldItemID, Value: itemIDs, Operator: gDto.FilterOperatorIn})
}
