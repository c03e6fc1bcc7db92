package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/item/model"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
)

type Item interface {
	Insert(ctx context.Context, model model.Item) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Item, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Item, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Item]
}

func New(db *postgres.Connection, otel otel.Otel) Item {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Item](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// SearchFilter matches available items whose name or description contains text, ignoring case.
func SearchFilter(text string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldAvailable, true),
		gDto.Or(
			gDto.Filter{Table: model.TableName, Field: model.FieldName, Value: text, Operator: gDto.FilterOperatorLike, ArgName: "search_name"},
			gDto.Filter{Table: model.TableName, Field: model.FieldDescription, Value: text, Operator: gDto.FilterOperatorLike, ArgName: "search_description"},
		),
	)
}

// ByRequests selects the items listed in reply to any of requestIDs.
func ByRequests(requestIDs []int64) gDto.FilterGroup {
	return gDto.And(gDto.Filter{Table: model.TableName, Field: model.FieldRequestID, Value: requestIDs, Operator: gDto.FilterOperatorIn})
}
