package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/internal/domains/booking/model"
	itemModel "shareit/internal/domains/item/model"
	gDto "shareit/shared/dto"
	gRepo "shareit/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func ByID(id int64) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.TableName, model.FieldID, id))
}

// ByBooker selects the bookings made by bookerID that are in state at now.
func ByBooker(bookerID int64, state model.State, now time.Time) gDto.FilterGroup {
	filters := append([]any{gDto.Eq(model.TableName, model.FieldBookerID, bookerID)}, state.Filter(now)...)

	return gDto.And(filters...)
}

// ByOwner selects the bookings on items owned by ownerID that are in state at now.
func ByOwner(ownerID int64, state model.State, now time.Time) gDto.FilterGroup {
	filters := append([]any{gDto.Eq(itemModel.TableName, itemModel.FieldOwnerID, ownerID)}, state.Filter(now)...)

	return gDto.And(filters...)
}

// ApprovedForItems selects the approved bookings of any of itemIDs.
func ApprovedForItems(itemIDs []int64) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Table: model.TableName, Field: model.FieldItemID, Value: itemIDs, Operator: gDto.FilterOperatorIn},
		gDto.Eq(model.TableName, model.FieldStatus, model.StatusApproved),
	)
}

// FinishedBy selects the approved bookings of itemID by bookerID that ended before now.
func FinishedBy(bookerID, itemID int64, now time.Time) gDto.FilterGroup {
	filters := []any{
		gDto.Eq(model.TableName, model.FieldBookerID, bookerID),
		gDto.Eq(model.TableName, model.FieldItemID, itemID),
		gDto.Eq(model.TableName, model.FieldStatus, model.StatusApproved),
	}

	return gDto.And(append(filters, model.StatePast.Filter(now)...)...)
}
