package service

//go:generate go run go.uber.org/mock/mockgen -source=./annotator.go -destination=./mocks/annotator_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/repository"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"time"

	"github.com/rs/zerolog/log"
)

// Annotator computes the next and last approved bookings of items.
type Annotator interface {
	Annotate(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]model.Annotation, error)
	NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
}

type annotatorImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func NewAnnotator(repo repository.Booking, otel otel.Otel) Annotator {
	return &annotatorImpl{
		repo: repo,
		otel: otel,
	}
}

// Annotate reads every approved booking of itemIDs in one query.
func (a *annotatorImpl) Annotate(ctx context.Context, itemIDs []int64, now time.Time) (res map[int64]model.Annotation, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Annotate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(itemIDs) == 0 {
		return map[int64]model.Annotation{}, nil
	}

	params := gDto.QueryParams{}.
		OrderBy(model.TableName+"."+model.FieldStart, gDto.SortDirAsc).
		OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc)

	bookings, err := a.repo.GetAll(ctx, params, repository.ApprovedForItems(itemIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to get approved bookings")

		return nil, fmt.Errorf("failed to get approved bookings: %w", err)
	}

	return model.Annotate(bookings, itemIDs, now), nil
}

func (a *annotatorImpl) NextBooking(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	annotations, err := a.Annotate(ctx, []int64{itemID}, now)
	if err != nil {
		return nil, err
	}

	return annotations[itemID].Next, nil
}

func (a *annotatorImpl) LastBooking(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	annotations, err := a.Annotate(ctx, []int64{itemID}, now)
	if err != nil {
		return nil, err
	}

	return annotations[itemID].Last, nil
}
