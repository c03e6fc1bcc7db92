package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/metrics"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/event"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	gRepo "shareit/shared/repository"
	"shareit/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgItemNotFound    = "item not found"
	msgUserNotFound    = "user not found"
	msgBookingNotFound = "booking not found"
	msgItemUnavailable = "item not available"
	msgBookerIsOwner   = "booker is owner"
	msgNotOwner        = "user is not the owner"
	msgNotAuthorized   = "not authorized to view"
	msgAlreadyDecided  = "booking already %s"

	operationCreate  = "create"
	operationApprove = "approve"
	operationGet     = "get"
)

// Subject selects whose bookings a listing returns.
type Subject int

const (
	SubjectBooker Subject = iota
	SubjectOwner
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, bookerID int64) (dto.BookingResponse, error)
	Approve(ctx context.Context, bookingID, ownerID int64, approved bool) (dto.BookingResponse, error)
	Get(ctx context.Context, bookingID, requesterID int64) (dto.BookingResponse, error)
	ListByBooker(ctx context.Context, bookerID int64, stateTag string, params gDto.QueryParams) ([]dto.BookingResponse, error)
	ListByOwner(ctx context.Context, ownerID int64, stateTag string, params gDto.QueryParams) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	itemRepo   itemRepository.Item
	userRepo   userRepository.User
	transactor gRepo.Transactor
	publisher  event.Publisher
	otel       otel.Otel
	clock      timezone.Clock
	metrics    *metrics.Metrics
}

func New(
	repo repository.Booking,
	itemRepo itemRepository.Item,
	userRepo userRepository.User,
	transactor gRepo.Transactor,
	publisher event.Publisher,
	otel otel.Otel,
	clock timezone.Clock,
	metrics *metrics.Metrics,
) Booking {
	return &serviceImpl{
		repo:       repo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		transactor: transactor,
		publisher:  publisher,
		otel:       otel,
		clock:      clock,
		metrics:    metrics,
	}
}

func (s *serviceImpl) refused(operation string, err error) {
	if err == nil {
		return
	}

	if kind := failure.GetKind(err); kind != failure.KindInternal {
		s.metrics.BookingRefused(operation, string(kind))
	}
}

func (s *serviceImpl) ensureUser(ctx context.Context, userID int64) error {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, bookerID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.refused(operationCreate, err) }()

	now := s.clock.Now()

	item, err := s.itemRepo.Get(ctx, shared.FilterByID(req.ItemID, itemModel.FieldID, itemModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return res, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return res, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, bookerID); err != nil {
		return res, err
	}

	if !item.Available {
		return res, failure.ItemUnavailable(msgItemUnavailable) // nolint:wrapcheck
	}

	if item.IsOwnedBy(bookerID) {
		return res, failure.Forbidden(msgBookerIsOwner) // nolint:wrapcheck
	}

	start, end, err := req.Window(now)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(bookerID, start, end, now)

	booking.ID, err = s.repo.Insert(ctx, booking)
	if shared.IsFkViolation(err) {
		return res, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := s.repo.Get(ctx, repository.ByID(booking.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created booking")

		return res, fmt.Errorf("failed to get created booking: %w", err)
	}

	s.publisher.Publish(ctx, event.New(event.TypeCreated, created, now))
	s.metrics.BookingStatus(created.Status.String())

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, bookingID, ownerID int64, approved bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.refused(operationApprove, err) }()

	now := s.clock.Now()
	decision := model.Decision(approved)
	filter := repository.ByID(bookingID)

	var updated model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == 0 {
			return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		if err = s.ensureUser(ctx, ownerID); err != nil {
			return err
		}

		if !booking.IsOwnedBy(ownerID) {
			return failure.Forbidden(msgNotOwner) // nolint:wrapcheck
		}

		if !booking.Status.CanTransitionTo(decision) {
			return failure.Conflict(fmt.Sprintf(msgAlreadyDecided, booking.Status)) // nolint:wrapcheck
		}

		fields := map[string]any{
			model.FieldStatus:        decision,
			constant.FieldModifiedAt: now,
		}

		if err = s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		updated, err = s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get updated booking")

			return fmt.Errorf("failed to get updated booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publisher.Publish(ctx, event.New(event.TypeFor(decision), updated, now))
	s.metrics.BookingStatus(decision.String())

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID, requesterID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.refused(operationGet, err) }()

	if err = s.ensureUser(ctx, requesterID); err != nil {
		return res, err
	}

	booking, err := s.repo.Get(ctx, repository.ByID(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if !booking.CanBeViewedBy(requesterID) {
		return res, failure.Forbidden(msgNotAuthorized) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListByBooker(ctx context.Context, bookerID int64, stateTag string, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByBooker")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, SubjectBooker, bookerID, stateTag, params)
}

func (s *serviceImpl) ListByOwner(ctx context.Context, ownerID int64, stateTag string, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, SubjectOwner, ownerID, stateTag, params)
}

func (s *serviceImpl) list(ctx context.Context, subject Subject, userID int64, stateTag string, params gDto.QueryParams) ([]dto.BookingResponse, error) {
	state, err := model.ResolveState(stateTag)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = params.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	bookings, err := s.repo.GetAll(ctx, state.Apply(params), subjectFilter(subject, userID, state, now))
	if err != nil {
		log.Error().Err(err).Str("state", string(state)).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func subjectFilter(subject Subject, userID int64, state model.State, now time.Time) gDto.FilterGroup {
	if subject == SubjectOwner {
		return repository.ByOwner(userID, state, now)
	}

	return repository.ByBooker(userID, state, now)
}
