package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/infras/otel"
	itemModel "shareit/internal/domains/item/model"
	itemRepository "shareit/internal/domains/item/repository"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgUserNotFound    = "user not found"
	msgRequestNotFound = "request not found"
)

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest, userID int64) (dto.RequestResponse, error)
	ListOwn(ctx context.Context, userID int64) ([]dto.RequestResponse, error)
	ListOthers(ctx context.Context, userID int64, params gDto.QueryParams) ([]dto.RequestResponse, error)
	Get(ctx context.Context, userID, requestID int64) (dto.RequestResponse, error)
}

type serviceImpl struct {
	repo     repository.Request
	userRepo userRepository.User
	itemRepo itemRepository.Item
	otel     otel.Otel
	clock    timezone.Clock
}

func New(repo repository.Request, userRepo userRepository.User, itemRepo itemRepository.Item, otel otel.Otel, clock timezone.Clock) Request {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		itemRepo: itemRepo,
		otel:     otel,
		clock:    clock,
	}
}

func newestFirst(params gDto.QueryParams) gDto.QueryParams {
	return params.
		OrderBy(model.TableName+"."+constant.FieldCreatedAt, gDto.SortDirDesc).
		OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirDesc)
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

func (s *serviceImpl) answers(ctx context.Context, requests []model.Request) ([]itemModel.Item, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(requests))
	for i, request := range requests {
		ids[i] = request.ID
	}

	params := gDto.QueryParams{}.OrderBy(itemModel.TableName+"."+itemModel.FieldID, gDto.SortDirAsc)

	items, err := s.itemRepo.GetAll(ctx, params, itemRepository.ByRequests(ids))
	if err != nil {
		log.Error().Err(err).Msg("failed to get items answering requests")

		return nil, fmt.Errorf("failed to get items answering requests: %w", err)
	}

	return items, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest, userID int64) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	request := req.ToModel(userID, s.clock.Now())

	request.ID, err = s.repo.Insert(ctx, request)
	if err != nil {
		log.Error().Err(err).Msg("failed to create request")

		return res, fmt.Errorf("failed to create request: %w", err)
	}

	res.FromModel(request, nil)

	return res, nil
}

func (s *serviceImpl) ListOwn(ctx context.Context, userID int64) (res []dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.ListOwn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldRequesterID, userID))

	requests, err := s.repo.GetAll(ctx, newestFirst(gDto.QueryParams{}), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get own requests")

		return nil, fmt.Errorf("failed to get own requests: %w", err)
	}

	items, err := s.answers(ctx, requests)
	if err != nil {
		return nil, err
	}

	return dto.FromModels(requests, items), nil
}

func (s *serviceImpl) ListOthers(ctx context.Context, userID int64, params gDto.QueryParams) (res []dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.ListOthers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = params.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	filter := gDto.And(gDto.Filter{
		Table:    model.TableName,
		Field:    model.FieldRequesterID,
		Value:    userID,
		Operator: gDto.FilterOperatorNotEq,
	})

	requests, err := s.repo.GetAll(ctx, newestFirst(params), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests of other users")

		return nil, fmt.Errorf("failed to get requests of other users: %w", err)
	}

	items, err := s.answers(ctx, requests)
	if err != nil {
		return nil, err
	}

	return dto.FromModels(requests, items), nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, requestID int64) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(requestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if request.ID == 0 {
		return res, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	items, err := s.answers(ctx, []model.Request{request})
	if err != nil {
		return res, err
	}

	res.FromModel(request, items)

	return res, nil
}
