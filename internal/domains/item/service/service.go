package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shareit/config"
	"shareit/infras/metrics"
	"shareit/infras/otel"
	bookingModel "shareit/internal/domains/booking/model"
	bookingRepository "shareit/internal/domains/booking/repository"
	bookingService "shareit/internal/domains/booking/service"
	commentModel "shareit/internal/domains/comment/model"
	commentDto "shareit/internal/domains/comment/model/dto"
	commentRepository "shareit/internal/domains/comment/repository"
	"shareit/internal/domains/item/model"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/repository"
	requestModel "shareit/internal/domains/request/model"
	requestRepository "shareit/internal/domains/request/repository"
	userModel "shareit/internal/domains/user/model"
	userRepository "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/cache"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = "item:get"
	cacheSearchItem = "item:search"

	msgUserNotFound    = "user not found"
	msgItemNotFound    = "item not found"
	msgRequestNotFound = "request not found"
	msgNotOwner        = "user is not the owner"
	msgLeaseNotEnded   = "comments are left after the end of the lease"
)

type Item interface {
	Create(ctx context.Context, req dto.CreateItemRequest, ownerID int64) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, ownerID, itemID int64) (dto.ItemResponse, error)
	Get(ctx context.Context, userID, itemID int64) (dto.ItemResponse, error)
	ListByOwner(ctx context.Context, ownerID int64, params gDto.QueryParams) ([]dto.ItemResponse, error)
	Search(ctx context.Context, text string, params gDto.QueryParams) ([]dto.ItemResponse, error)
	CreateComment(ctx context.Context, req commentDto.CreateCommentRequest, userID, itemID int64) (commentDto.CommentResponse, error)
}

type serviceImpl struct {
	repo        repository.Item
	userRepo    userRepository.User
	requestRepo requestRepository.Request
	commentRepo commentRepository.Comment
	bookingRepo bookingRepository.Booking
	annotator   bookingService.Annotator
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	clock       timezone.Clock
	metrics     *metrics.Metrics
}

func New(
	repo repository.Item,
	userRepo userRepository.User,
	requestRepo requestRepository.Request,
	commentRepo commentRepository.Comment,
	bookingRepo bookingRepository.Booking,
	annotator bookingService.Annotator,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	clock timezone.Clock,
	metrics *metrics.Metrics,
) Item {
	return &serviceImpl{
		repo:        repo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		commentRepo: commentRepo,
		bookingRepo: bookingRepo,
		annotator:   annotator,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		clock:       clock,
		metrics:     metrics,
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

// getItem reads through the cache and fails with NotFound for unknown ids.
func (s *serviceImpl) getItem(ctx context.Context, itemID int64) (model.Item, error) {
	var item model.Item

	cacheKey := shared.BuildCacheKey(cacheGetItem, itemID)

	err := s.cache.Get(ctx, cacheKey, &item)
	s.metrics.CacheLookup(cacheGetItem, err == nil)

	if err == nil {
		return item, nil
	}

	item, err = s.loadItem(ctx, itemID)
	if err != nil {
		return item, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, item, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save item to cache")
		}
	}()

	return item, nil
}

// loadItem reads the item from the store, bypassing the cache.
func (s *serviceImpl) loadItem(ctx context.Context, itemID int64) (model.Item, error) {
	item, err := s.repo.Get(ctx, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get item")

		return item, fmt.Errorf("failed to get item: %w", err)
	}

	if item.ID == 0 {
		return item, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	return item, nil
}

func (s *serviceImpl) invalidateSearch(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheSearchItem)
	}()
}

func (s *serviceImpl) comments(ctx context.Context, itemIDs []int64) (map[int64][]commentDto.CommentResponse, error) {
	params := gDto.QueryParams{}.
		OrderBy(commentModel.TableName+"."+constant.FieldCreatedAt, gDto.SortDirAsc).
		OrderBy(commentModel.TableName+"."+commentModel.FieldID, gDto.SortDirAsc)

	comments, err := s.commentRepo.GetAll(ctx, params, commentRepository.ByItems(itemIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return commentDto.GroupByItem(comments), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest, ownerID int64) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, ownerID); err != nil {
		return res, err
	}

	if req.RequestID != nil {
		exist, err := s.requestRepo.Exist(ctx, shared.FilterByID(*req.RequestID, requestModel.FieldID, requestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if request exists")

			return res, fmt.Errorf("failed to check if request exists: %w", err)
		}

		if !exist {
			return res, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
		}
	}

	item := req.ToModel(ownerID, s.clock.Now())

	item.ID, err = s.repo.Insert(ctx, item)
	if err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	s.invalidateSearch(ctx)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, ownerID, itemID int64) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.loadItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	if !item.IsOwnedBy(ownerID) {
		return res, failure.Forbidden(msgNotOwner) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, s.clock.Now())

	err = s.repo.Update(ctx, updatedFields, shared.FilterByID(itemID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	dto.Apply(&item, updatedFields)

	// the cached copy must be gone before the caller sees the update
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetItem, itemID)); err != nil {
		log.Error().Err(err).Msg("failed to delete item cache")
	}

	s.invalidateSearch(ctx)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, userID, itemID int64) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return res, err
	}

	comments, err := s.comments(ctx, []int64{itemID})
	if err != nil {
		return res, err
	}

	var annotation bookingModel.Annotation

	if item.IsOwnedBy(userID) {
		annotations, err := s.annotator.Annotate(ctx, []int64{itemID}, s.clock.Now())
		if err != nil {
			return res, fmt.Errorf("failed to annotate item: %w", err)
		}

		annotation = annotations[itemID]
	}

	res.FromModel(item)
	res.Decorate(annotation, comments[itemID])

	return res, nil
}

func (s *serviceImpl) ListByOwner(ctx context.Context, ownerID int64, params gDto.QueryParams) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.ListByOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = params.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = s.ensureUser(ctx, ownerID); err != nil {
		return nil, err
	}

	params = params.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc)

	items, err := s.repo.GetAll(ctx, params, gDto.And(gDto.Eq(model.TableName, model.FieldOwnerID, ownerID)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get items of owner")

		return nil, fmt.Errorf("failed to get items of owner: %w", err)
	}

	if len(items) == 0 {
		return []dto.ItemResponse{}, nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	annotations, err := s.annotator.Annotate(ctx, ids, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to annotate items: %w", err)
	}

	comments, err := s.comments(ctx, ids)
	if err != nil {
		return nil, err
	}

	res = dto.FromModels(items)
	for i := range res {
		res[i].Decorate(annotations[res[i].ID], comments[res[i].ID])
	}

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, text string, params gDto.QueryParams) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = params.Validate(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	text = strings.TrimSpace(text)
	if text == constant.Empty {
		return []dto.ItemResponse{}, nil
	}

	params = params.OrderBy(model.TableName+"."+model.FieldID, gDto.SortDirAsc)
	filter := repository.SearchFilter(text)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchItem, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	s.metrics.CacheLookup(cacheSearchItem, err == nil)

	if err == nil {
		return res, nil
	}

	items, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search items")

		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	res = dto.FromModels(items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save search result to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateComment(ctx context.Context, req commentDto.CreateCommentRequest, userID, itemID int64) (res commentDto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".item.CreateComment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	if err = s.ensureUser(ctx, userID); err != nil {
		return res, err
	}

	if _, err = s.getItem(ctx, itemID); err != nil {
		return res, err
	}

	finished, err := s.bookingRepo.Exist(ctx, bookingRepository.FinishedBy(userID, itemID, now))
	if err != nil {
		log.Error().Err(err).Msg("failed to check finished bookings")

		return res, fmt.Errorf("failed to check finished bookings: %w", err)
	}

	if !finished {
		return res, failure.BadRequestFromString(msgLeaseNotEnded) // nolint:wrapcheck
	}

	comment := req.ToModel(itemID, userID, now)

	comment.ID, err = s.commentRepo.Insert(ctx, comment)
	if err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	stored, err := s.commentRepo.Get(ctx, shared.FilterByID(comment.ID, commentModel.FieldID, commentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get created comment")

		return res, fmt.Errorf("failed to get created comment: %w", err)
	}

	res.FromModel(stored)

	return res, nil
}
