package item

import (
	"net/http"
	"shareit/infras/otel"
	commentDto "shareit/internal/domains/comment/model/dto"
	"shareit/internal/domains/item/model/dto"
	"shareit/internal/domains/item/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/logger"
	"shareit/shared/validator"
	"shareit/transport/http/middleware"
	"shareit/transport/http/param"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Item
	otel    otel.Otel
}

func New(service service.Item, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/items", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetOwnItems)
		routerGroup.Get("/search", handler.SearchItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Post("/{id}/comment", handler.CreateComment)
	})
}

// CreateItem handles the creation of a new item.
// @Summary Create a new item
// @Description Offer an item for sharing, optionally in reply to an item request.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Create(ctx, req, ownerID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Item created successfully")

	response.WithJSON(writer, http.StatusCreated, item)
}

// UpdateItem patches an item owned by the caller.
// @Summary Update an item by ID
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param id path int true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [patch]
func (handler *Handler) UpdateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	id, err := param.ID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Update(ctx, req, ownerID, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("item_id", id).Msg("failed to update item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// GetItemByID retrieves an item with its comments.
// @Summary Get an item by ID
// @Description The owner also sees the last and next approved bookings.
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header int true "Viewer ID"
// @Param id path int true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id} [get]
func (handler *Handler) GetItemByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	id, err := param.ID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	item, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("item_id", id).Msg("failed to get item by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}

// GetOwnItems lists the caller's items.
// @Summary List items owned by the caller
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items [get]
func (handler *Handler) GetOwnItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnItems")
	defer scope.End()

	ownerID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request); err != nil {
		response.WithError(writer, err)

		return
	}

	items, err := handler.service.ListByOwner(ctx, ownerID, queryParams)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get items of owner")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// SearchItems finds available items by text.
// @Summary Search available items
// @Description Case-insensitive match on name or description. Blank text yields an empty list.
// @Tags Item
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param text query string true "Search text"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/search [get]
func (handler *Handler) SearchItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchItems")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request); err != nil {
		response.WithError(writer, err)

		return
	}

	text := request.URL.Query().Get(constant.RequestParamText)
	if err := validator.ValidateVar(text, "max=255"); err != nil {
		response.WithError(writer, err)

		return
	}

	items, err := handler.service.Search(ctx, text, queryParams)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to search items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, items)
}

// CreateComment leaves a comment on an item the caller has rented.
// @Summary Comment on an item
// @Description Allowed after an approved booking of the item by the caller has ended.
// @Tags Item
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Author ID"
// @Param id path int true "Item ID"
// @Param request body commentDto.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} commentDto.CommentResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/items/{id}/comment [post]
func (handler *Handler) CreateComment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComment")
	defer scope.End()

	authorID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	id, err := param.ID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := commentDto.CreateCommentRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	comment, err := handler.service.CreateComment(ctx, req, authorID, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("item_id", id).Msg("failed to create comment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, comment)
}
