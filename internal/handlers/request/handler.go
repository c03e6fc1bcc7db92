package request

import (
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
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
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetOwnRequests)
		routerGroup.Get("/all", handler.GetOtherRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
	})
}

// CreateRequest publishes a request for an item nobody offers yet.
// @Summary Create an item request
// @Tags Request
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Param request body dto.CreateRequestRequest true "Create Request Request"
// @Success 201 {object} dto.RequestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create item request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnRequests lists the caller's requests with the items offered in reply.
// @Summary List own item requests
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Success 200 {array} dto.RequestResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [get]
func (handler *Handler) GetOwnRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRequests")
	defer scope.End()

	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	res, err := handler.service.ListOwn(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get own item requests")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOtherRequests pages through the requests of other users.
// @Summary List item requests of other users
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} dto.RequestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/all [get]
func (handler *Handler) GetOtherRequests(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtherRequests")
	defer scope.End()

	userID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(request); err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ListOthers(ctx, userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get item requests of others")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRequestByID retrieves one item request.
// @Summary Get an item request by ID
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller ID"
// @Param id path int true "Request ID"
// @Success 200 {object} dto.RequestResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id} [get]
func (handler *Handler) GetRequestByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
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

	res, err := handler.service.Get(ctx, userID, id)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("request_id", id).Msg("failed to get item request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
