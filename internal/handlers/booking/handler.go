package booking

import (
	"context"
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/logger"
	"shareit/shared/validator"
	"shareit/transport/http/middleware"
	"shareit/transport/http/param"
	"shareit/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookerBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.ApproveBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Book an available item of another user for a future window. The booking starts WAITING.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	bookerID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req, bookerID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + strconv.FormatInt(booking.ID, 10) + " created")

	response.WithJSON(writer, http.StatusCreated, booking)
}

// ApproveBooking records the owner's decision on a waiting booking.
// @Summary Approve or reject a booking
// @Description Move a WAITING booking to APPROVED or REJECTED. Only the item owner may decide.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param id path int true "Booking ID"
// @Param approved query bool true "Decision"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
func (handler *Handler) ApproveBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveBooking")
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

	approved, err := param.Bool(request, constant.RequestParamApproved)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Approve(ctx, id, ownerID, approved)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("booking_id", id).Msg("failed to approve booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + booking.Status)

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Visible to the booker and to the owner of the booked item.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Param id path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	requesterID, ok := middleware.UserID(ctx)
	if !ok {
		response.WithError(writer, failure.MissingUserHeader)

		return
	}

	id, err := param.ID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Get(ctx, id, requesterID)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Int64("booking_id", id).Msg("failed to get booking by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookerBookings lists the caller's own bookings.
// @Summary List bookings made by the caller
// @Description Filter by state and page with from/size. Ordered newest start first.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookerBookings(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, ".GetBookerBookings", handler.service.ListByBooker)
}

// GetOwnerBookings lists the bookings on items the caller owns.
// @Summary List bookings of the caller's items
// @Description Filter by state and page with from/size. Ordered newest start first.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/owner [get]
func (handler *Handler) GetOwnerBookings(writer http.ResponseWriter, request *http.Request) {
	handler.list(writer, request, ".GetOwnerBookings", handler.service.ListByOwner)
}

type lister func(ctx context.Context, userID int64, stateTag string, params gDto.QueryParams) ([]dto.BookingResponse, error)

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request, spanSuffix string, listFn lister) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+spanSuffix)
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

	bookings, err := listFn(ctx, userID, request.URL.Query().Get(constant.RequestParamState), queryParams)
	if err != nil {
		scope.TraceError(err)
		logger.Ctx(ctx).Error().Err(err).Msg("failed to list bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}
