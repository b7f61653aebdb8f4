package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/reservation/model/dto"
	"venue/internal/domains/reservation/service"
	"venue/shared/constant"
	"venue/shared/validator"
	"venue/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/reservations", handler.CreateReservation)
	router.Get("/my_reservations", handler.GetMyReservations)
	router.Post("/cancel_reservation", handler.CancelReservation)
}

// CreateReservation books a facility for a user.
// @Summary Create a reservation
// @Description Times accept "YYYY-MM-DD HH:MM:SS", "YYYY-MM-DDTHH:MM" or RFC 3339. Overlaps are not checked.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 200 {object} response.Envelope "reservation created"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created")

	response.WithMessage(writer, http.StatusOK, "reservation created")
}

// GetMyReservations lists a user's reservations, latest start first.
// @Summary List a user's reservations
// @Tags Reservation
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} response.Envelope{data=[]dto.ReservationResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/my_reservations [get]
func (handler *Handler) GetMyReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	username := request.URL.Query().Get(constant.RequestParamUsername)

	if err := validator.ValidateVar(username, constant.RequestParamUsername, "required"); err != nil {
		response.WithError(writer, err)

		return
	}

	reservations, err := handler.service.GetByUsername(ctx, username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "query successful", reservations)
}

// CancelReservation deletes a reservation.
// @Summary Cancel a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CancelReservationRequest true "Reservation ID"
// @Success 200 {object} response.Envelope "reservation cancelled"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/cancel_reservation [post]
func (handler *Handler) CancelReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	req := dto.CancelReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Cancel(ctx, req.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("reservation_id", req.ID).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation cancelled")

	response.WithMessage(writer, http.StatusOK, "reservation cancelled")
}
