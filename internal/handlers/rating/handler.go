package rating

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/rating/model/dto"
	"venue/internal/domains/rating/service"
	"venue/shared"
	"venue/shared/constant"
	"venue/shared/validator"
	"venue/transport/http/response"
)

type Handler struct {
	service service.Rating
	otel    otel.Otel
}

func New(service service.Rating, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/my_ratings", handler.GetMyRatings)
	router.Get("/facilities/{id:[0-9]+}/ratings", handler.GetFacilityRatings)
	router.Post("/facilities/{id:[0-9]+}/rate", handler.Rate)
}

// Rate submits or replaces the caller's rating of a facility.
// @Summary Rate a facility
// @Description One rating per user and facility; a resubmission overwrites score, comment and timestamp.
// @Tags Rating
// @Accept json
// @Produce json
// @Param id path int true "Facility ID"
// @Param request body dto.RateRequest true "Rating"
// @Success 200 {object} response.Envelope "rating submitted or rating updated"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/facilities/{id}/rate [post]
func (handler *Handler) Rate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rate")
	defer scope.End()

	facilityID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.RateRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Rate(ctx, facilityID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("facility_id", facilityID).Msg("failed to rate facility")

		response.WithError(writer, err)

		return
	}

	if created {
		response.WithMessage(writer, http.StatusOK, "rating submitted")

		return
	}

	response.WithMessage(writer, http.StatusOK, "rating updated")
}

// GetMyRatings lists a user's ratings, newest first.
// @Summary List a user's ratings
// @Tags Rating
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} response.Envelope{data=[]dto.UserRatingResponse}
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/my_ratings [get]
func (handler *Handler) GetMyRatings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRatings")
	defer scope.End()

	username := request.URL.Query().Get(constant.RequestParamUsername)

	if err := validator.ValidateVar(username, constant.RequestParamUsername, "required"); err != nil {
		response.WithError(writer, err)

		return
	}

	ratings, err := handler.service.GetByUsername(ctx, username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ratings")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "query successful", ratings)
}

// GetFacilityRatings returns a facility's ratings with their average.
// @Summary Ratings of a facility
// @Tags Rating
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} response.Envelope{data=dto.FacilityRatingsResponse}
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/facilities/{id}/ratings [get]
func (handler *Handler) GetFacilityRatings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityRatings")
	defer scope.End()

	facilityID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	ratings, err := handler.service.GetByFacility(ctx, facilityID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("facility_id", facilityID).Msg("failed to get facility ratings")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "query successful", ratings)
}
