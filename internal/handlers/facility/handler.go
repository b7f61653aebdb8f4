package facility

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/facility/model/dto"
	"venue/internal/domains/facility/service"
	"venue/shared"
	"venue/shared/constant"
	"venue/transport/http/response"
)

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flat paths; /facilities/{id}/... is shared with the
// rating handler, so no sub-router is mounted here.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/facilities", handler.GetFacilities)
	router.Get("/facilities/recommend", handler.Recommend)
	router.Get("/facilities/{id:[0-9]+}", handler.GetFacilityByID)
}

// GetFacilities lists the catalog.
// @Summary List facilities
// @Description List facilities, optionally filtered by exact type and by a keyword matched against name, description and location.
// @Tags Facility
// @Produce json
// @Param type query string false "Facility type"
// @Param keyword query string false "Keyword"
// @Success 200 {object} response.Envelope{data=[]dto.FacilityResponse}
// @Failure 500 {object} response.Envelope
// @Router /api/facilities [get]
func (handler *Handler) GetFacilities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	query := request.URL.Query()
	req := dto.ListFacilityRequest{
		Type:    query.Get(constant.RequestParamType),
		Keyword: query.Get(constant.RequestParamKeyword),
	}

	facilities, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, facilities)
}

// GetFacilityByID returns one facility.
// @Summary Get a facility
// @Tags Facility
// @Produce json
// @Param id path int true "Facility ID"
// @Success 200 {object} response.Envelope{data=dto.FacilityResponse}
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("facility_id", id).Msg("failed to get facility")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, facility)
}

// Recommend returns the best rated facilities.
// @Summary Recommended facilities
// @Description Top five facilities by average score; unrated facilities come last with a null avg_score.
// @Tags Facility
// @Produce json
// @Success 200 {object} response.Envelope{data=[]dto.RecommendedFacilityResponse}
// @Failure 500 {object} response.Envelope
// @Router /api/facilities/recommend [get]
func (handler *Handler) Recommend(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Recommend")
	defer scope.End()

	facilities, err := handler.service.Recommend(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to recommend facilities")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "query successful", facilities)
}
