package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/facility/model/dto"
	"venue/internal/domains/facility/service"
	"venue/shared/constant"
	"venue/shared/validator"
	"venue/transport/http/response"
)

// Handler exposes facility maintenance. It carries no authentication.
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

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/facilities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Post("/", handler.CreateFacility)
		routerGroup.Put("/", handler.UpdateFacility)
		routerGroup.Delete("/", handler.DeleteFacility)
	})
}

// GetFacilities lists every facility.
// @Summary List all facilities
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope{data=[]dto.FacilityResponse}
// @Failure 500 {object} response.Envelope
// @Router /api/admin/facilities [get]
func (handler *Handler) GetFacilities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.GetFacilities")
	defer scope.End()

	facilities, err := handler.service.GetAll(ctx, dto.ListFacilityRequest{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, facilities)
}

// CreateFacility adds a facility.
// @Summary Create a facility
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateFacilityRequest true "Facility"
// @Success 200 {object} response.Envelope "facility created"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/admin/facilities [post]
func (handler *Handler) CreateFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.CreateFacility")
	defer scope.End()

	req := dto.CreateFacilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility created")

	response.WithMessage(writer, http.StatusOK, "facility created")
}

// UpdateFacility overwrites a facility.
// @Summary Update a facility
// @Description Every column is overwritten; omitted optional fields become null.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateFacilityRequest true "Facility"
// @Success 200 {object} response.Envelope "facility updated"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/admin/facilities [put]
func (handler *Handler) UpdateFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.UpdateFacility")
	defer scope.End()

	req := dto.UpdateFacilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("facility_id", req.ID).Msg("failed to update facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility updated")

	response.WithMessage(writer, http.StatusOK, "facility updated")
}

// DeleteFacility removes a facility.
// @Summary Delete a facility
// @Description Rejected with 409 while reservations or ratings still reference the facility.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.DeleteFacilityRequest true "Facility ID"
// @Success 200 {object} response.Envelope "facility deleted"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/admin/facilities [delete]
func (handler *Handler) DeleteFacility(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.DeleteFacility")
	defer scope.End()

	req := dto.DeleteFacilityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, req.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("facility_id", req.ID).Msg("failed to delete facility")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Facility deleted")

	response.WithMessage(writer, http.StatusOK, "facility deleted")
}
