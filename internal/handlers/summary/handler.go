package summary

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/internal/domains/summary/model/dto"
	"venue/internal/domains/summary/service"
	"venue/shared/constant"
	"venue/transport/http/response"
)

type Handler struct {
	service service.Summary
	otel    otel.Otel
}

func New(service service.Summary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/summary", handler.GetSummary)
}

// GetSummary returns the dashboard aggregates.
// @Summary Dashboard summary
// @Description Totals, reservation status distribution, daily reservation trend and score distribution.
// @Tags Summary
// @Produce json
// @Success 200 {object} response.Envelope{data=dto.SummaryResponse}
// @Failure 500 {object} response.Envelope
// @Router /api/summary [get]
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	var (
		summary dto.SummaryResponse
		err     error
	)

	summary, err = handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get summary")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "query successful", summary)
}
