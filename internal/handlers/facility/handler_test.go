package facility_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "venue/infras/otel/mocks"
	facilityMocks "venue/internal/domains/facility/mocks"
	"venue/internal/domains/facility/model/dto"
	"venue/internal/handlers/facility"
	"venue/shared/failure"
	"venue/transport/http/response"
)

func setupRouter(t *testing.T) (http.Handler, *facilityMocks.MockFacilityService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := facilityMocks.NewMockFacilityService(ctrl)

	handler := facility.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, rec.Code, envelope.Status)

	return envelope
}

func TestHandler_GetFacilitiesPassesFilters(t *testing.T) {
	router, svc := setupRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), dto.ListFacilityRequest{Type: "sports", Keyword: "pool"}).
		Return([]dto.FacilityResponse{{ID: 1, Name: "Pool"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities?type=sports&keyword=pool", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decode(t, rec)
	assert.Nil(t, envelope.Message)
	assert.Len(t, envelope.Data, 1)
}

func TestHandler_GetFacilityByID(t *testing.T) {
	router, svc := setupRouter(t)

	svc.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.FacilityResponse{ID: 3, Name: "Pool"}, nil)
	svc.EXPECT().Get(gomock.Any(), int64(4)).Return(dto.FacilityResponse{}, failure.FacilityNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/3", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/4", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decode(t, rec)
	require.NotNil(t, envelope.Message)
	assert.Equal(t, "facility not found", *envelope.Message)
}

func TestHandler_NonNumericIDIsNotRouted(t *testing.T) {
	router, _ := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Recommend(t *testing.T) {
	router, svc := setupRouter(t)

	svc.EXPECT().Recommend(gomock.Any()).Return([]dto.RecommendedFacilityResponse{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/recommend", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decode(t, rec)
	require.NotNil(t, envelope.Message)
	assert.Equal(t, "query successful", *envelope.Message)

	svc.EXPECT().Recommend(gomock.Any()).Return(nil, errors.New("pq: connection refused"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/recommend", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope = decode(t, rec)
	assert.Equal(t, "internal server error", *envelope.Message)
}
