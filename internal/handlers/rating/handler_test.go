package rating_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "venue/infras/otel/mocks"
	ratingMocks "venue/internal/domains/rating/mocks"
	"venue/internal/domains/rating/model/dto"
	"venue/internal/handlers/rating"
	"venue/shared/failure"
	"venue/transport/http/response"
)

func setupRouter(t *testing.T) (http.Handler, *ratingMocks.MockRatingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := ratingMocks.NewMockRatingService(ctrl)

	handler := rating.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Message)

	return *envelope.Message
}

func TestHandler_Rate(t *testing.T) {
	router, svc := setupRouter(t)

	gomock.InOrder(
		svc.EXPECT().
			Rate(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req dto.RateRequest) (bool, error) {
				require.NotNil(t, req.Score)
				assert.Equal(t, 0, *req.Score)

				return true, nil
			}),
		svc.EXPECT().Rate(gomock.Any(), int64(3), gomock.Any()).Return(false, nil),
		svc.EXPECT().Rate(gomock.Any(), int64(3), gomock.Any()).Return(false, failure.FacilityNotFound),
	)

	rec := post(router, "/facilities/3/rate", `{"username":"alice","score":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rating submitted", message(t, rec))

	rec = post(router, "/facilities/3/rate", `{"username":"alice","score":4,"comment":"better"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rating updated", message(t, rec))

	rec = post(router, "/facilities/3/rate", `{"username":"alice","score":4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RateRejectsIncompleteBodies(t *testing.T) {
	router, _ := setupRouter(t)

	for _, body := range []string{
		`{"username":"alice"}`,
		`{"username":"alice","score":null}`,
		`{"score":3}`,
	} {
		rec := post(router, "/facilities/3/rate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandler_GetMyRatings(t *testing.T) {
	router, svc := setupRouter(t)

	svc.EXPECT().GetByUsername(gomock.Any(), "alice").Return([]dto.UserRatingResponse{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/my_ratings?username=alice", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"msg":"query successful","data":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/my_ratings?username=", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetFacilityRatings(t *testing.T) {
	router, svc := setupRouter(t)

	svc.EXPECT().
		GetByFacility(gomock.Any(), int64(3)).
		Return(dto.FacilityRatingsResponse{FacilityName: "Pool", Ratings: []dto.FacilityRatingResponse{}}, nil)
	svc.EXPECT().
		GetByFacility(gomock.Any(), int64(4)).
		Return(dto.FacilityRatingsResponse{}, failure.FacilityNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/3/ratings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status":200,"msg":"query successful","data":{"facility_name":"Pool","average_score":null,"ratings":[]}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/4/ratings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
