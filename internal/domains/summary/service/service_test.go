package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/infras/otel/mocks"
	facilityMocks "venue/internal/domains/facility/mocks"
	ratingMocks "venue/internal/domains/rating/mocks"
	ratingModel "venue/internal/domains/rating/model"
	reservationMocks "venue/internal/domains/reservation/mocks"
	reservationModel "venue/internal/domains/reservation/model"
	"venue/internal/domains/summary/model/dto"
	"venue/internal/domains/summary/service"
	userMocks "venue/internal/domains/user/mocks"
	"venue/shared/failure"
)

type fixture struct {
	svc             service.Summary
	userRepo        *userMocks.MockUser
	facilityRepo    *facilityMocks.MockFacility
	reservationRepo *reservationMocks.MockReservation
	ratingRepo      *ratingMocks.MockRating
}

func setupService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		userRepo:        userMocks.NewMockUser(ctrl),
		facilityRepo:    facilityMocks.NewMockFacility(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		ratingRepo:      ratingMocks.NewMockRating(ctrl),
	}
	f.svc = service.New(f.userRepo, f.facilityRepo, f.reservationRepo, f.ratingRepo, mocks.NewOtel())

	return f
}

func TestSummaryService_Get(t *testing.T) {
	f := setupService(t)

	f.userRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
	f.facilityRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.reservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil)
	f.reservationRepo.EXPECT().CountByStatus(gomock.Any()).Return([]reservationModel.StatusCount{
		{Status: "cancelled", Count: 1},
		{Status: reservationModel.StatusConfirmed, Count: 2},
		{Status: reservationModel.StatusPending, Count: 3},
	}, nil)
	f.reservationRepo.EXPECT().CountByDay(gomock.Any()).Return([]reservationModel.DayCount{
		{Day: "2025-03-01", Count: 2},
		{Day: "2025-03-02", Count: 4},
	}, nil)
	f.ratingRepo.EXPECT().CountByScore(gomock.Any()).Return([]ratingModel.ScoreCount{
		{Score: 0, Count: 1},
		{Score: 5, Count: 2},
	}, nil)

	res, err := f.svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.SummaryResponse{
		Users:        4,
		Facilities:   3,
		Reservations: 6,
		StatusData: []dto.StatusSlice{
			{Name: "cancelled", Value: 1},
			{Name: "Confirmed", Value: 2},
			{Name: "Awaiting confirmation", Value: 3},
		},
		TrendData: []dto.TrendPoint{
			{Date: "2025-03-01", Count: 2},
			{Date: "2025-03-02", Count: 4},
		},
		ScoreDist: []dto.ScoreBucket{
			{Score: 0, Count: 1},
			{Score: 5, Count: 2},
		},
	}, res)
}

func TestSummaryService_GetOnEmptyStore(t *testing.T) {
	f := setupService(t)

	f.userRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.facilityRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.reservationRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.reservationRepo.EXPECT().CountByStatus(gomock.Any()).Return([]reservationModel.StatusCount{}, nil)
	f.reservationRepo.EXPECT().CountByDay(gomock.Any()).Return([]reservationModel.DayCount{}, nil)
	f.ratingRepo.EXPECT().CountByScore(gomock.Any()).Return([]ratingModel.ScoreCount{}, nil)

	res, err := f.svc.Get(context.Background())
	require.NoError(t, err)

	// empty lists, never null
	assert.NotNil(t, res.StatusData)
	assert.NotNil(t, res.TrendData)
	assert.NotNil(t, res.ScoreDist)
	assert.Empty(t, res.StatusData)
}

func TestSummaryService_GetStopsOnFirstError(t *testing.T) {
	f := setupService(t)

	f.userRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
	f.facilityRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err := f.svc.Get(context.Background())
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "Awaiting confirmation", dto.StatusName("pending"))
	assert.Equal(t, "Confirmed", dto.StatusName("confirmed"))
	assert.Equal(t, "rejected", dto.StatusName("rejected"))
}
