package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/infras/otel/mocks"
	reservationMocks "venue/internal/domains/reservation/mocks"
	"venue/internal/domains/reservation/model"
	"venue/internal/domains/reservation/model/dto"
	"venue/internal/domains/reservation/service"
	userMocks "venue/internal/domains/user/mocks"
	userModel "venue/internal/domains/user/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/timezone"
)

type fixture struct {
	svc      service.Reservation
	repo     *reservationMocks.MockReservation
	userRepo *userMocks.MockUser
}

func setupService(t *testing.T) fixture {
	t.Helper()

	timezone.Init("UTC")

	ctrl := gomock.NewController(t)
	repo := reservationMocks.NewMockReservation(ctrl)
	userRepo := userMocks.NewMockUser(ctrl)

	return fixture{
		svc:      service.New(repo, userRepo, mocks.NewOtel()),
		repo:     repo,
		userRepo: userRepo,
	}
}

func TestReservationService_Create(t *testing.T) {
	f := setupService(t)

	validReq := dto.CreateReservationRequest{
		Username:   "alice",
		FacilityID: 2,
		StartTime:  "2025-03-01 09:00:00",
		EndTime:    "2025-03-01T10:00",
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "creates a reservation for the resolved user",
			req:  validReq,
			setupMock: func() {
				f.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: 7}, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), model.Reservation{
						UserID:     7,
						FacilityID: 2,
						StartTime:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
						EndTime:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
					}).
					Return(nil)
			},
		},
		{
			name: "unknown user",
			req:  validReq,
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unparseable start time",
			req:  dto.CreateReservationRequest{Username: "alice", FacilityID: 2, StartTime: "soon", EndTime: "2025-03-01 10:00:00"},
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{ID: 7}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "dangling facility is reported as not found",
			req:  validReq,
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{ID: 7}, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to insert data (reservation): %w", &pq.Error{Code: constant.PqErrorCodeFkViolation}))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "user lookup fails",
			req:  validReq,
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "insert fails",
			req:  validReq,
			setupMock: func() {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{ID: 7}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Create(context.Background(), tt.req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestReservationService_GetByUsername(t *testing.T) {
	f := setupService(t)

	start := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	sports := "sports"

	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{ID: 7}, nil)
	f.repo.EXPECT().
		GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error) {
			assert.Equal(t, "reservations.start_time", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(7), args[model.FieldUserID])

			return []model.ReservationDetail{
				{ID: 8, FacilityName: "Pool", FacilityType: &sports, StartTime: &start, EndTime: &end, Status: model.StatusPending},
				{ID: 3, FacilityName: "Studio", Status: model.StatusConfirmed},
			}, nil
		})

	res, err := f.svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, res, 2)

	assert.Equal(t, int64(8), res[0].ID)
	require.NotNil(t, res[0].StartTime)
	assert.Equal(t, "2025-03-02 09:00:00", *res[0].StartTime)
	assert.Equal(t, "2025-03-02 10:30:00", *res[0].EndTime)
	assert.Equal(t, "pending", res[0].Status)

	assert.Nil(t, res[1].StartTime)
	assert.Nil(t, res[1].EndTime)

	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

	_, err = f.svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, failure.UserNotFound)

	f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(userModel.User{ID: 7}, nil)
	f.repo.EXPECT().GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ReservationDetail{}, nil)

	res, err = f.svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestReservationService_Cancel(t *testing.T) {
	f := setupService(t)

	gomock.InOrder(
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil),
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil),
	)

	// a second cancel of the same id finds nothing to delete
	require.NoError(t, f.svc.Cancel(context.Background(), 5))

	err := f.svc.Cancel(context.Background(), 5)
	assert.ErrorIs(t, err, failure.ReservationNotFound)

	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))

	err = f.svc.Cancel(context.Background(), 5)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
