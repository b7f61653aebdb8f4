package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"venue/infras/otel/mocks"
	facilityMocks "venue/internal/domains/facility/mocks"
	"venue/internal/domains/facility/model"
	"venue/internal/domains/facility/model/dto"
	"venue/internal/domains/facility/service"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func setupService(t *testing.T) (service.Facility, *facilityMocks.MockFacility) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := facilityMocks.NewMockFacility(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func TestFacilityService_Create(t *testing.T) {
	svc, mockRepo := setupService(t)

	req := dto.CreateFacilityRequest{Name: "Court A", Type: strPtr("sports"), Capacity: intPtr(12)}

	mockRepo.EXPECT().
		Insert(gomock.Any(), model.Facility{Name: "Court A", Type: strPtr("sports"), Capacity: intPtr(12)}).
		Return(nil)

	assert.NoError(t, svc.Create(context.Background(), req))

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	err := svc.Create(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestFacilityService_GetAll(t *testing.T) {
	svc, mockRepo := setupService(t)

	tests := []struct {
		name      string
		req       dto.ListFacilityRequest
		setupMock func()
		wantLen   int
		wantErr   bool
	}{
		{
			name: "filters by type and keyword, ordered by id",
			req:  dto.ListFacilityRequest{Type: "sports", Keyword: "pool"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Facility, error) {
						assert.Equal(t, "facilities.facility_id", params.SortBy)
						assert.Len(t, filter.Filters, 2)

						return []model.Facility{{ID: 1, Name: "Pool"}}, nil
					})
			},
			wantLen: 1,
		},
		{
			name: "no filters returns every facility",
			req:  dto.ListFacilityRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Facility, error) {
						assert.True(t, filter.IsEmpty())

						return []model.Facility{{ID: 1}, {ID: 2}}, nil
					})
			},
			wantLen: 2,
		},
		{
			name: "empty catalog is an empty list",
			req:  dto.ListFacilityRequest{Keyword: "nothing"},
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Facility{}, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			req:  dto.ListFacilityRequest{},
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, res)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestFacilityService_Get(t *testing.T) {
	svc, mockRepo := setupService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.Facility{ID: 4, Name: "Studio", Location: strPtr("Floor 2")}, nil)

	res, err := svc.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, dto.FacilityResponse{ID: 4, Name: "Studio", Location: strPtr("Floor 2")}, res)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Facility{}, nil)

	_, err = svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, failure.FacilityNotFound)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Facility{}, errors.New("database error"))

	_, err = svc.Get(context.Background(), 4)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestFacilityService_Update(t *testing.T) {
	svc, mockRepo := setupService(t)

	req := dto.UpdateFacilityRequest{ID: 3, CreateFacilityRequest: dto.CreateFacilityRequest{Name: "Court B"}}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "overwrites every column",
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
						assert.Len(t, fields, 5)
						assert.Equal(t, "Court B", fields[model.FieldName])
						assert.Contains(t, fields, model.FieldCapacity)
						assert.NotContains(t, fields, model.FieldID)

						_, args := filter.GetWhereClause()
						assert.Equal(t, int64(3), args[model.FieldID])

						return 1, nil
					})
			},
		},
		{
			name: "no affected rows means not found",
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestFacilityService_Delete(t *testing.T) {
	svc, mockRepo := setupService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name:      "deleted",
			setupMock: func() { mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil) },
		},
		{
			name:      "already gone",
			setupMock: func() { mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil) },
			wantCode:  http.StatusNotFound,
		},
		{
			name: "still referenced",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("failed to delete data (facility): %w", &pq.Error{Code: constant.PqErrorCodeFkViolation}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "repository error",
			setupMock: func() { mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error")) },
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 5)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestFacilityService_Recommend(t *testing.T) {
	svc, mockRepo := setupService(t)

	mockRepo.EXPECT().
		Recommend(gomock.Any(), constant.RecommendLimit).
		Return([]model.ScoredFacility{
			{Facility: model.Facility{ID: 2, Name: "Pool"}, AvgScore: floatPtr(4.5)},
			{Facility: model.Facility{ID: 1, Name: "Court"}},
		}, nil)

	res, err := svc.Recommend(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Pool", res[0].Name)
	assert.Equal(t, floatPtr(4.5), res[0].AvgScore)
	assert.Nil(t, res[1].AvgScore)

	mockRepo.EXPECT().Recommend(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err = svc.Recommend(context.Background())
	assert.Error(t, err)
}
