package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Rating=MockRatingService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/infras/postgres"
	facilityModel "venue/internal/domains/facility/model"
	facilityRepo "venue/internal/domains/facility/repository"
	"venue/internal/domains/rating/model"
	"venue/internal/domains/rating/model/dto"
	"venue/internal/domains/rating/repository"
	userModel "venue/internal/domains/user/model"
	userRepo "venue/internal/domains/user/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
	"venue/shared/timezone"
)

type Rating interface {
	Rate(ctx context.Context, facilityID int64, req dto.RateRequest) (bool, error)
	GetByUsername(ctx context.Context, username string) ([]dto.UserRatingResponse, error)
	GetByFacility(ctx context.Context, facilityID int64) (dto.FacilityRatingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Rating
	userRepo     userRepo.User
	facilityRepo facilityRepo.Facility
	otel         otel.Otel
}

func New(repo repository.Rating, userRepo userRepo.User, facilityRepo facilityRepo.Facility, otel otel.Otel) Rating {
	return &serviceImpl{
		repo:         repo,
		userRepo:     userRepo,
		facilityRepo: facilityRepo,
		otel:         otel,
	}
}

var newestFirst = gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

// Rate creates or overwrites the caller's rating of a facility. The user is
// resolved before the facility, and created reports a first submission.
func (s *serviceImpl) Rate(ctx context.Context, facilityID int64, req dto.RateRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, shared.FilterByEq(userModel.FieldUsername, req.Username, userModel.TableName), userModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return false, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return false, failure.UserNotFound
	}

	exist, err := s.facilityRepo.Exist(ctx, shared.FilterByID(facilityID, facilityModel.FieldID, facilityModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility")

		return false, fmt.Errorf("failed to check facility: %w", err)
	}

	if !exist {
		return false, failure.FacilityNotFound
	}

	created, err = s.repo.Upsert(ctx, req.ToModel(user.ID, facilityID, timezone.Now()))
	if err != nil {
		// facility removed between the check and the write
		if postgres.IsForeignKeyViolation(err) {
			return false, failure.FacilityNotFound
		}

		log.Error().Err(err).Msg("failed to upsert rating")

		return false, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return created, nil
}

func (s *serviceImpl) GetByUsername(ctx context.Context, username string) (res []dto.UserRatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUsername")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, shared.FilterByEq(userModel.FieldUsername, username, userModel.TableName), userModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return nil, failure.UserNotFound
	}

	ratings, err := s.repo.GetAllByUser(ctx, newestFirst, shared.FilterByID(user.ID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ratings")

		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}

	return dto.FromUserRatings(ratings), nil
}

func (s *serviceImpl) GetByFacility(ctx context.Context, facilityID int64) (res dto.FacilityRatingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByFacility")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	facility, err := s.facilityRepo.Get(ctx,
		shared.FilterByID(facilityID, facilityModel.FieldID, facilityModel.TableName),
		facilityModel.FieldID, facilityModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == 0 {
		return res, failure.FacilityNotFound
	}

	ratings, err := s.repo.GetAllByFacility(ctx, newestFirst, shared.FilterByID(facilityID, model.FieldFacilityID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ratings")

		return res, fmt.Errorf("failed to get ratings: %w", err)
	}

	avg, err := s.repo.AverageScore(ctx, facilityID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get average score")

		return res, fmt.Errorf("failed to get average score: %w", err)
	}

	return dto.FacilityRatingsResponse{
		FacilityName: facility.Name,
		AverageScore: avg,
		Ratings:      dto.FromFacilityRatings(ratings),
	}, nil
}
