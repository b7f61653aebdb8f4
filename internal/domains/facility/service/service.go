package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Facility=MockFacilityService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/facility/model"
	"venue/internal/domains/facility/model/dto"
	"venue/internal/domains/facility/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

type Facility interface {
	Create(ctx context.Context, req dto.CreateFacilityRequest) error
	GetAll(ctx context.Context, req dto.ListFacilityRequest) ([]dto.FacilityResponse, error)
	Get(ctx context.Context, id int64) (dto.FacilityResponse, error)
	Update(ctx context.Context, req dto.UpdateFacilityRequest) error
	Delete(ctx context.Context, id int64) error
	Recommend(ctx context.Context) ([]dto.RecommendedFacilityResponse, error)
}

type serviceImpl struct {
	repo repository.Facility
	otel otel.Otel
}

func New(repo repository.Facility, otel otel.Otel) Facility {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFacilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert facility")

		return fmt.Errorf("failed to insert facility: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListFacilityRequest) (res []dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldID, SortDir: gDto.SortDirAsc}

	facilities, err := s.repo.GetAll(ctx, params, req.ToFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return nil, fmt.Errorf("failed to get facilities: %w", err)
	}

	return dto.FromModels(facilities), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return res, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == 0 {
		return res, failure.FacilityNotFound
	}

	res.FromModel(facility)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFacilityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Update(ctx, shared.TransformFields(req.ToModel()), shared.FilterByID(req.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update facility")

		return fmt.Errorf("failed to update facility: %w", err)
	}

	if affected == 0 {
		return failure.FacilityNotFound
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return failure.Conflict("facility still has reservations or ratings")
		}

		log.Error().Err(err).Msg("failed to delete facility")

		return fmt.Errorf("failed to delete facility: %w", err)
	}

	if affected == 0 {
		return failure.FacilityNotFound
	}

	return nil
}

func (s *serviceImpl) Recommend(ctx context.Context) (res []dto.RecommendedFacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recommend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	facilities, err := s.repo.Recommend(ctx, constant.RecommendLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recommended facilities")

		return nil, fmt.Errorf("failed to get recommended facilities: %w", err)
	}

	return dto.FromScoredModels(facilities), nil
}
