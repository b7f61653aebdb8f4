package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/reservation/model"
	"venue/internal/domains/reservation/model/dto"
	"venue/internal/domains/reservation/repository"
	userModel "venue/internal/domains/user/model"
	userRepo "venue/internal/domains/user/repository"
	"venue/shared"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/failure"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) error
	GetByUsername(ctx context.Context, username string) ([]dto.ReservationResponse, error)
	Cancel(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Reservation
	userRepo userRepo.User
	otel     otel.Otel
}

func New(repo repository.Reservation, userRepo userRepo.User, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) resolveUser(ctx context.Context, username string) (int64, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByEq(userModel.FieldUsername, username, userModel.TableName), userModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == 0 {
		return 0, failure.UserNotFound
	}

	return user.ID, nil
}

// Create books a facility. Facility existence is left to the foreign key.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.resolveUser(ctx, req.Username)
	if err != nil {
		return err
	}

	reservation, err := req.ToModel(userID)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return failure.FacilityNotFound
		}

		log.Error().Err(err).Msg("failed to insert reservation")

		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetByUsername(ctx context.Context, username string) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUsername")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := s.resolveUser(ctx, username)
	if err != nil {
		return nil, err
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldStartTime, SortDir: gDto.SortDirDesc}

	details, err := s.repo.GetAllDetails(ctx, params, shared.FilterByID(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	return dto.FromModels(details), nil
}

// Cancel deletes the reservation in one statement; nothing deleted means it
// never existed or was already cancelled.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if affected == 0 {
		return failure.ReservationNotFound
	}

	return nil
}
