package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Summary=MockSummaryService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	facilityRepo "venue/internal/domains/facility/repository"
	ratingRepo "venue/internal/domains/rating/repository"
	reservationRepo "venue/internal/domains/reservation/repository"
	"venue/internal/domains/summary/model/dto"
	userRepo "venue/internal/domains/user/repository"
	"venue/shared/constant"
	gDto "venue/shared/dto"
)

type Summary interface {
	Get(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	userRepo        userRepo.User
	facilityRepo    facilityRepo.Facility
	reservationRepo reservationRepo.Reservation
	ratingRepo      ratingRepo.Rating
	otel            otel.Otel
}

func New(
	userRepo userRepo.User,
	facilityRepo facilityRepo.Facility,
	reservationRepo reservationRepo.Reservation,
	ratingRepo ratingRepo.Rating,
	otel otel.Otel,
) Summary {
	return &serviceImpl{
		userRepo:        userRepo,
		facilityRepo:    facilityRepo,
		reservationRepo: reservationRepo,
		ratingRepo:      ratingRepo,
		otel:            otel,
	}
}

// Get runs each aggregate as its own read; the figures are not taken from a
// single snapshot.
func (s *serviceImpl) Get(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all := gDto.FilterGroup{}

	if res.Users, err = s.userRepo.Count(ctx, all); err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	if res.Facilities, err = s.facilityRepo.Count(ctx, all); err != nil {
		log.Error().Err(err).Msg("failed to count facilities")

		return res, fmt.Errorf("failed to count facilities: %w", err)
	}

	if res.Reservations, err = s.reservationRepo.Count(ctx, all); err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	statuses, err := s.reservationRepo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations by status")

		return res, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	days, err := s.reservationRepo.CountByDay(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations by day")

		return res, fmt.Errorf("failed to count reservations by day: %w", err)
	}

	scores, err := s.ratingRepo.CountByScore(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ratings by score")

		return res, fmt.Errorf("failed to count ratings by score: %w", err)
	}

	res.StatusData = dto.FromStatusCounts(statuses)
	res.TrendData = dto.FromDayCounts(days)
	res.ScoreDist = dto.FromScoreCounts(scores)

	return res, nil
}
