package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/reservation/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

const (
	countByStatusQuery = `SELECT status, COUNT(*) AS count FROM reservations GROUP BY status ORDER BY status`
	countByDayQuery    = `SELECT TO_CHAR(DATE(start_time), 'YYYY-MM-DD') AS day, COUNT(*) AS count
FROM reservations
GROUP BY DATE(start_time)
ORDER BY DATE(start_time)`
)

type Reservation interface {
	Insert(ctx context.Context, reservation model.Reservation) error
	GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
	CountByDay(ctx context.Context) ([]model.DayCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	details gRepo.Repository[model.ReservationDetail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.ReservationDetail](model.EntityName+"_detail", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllDetails lists reservations joined with their facility.
func (r *repositoryImpl) GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationDetail, error) {
	return r.details.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountByStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByStatusQuery)

	counts := []model.StatusCount{}

	if err := r.db.Read.SelectContext(ctx, &counts, countByStatusQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return counts, fmt.Errorf("failed to count reservations by status: %w", err)
	}

	return counts, nil
}

func (r *repositoryImpl) CountByDay(ctx context.Context) ([]model.DayCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountByDay")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByDayQuery)

	counts := []model.DayCount{}

	if err := r.db.Read.SelectContext(ctx, &counts, countByDayQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return counts, fmt.Errorf("failed to count reservations by day: %w", err)
	}

	return counts, nil
}
