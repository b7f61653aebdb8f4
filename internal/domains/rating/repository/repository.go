package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/rating/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

const (
	// xmax is zero only on a freshly inserted row version
	upsertQuery = `INSERT INTO ratings (user_id, facility_id, score, comment, created_at)
VALUES (:user_id, :facility_id, :score, :comment, :created_at)
ON CONFLICT (user_id, facility_id) DO UPDATE
SET score = EXCLUDED.score, comment = EXCLUDED.comment, created_at = EXCLUDED.created_at
RETURNING (xmax = 0) AS inserted`
	averageScoreQuery = `SELECT ROUND(AVG(score), 2) FROM ratings WHERE facility_id = $1`
	countByScoreQuery = `SELECT score, COUNT(*) AS count FROM ratings GROUP BY score ORDER BY score`
)

type Rating interface {
	Upsert(ctx context.Context, rating model.Rating) (bool, error)
	GetAllByUser(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserRating, error)
	GetAllByFacility(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FacilityRating, error)
	AverageScore(ctx context.Context, facilityID int64) (*float64, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountByScore(ctx context.Context) ([]model.ScoreCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rating]
	byUser     gRepo.Repository[model.UserRating]
	byFacility gRepo.Repository[model.FacilityRating]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rating {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rating](model.EntityName, model.TableName, model.FieldID, db, otel),
		byUser:     gRepo.NewRepository[model.UserRating](model.EntityName+"_by_user", model.TableName, model.FieldID, db, otel),
		byFacility: gRepo.NewRepository[model.FacilityRating](model.EntityName+"_by_facility", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert writes the rating of a (user, facility) pair and reports whether
// the row was created rather than overwritten.
func (r *repositoryImpl) Upsert(ctx context.Context, rating model.Rating) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.Upsert")
	defer scope.End()

	query, args, err := r.db.Write.BindNamed(upsertQuery, rating)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to bind rating upsert: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var inserted bool

	if err = r.db.Write.GetContext(ctx, &inserted, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return inserted, nil
}

func (r *repositoryImpl) GetAllByUser(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.UserRating, error) {
	return r.byUser.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) GetAllByFacility(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FacilityRating, error) {
	return r.byFacility.GetAll(ctx, params, filter)
}

// AverageScore is rounded to two decimals, nil when the facility is unrated.
func (r *repositoryImpl) AverageScore(ctx context.Context, facilityID int64) (*float64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.AverageScore")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, averageScoreQuery)

	var avg sql.NullFloat64

	if err := r.db.Read.GetContext(ctx, &avg, averageScoreQuery, facilityID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get average score: %w", err)
	}

	if !avg.Valid {
		return nil, nil
	}

	return &avg.Float64, nil
}

func (r *repositoryImpl) CountByScore(ctx context.Context) ([]model.ScoreCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.CountByScore")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByScoreQuery)

	counts := []model.ScoreCount{}

	if err := r.db.Read.SelectContext(ctx, &counts, countByScoreQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return counts, fmt.Errorf("failed to count ratings by score: %w", err)
	}

	return counts, nil
}
