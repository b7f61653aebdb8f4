package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/facility/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
	"venue/shared/logger"
	gRepo "venue/shared/repository"
)

// unrated facilities sort last
const recommendQuery = `SELECT f.facility_id, f.facility_name, f.facility_type, f.description, f.location, f.capacity,
	ROUND(AVG(r.score), 2) AS avg_score
FROM facilities f
LEFT JOIN ratings r ON f.facility_id = r.facility_id
GROUP BY f.facility_id
ORDER BY avg_score DESC NULLS LAST, f.facility_id
LIMIT $1`

type Facility interface {
	Insert(ctx context.Context, facility model.Facility) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Facility, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Facility, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	Recommend(ctx context.Context, limit int) ([]model.ScoredFacility, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Facility]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Facility {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Facility](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Recommend(ctx context.Context, limit int) ([]model.ScoredFacility, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".facility.Recommend")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, recommendQuery)

	facilities := []model.ScoredFacility{}

	if err := r.db.Read.SelectContext(ctx, &facilities, recommendQuery, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return facilities, fmt.Errorf("failed to get recommended facilities: %w", err)
	}

	return facilities, nil
}
