package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/internal/domains/user/model"
	"venue/internal/domains/user/model/dto"
	"venue/internal/domains/user/repository"
	"venue/shared"
	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/password"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByEq(model.FieldUsername, req.Username, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if username exists")

		return fmt.Errorf("failed to check if username exists: %w", err)
	}

	if exist {
		return failure.UsernameTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) || errors.Is(err, password.ErrPasswordTooLong) {
			return failure.BadRequest(err)
		}

		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(hash)); err != nil {
		// lost the race against a concurrent registration
		if postgres.IsUniqueViolation(err) {
			return failure.UsernameTaken
		}

		log.Error().Err(err).Msg("failed to insert user")

		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
