package di

import (
	"context"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/infras/otel"
	"venue/infras/postgres"
	"venue/infras/redis"
)

const otelShutdownTimeout = 5 * time.Second

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	o := otel.New(cfg)

	return o, func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := o.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to flush spans")
		}
	}
}

func providePostgres(cfg *config.Config) (*postgres.Connection, func()) {
	db := postgres.New(cfg)

	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database connections")
		}
	}
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func()) {
	client := redis.New(cfg)

	return client, func() {
		if client == nil {
			return
		}

		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
}
