package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/shared/constant"
)

// Init configures the global zerolog logger. Production writes JSON lines,
// every other environment gets the human readable console writer.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if cfg.Server.Env == constant.ServerEnvProduction {
		output = os.Stdout
	}

	log.Logger = log.Output(output).With().Str("app", cfg.App.Name).Logger()

	SetLogLevel(cfg)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
		log.Debug().Str("loglevel", level.String()).Msg("No usable log level configured, using default.")
	}

	zerolog.SetGlobalLevel(level)
	log.Trace().Str("loglevel", level.String()).Msg("Log level set.")
}
