package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/helper"
	"venue/shared/logger"
)

const (
	argLength = 2
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop, step-up or version")
	}

	cfg := config.Get()
	logger.Init(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("action", os.Args[1]).Msg("Migration failed")
	}
}
