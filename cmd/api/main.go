package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/config"
	httpHandlers "github.com/ANIKETSHETTY47/energy-field-operations/internal/http"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	zerolog.SetGlobalLevel(config.LogLevel())

	svcs, err := service.Open(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("snapshot load failed")
	}
	defer svcs.Close()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpHandlers.Register(app, svcs)

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
