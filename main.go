package main

import (
	"net/http"
	"os"

	"github.com/rowanmaher/klondike/server"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := server.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	store := server.NewInMemoryGameStore()
	s := server.NewServer(store, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("starting klondike server")
	if err := http.ListenAndServe(cfg.Addr, s); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
