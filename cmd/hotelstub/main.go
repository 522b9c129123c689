package main

import (
	"log"

	"github.com/ibeloyar/hotelportal/internal/app"
	"github.com/ibeloyar/hotelportal/internal/config"
	"github.com/ibeloyar/hotelportal/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.ReadStub()
	if err != nil {
		lg.Fatal(err)
	}

	if cfg.SecretKey == config.DefaultSecretKey {
		lg.Warn("hotel stub signs tokens with the default secret key")
	}

	if err := app.RunStub(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
