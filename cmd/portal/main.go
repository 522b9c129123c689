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

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	lg.Infof("hotel service %s, orders page size %d, request timeout %s",
		cfg.APIURL, cfg.OrdersPageSize, cfg.RequestTimeout)

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
