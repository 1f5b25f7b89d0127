// Command skyrouted serves the route search API over HTTP.
//
// Settings come from SKYROUTE_ADDR and SKYROUTE_MAX_CELLS, optionally
// provided through a .env file in the working directory.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/katalvlaran/skyroute/internal/config"
	"github.com/katalvlaran/skyroute/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(server.WithMaxCells(cfg.MaxCells)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("[APP] [INFO] listening on %s (max %d cells)", cfg.Addr, cfg.MaxCells)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}
