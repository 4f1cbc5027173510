package main

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"gridlock/internal/config"
	"gridlock/internal/relay"
)

func main() {
	cfg, err := config.LoadRelay()
	if err != nil {
		panic(err)
	}
	log, err := buildLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	srv := relay.NewServer(log)
	mux := http.NewServeMux()
	mux.HandleFunc("/play", srv.Handler)

	log.Info("relay listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Error("relay stopped", zap.Error(err))
		os.Exit(1)
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
