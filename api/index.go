package handler

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/handler"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/adapters/repository"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/config"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/services"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/logging"
)

var mux http.Handler

func init() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.NewLogger(logging.LogLevel(cfg.LogLevel), cfg.LogFormat)

	// Note: On Vercel the filesystem is ephemeral; point DATABASE_URL at libsql or postgres
	repo, err := repository.Open(ctx, cfg)
	if err != nil {
		panic(err)
	}

	service := services.NewLinkService(repo, logger)
	mux, err = handler.NewRouter(cfg, service, logger)
	if err != nil {
		panic(err)
	}
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	mux.ServeHTTP(w, r)
}
