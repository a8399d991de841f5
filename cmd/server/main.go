package main

import (
	"context"

	"github.com/NissanXoX/LinkApp/internal/app"
	"github.com/NissanXoX/LinkApp/internal/cache"
	"github.com/NissanXoX/LinkApp/internal/config"
	"github.com/NissanXoX/LinkApp/internal/db"
	"github.com/NissanXoX/LinkApp/internal/logger"
	"github.com/NissanXoX/LinkApp/internal/server"
	"github.com/NissanXoX/LinkApp/internal/service/matchmaker"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	// Inject logger into app context
	appCtx := app.New(database, redisCache, log)

	registrars := []server.Registrar{
		matchmaker.NewRegistrar(appCtx, cfg),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
