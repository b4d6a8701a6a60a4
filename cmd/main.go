package main

import (
	stdlog "log"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/pkg/logger"
	"github.com/jb24000/fittrackerpro/routes"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.Server.Mode)

	log := logger.NewForMode(cfg.Server.Mode)
	defer log.Sync()

	config.InitDB(cfg)

	hub := services.NewRealtimeHub()
	services.InitFeed(hub)

	r := routes.SetupRouter(log, hub)
	log.Infow("starting server", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
