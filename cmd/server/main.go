package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/config"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/api"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/kvstore"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/repository"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/internal/service"
	"github.com/Bhargav-2005/AI-Powered-Email-Assistant/pkg/logger"
)

func main() {
	// 1. Load config
	log := logger.NewLogger()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	// 2. Init store
	rdb := kvstore.NewClient(cfg.Redis)
	store := kvstore.NewRedisStore(rdb)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatal("redis connection failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	// 3. Init repositories
	emailRepo := repository.NewEmailRepository(store)
	statsRepo := repository.NewStatsRepository(store)

	// 4. Init services
	processor := service.NewProcessorService(emailRepo, statsRepo, log)
	triage := service.NewTriageService(emailRepo, statsRepo, log)
	analytics := service.NewAnalyticsService(statsRepo)
	seeder := service.NewSeedService(emailRepo, processor, log)

	// 5. Init handlers and router
	emailHandler := api.NewEmailHandler(processor, triage, emailRepo)
	analyticsHandler := api.NewAnalyticsHandler(analytics, seeder)
	router := api.NewRouter(emailHandler, analyticsHandler)

	// 6. Run server
	log.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
