package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"conmates/api/router"
	"conmates/config"
	"conmates/db"
	"conmates/llm"
	"conmates/logger"
	"conmates/quota"
	"conmates/repositories"
	"conmates/services"
)

// @title           Conmates API
// @version         1.0
// @description     Lease analysis, chat suggestions and tenant-rights resources
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	invoker, err := llm.NewInvoker(cfg.LLM)
	if err != nil {
		logger.Log.Errorf("failed to initialize llm invoker: %v", err)
		os.Exit(1)
	}

	quotaLimiter := quota.NewLLMQuotaLimiterFromConfig(cfg)
	snapshots := repositories.NewAnalysisSnapshotRepository(db.Database())
	aiLogs := repositories.NewAILogRepository(db.Database())
	resources := repositories.NewResourceRepository(db.Database())

	r := router.New(router.Deps{
		Suggestions: services.NewSuggestionService(invoker, quotaLimiter, aiLogs),
		Analysis:    services.NewAnalysisService(invoker, quotaLimiter, snapshots, aiLogs, cfg.Analysis.MaxLeaseBytes()),
		Resources:   services.NewResourceService(resources),
	})

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Log.Infof("starting conmates api on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
