package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seo-audit-backend/config"
	_ "seo-audit-backend/docs" // Important for Swagger
	v1 "seo-audit-backend/internal/delivery/http/v1"
	"seo-audit-backend/internal/usecase"
	"seo-audit-backend/pkg/email"
	"seo-audit-backend/pkg/logger"
	"seo-audit-backend/pkg/metrics"
	"seo-audit-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           SEO Audit Form API
// @version         1.0
// @description     Validates SEO audit requests and relays them to the audit team over SMTP.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	zl, err := logger.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zl.Info("Starting SEO audit form backend", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	zl.Debug("Effective configuration", zap.String("config", cfg.Dump()))

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Setup Metrics
	metrics.RegisterDefault(zl)

	// 4. Setup Email
	sender := email.NewSender(cfg.SMTP)
	if !sender.IsConfigured() {
		zl.Warn("Mail relay not fully configured - submissions will fail to deliver")
	}
	composer := email.NewComposer()

	// 5. Setup UseCases
	submissionUC := usecase.NewSubmissionUsecase(validation.New(), composer, sender, zl)
	healthUC := usecase.NewHealthUsecase(sender)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SubmissionUC: submissionUC,
		HealthUC:     healthUC,
		Config:       cfg,
		Logger:       zl,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("Listen failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down server...")

	// Long enough for an in-flight relay delivery to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}

	zl.Info("Server exiting")
}
