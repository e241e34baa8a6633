package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jakerich1/DietApi/config"
	"github.com/jakerich1/DietApi/routes"
	"github.com/jakerich1/DietApi/services"
	"github.com/jakerich1/DietApi/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	store, err := config.OpenStore(connectCtx, cfg)
	cancel()
	if err != nil {
		logger.Error("database unavailable", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	logger.Info("database ready", "driver", cfg.DBDriver)

	var export *services.ExportService
	if cfg.ExportEnabled() {
		s3Client, err := utils.NewS3Client(ctx, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			logger.Error("s3 client", "error", err)
			os.Exit(1)
		}
		uploader := utils.NewS3Uploader(s3Client, cfg.S3Bucket, cfg.CloudFrontURL)
		export = services.NewExportService(services.NewDiaryService(store), uploader)
	}

	r := routes.SetupRouter(routes.Deps{
		Store:  store,
		Hub:    services.NewRealtimeHub(),
		Export: export,
		Log:    logger,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("close database", "error", err)
	}
	logger.Info("server closed")
}
