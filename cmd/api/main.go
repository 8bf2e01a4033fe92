package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/njprem/BizSuite_BackEnd/internal/config"
	"github.com/njprem/BizSuite_BackEnd/internal/importer"
	"github.com/njprem/BizSuite_BackEnd/internal/logging"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/postgres"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
	transport "github.com/njprem/BizSuite_BackEnd/internal/transport/http"
	"github.com/njprem/BizSuite_BackEnd/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Env:          cfg.AppEnv,
		Level:        cfg.LogLevel,
		File:         cfg.LogFile,
		LogstashAddr: cfg.LogstashTCPAddr,
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Close()

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()

	store := postgres.NewStore(db)
	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(store.Users, postgres.NewSessionRepo(db), jwtManager)

	pipeline := importer.NewPipeline(importer.NewRegistry(), store)
	importService := service.NewImportService(pipeline, logger.Named("import"), service.ImportServiceConfig{
		MaxFileBytes: cfg.ImportMaxUploadBytes,
		MaxRows:      cfg.ImportMaxRows,
		Delimiter:    cfg.ImportDelimiter,
	})

	e := transport.NewRouter(transport.RouterOptions{
		AllowOrigins:   cfg.AllowOrigins,
		MaxUploadBytes: cfg.ImportMaxUploadBytes,
		Logger:         logger.Named("http"),
	})
	transport.RegisterAuth(e, authService)
	transport.RegisterImports(e, authService, importService, cfg.EnableImports)
	if cfg.EnableSwagger {
		if err := transport.RegisterSwagger(e, "docs/swagger.yaml"); err != nil {
			logger.Warn("swagger disabled", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
}
