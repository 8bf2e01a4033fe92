package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/njprem/BizSuite_BackEnd/internal/config"
	"github.com/njprem/BizSuite_BackEnd/internal/importer"
	"github.com/njprem/BizSuite_BackEnd/internal/logging"
	minioRepo "github.com/njprem/BizSuite_BackEnd/internal/repository/minio"
	"github.com/njprem/BizSuite_BackEnd/internal/repository/postgres"
	"github.com/njprem/BizSuite_BackEnd/internal/service"
	"github.com/njprem/BizSuite_BackEnd/internal/util"
)

func connect(ctx context.Context) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	logger, err := logging.New(logging.Options{
		Env:          cfg.AppEnv,
		Level:        cfg.LogLevel,
		File:         cfg.LogFile,
		LogstashAddr: cfg.LogstashTCPAddr,
	})
	if err != nil {
		return nil, err
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	store := postgres.NewStore(db)
	// The CLI never verifies tokens, so an empty secret only disables login.
	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	rt := &Runtime{
		Imports: service.NewImportService(importer.NewPipeline(importer.NewRegistry(), store), logger.Named("importctl"), service.ImportServiceConfig{
			MaxFileBytes: cfg.ImportMaxUploadBytes,
			MaxRows:      cfg.ImportMaxRows,
			Delimiter:    cfg.ImportDelimiter,
		}),
		Auth:   service.NewAuthService(store.Users, postgres.NewSessionRepo(db), jwtManager),
		Bucket: cfg.MinIOBucketImports,
		Close: func() {
			_ = db.Close()
			_ = logger.Close()
		},
	}

	if cfg.MinIOEnabled() {
		client, err := minioRepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.Storage = minioRepo.NewStorage(client)
		logger.Debug("minio storage enabled", zap.String("bucket", cfg.MinIOBucketImports))
	}
	return rt, nil
}
