package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/njprem/BizSuite_BackEnd/internal/domain"
	"github.com/njprem/BizSuite_BackEnd/internal/importer"
)

var (
	ErrImportUnauthenticated  = errors.New("authentication required")
	ErrImportForbidden        = errors.New("admin privileges required for this tenant")
	ErrImportUnknownType      = errors.New("unknown import type")
	ErrImportNoFile           = errors.New("file is required")
	ErrImportEmptyFile        = errors.New("file contains no data rows")
	ErrImportMissingTenant    = errors.New("tenant is required")
	ErrImportTooLarge         = errors.New("file exceeds size limit")
	ErrImportRowLimitExceeded = errors.New("file exceeds row limit")
	ErrImportMalformed        = errors.New("file could not be parsed")
	ErrImportAborted          = errors.New("import aborted")
)

const (
	defaultImportMaxBytes = 8 * 1024 * 1024
	defaultImportMaxRows  = 10000
)

type ImportServiceConfig struct {
	MaxFileBytes int64
	MaxRows      int
	Delimiter    rune
}

// ImportRequest is one caller-initiated import. Contents holds the whole
// file; nothing about the request is persisted.
type ImportRequest struct {
	Type      string
	TenantID  uuid.UUID
	Filename  string
	Contents  []byte
	Delimiter rune
}

type ImportService struct {
	pipeline *importer.Pipeline
	logger   *zap.Logger
	cfg      ImportServiceConfig
	now      func() time.Time
}

func NewImportService(pipeline *importer.Pipeline, logger *zap.Logger, cfg ImportServiceConfig) *ImportService {
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = defaultImportMaxBytes
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = defaultImportMaxRows
	}
	if cfg.Delimiter == 0 {
		cfg.Delimiter = importer.DefaultDelimiter
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{pipeline: pipeline, logger: logger, cfg: cfg, now: time.Now}
}

func (s *ImportService) MaxFileBytes() int64 {
	return s.cfg.MaxFileBytes
}

func (s *ImportService) Schemas() []*importer.Schema {
	return s.pipeline.Registry().All()
}

// Import validates the caller and the file, then runs every row through the
// pipeline. Errors returned here are request-fatal: no row was persisted
// unless the error wraps ErrImportAborted.
func (s *ImportService) Import(ctx context.Context, caller *domain.User, req ImportRequest) (domain.ImportResult, error) {
	tenantID, err := s.authorize(caller, req.TenantID)
	if err != nil {
		return domain.ImportResult{}, err
	}

	entity := domain.ParseEntityType(req.Type)
	if _, ok := s.pipeline.Registry().Lookup(entity); !ok {
		return domain.ImportResult{}, fmt.Errorf("%w: %q", ErrImportUnknownType, req.Type)
	}
	if req.Contents == nil {
		return domain.ImportResult{}, ErrImportNoFile
	}
	if int64(len(req.Contents)) > s.cfg.MaxFileBytes {
		return domain.ImportResult{}, ErrImportTooLarge
	}

	delimiter := req.Delimiter
	if delimiter == 0 {
		delimiter = s.cfg.Delimiter
	}
	rows, err := importer.NewParser(delimiter).Parse(req.Contents)
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %v", ErrImportMalformed, err)
	}
	if len(rows) == 0 {
		return domain.ImportResult{}, ErrImportEmptyFile
	}
	if len(rows) > s.cfg.MaxRows {
		return domain.ImportResult{}, fmt.Errorf("%w: %d rows, limit is %d", ErrImportRowLimitExceeded, len(rows), s.cfg.MaxRows)
	}

	log := s.logger.With(
		zap.String("import_type", entity.String()),
		zap.String("tenant_id", tenantID.String()),
		zap.String("caller_id", caller.ID.String()),
		zap.String("filename", req.Filename),
	)
	started := s.now()
	result, err := s.run(ctx, tenantID, entity, rows)
	if err != nil {
		log.Error("import aborted", zap.Error(err))
		return domain.ImportResult{}, err
	}

	for _, msg := range result.Errors {
		log.Debug("import row rejected", zap.String("reason", msg))
	}
	log.Info("import finished",
		zap.Int("rows", len(rows)),
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
		zap.Duration("duration", s.now().Sub(started)),
	)
	return result, nil
}

func (s *ImportService) authorize(caller *domain.User, requested uuid.UUID) (uuid.UUID, error) {
	if caller == nil {
		return uuid.Nil, ErrImportUnauthenticated
	}
	if !caller.HasRole(domain.ImportRoles...) {
		return uuid.Nil, ErrImportForbidden
	}
	tenantID := requested
	if tenantID == uuid.Nil && caller.TenantID != nil {
		tenantID = *caller.TenantID
	}
	if tenantID == uuid.Nil {
		return uuid.Nil, ErrImportMissingTenant
	}
	if caller.Role != domain.RoleSuperAdmin && (caller.TenantID == nil || *caller.TenantID != tenantID) {
		return uuid.Nil, ErrImportForbidden
	}
	return tenantID, nil
}

// run converts a panic escaping an importer into ErrImportAborted so the
// caller gets an error response instead of a dropped connection.
func (s *ImportService) run(ctx context.Context, tenantID uuid.UUID, entity domain.EntityType, rows []importer.Row) (result domain.ImportResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.ImportResult{}
			err = fmt.Errorf("%w: %v", ErrImportAborted, r)
		}
	}()
	result, err = s.pipeline.Run(ctx, tenantID, entity, rows)
	switch {
	case errors.Is(err, importer.ErrMissingTenant):
		return result, ErrImportMissingTenant
	case errors.Is(err, importer.ErrUnknownEntityType):
		return result, fmt.Errorf("%w: %s", ErrImportUnknownType, entity)
	}
	return result, err
}

// Template renders the header line and a sample row for one import type.
func (s *ImportService) Template(rawType string) ([]byte, error) {
	schema, ok := s.pipeline.Registry().Lookup(domain.ParseEntityType(rawType))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrImportUnknownType, rawType)
	}
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = s.cfg.Delimiter
	_ = writer.Write(schema.Columns())
	_ = writer.Write(schema.SampleRow())
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
