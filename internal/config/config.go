package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/njprem/BizSuite_BackEnd/internal/importer"
)

type Config struct {
	Port         string
	AppEnv       string
	DatabaseURL  string
	JWTSecret    string
	SessionTTL   time.Duration
	AllowOrigins []string

	LogLevel        string
	LogFile         string
	LogstashTCPAddr string

	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinIOBucketImports string

	ImportMaxUploadBytes int64
	ImportMaxRows        int
	ImportDelimiter      rune
	EnableImports        bool
	EnableSwagger        bool
}

// Load reads .env when present, then the process environment. Required keys
// are only enforced by Validate so the CLI can run with a partial config.
func Load() (Config, error) {
	envErr := godotenv.Load()

	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		AppEnv:               getenv("APP_ENV", "development"),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		JWTSecret:            getenv("JWT_SECRET", ""),
		AllowOrigins:         splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:             getenv("LOG_LEVEL", "info"),
		LogFile:              getenv("LOG_FILE", ""),
		LogstashTCPAddr:      getenv("LOGSTASH_TCP_ADDR", ""),
		MinIOEndpoint:        getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:       getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:       getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:          getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketImports:   getenv("MINIO_BUCKET_IMPORTS", "bizsuite-imports"),
		EnableImports:        getenv("ENABLE_IMPORTS", "true") == "true",
		EnableSwagger:        getenv("ENABLE_SWAGGER", "true") == "true",
		ImportMaxUploadBytes: 8 * 1024 * 1024,
		ImportMaxRows:        10000,
		ImportDelimiter:      ',',
	}

	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return cfg, fmt.Errorf("invalid SESSION_TTL: %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	if v, err := strconv.ParseInt(getenv("IMPORT_MAX_UPLOAD_BYTES", "8388608"), 10, 64); err == nil && v > 0 {
		cfg.ImportMaxUploadBytes = v
	}
	if v, err := strconv.Atoi(getenv("IMPORT_MAX_ROWS", "10000")); err == nil && v > 0 {
		cfg.ImportMaxRows = v
	}
	if raw := os.Getenv("IMPORT_DELIMITER"); raw != "" {
		d, err := importer.ParseDelimiter(raw)
		if err != nil {
			return cfg, err
		}
		cfg.ImportDelimiter = d
	}

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", envErr)
	}
	return cfg, nil
}

// Validate checks the keys the API process cannot start without.
func (c Config) Validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing env: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) MinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
