package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "SESSION_TTL", "IMPORT_MAX_ROWS", "IMPORT_DELIMITER", "ALLOW_ORIGINS", "DATABASE_URL", "JWT_SECRET"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.ImportMaxRows != 10000 || cfg.ImportMaxUploadBytes != 8*1024*1024 || cfg.ImportDelimiter != ',' {
		t.Fatalf("unexpected import limits %+v", cfg)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "*" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected missing DATABASE_URL and JWT_SECRET")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("IMPORT_DELIMITER", "semicolon")
	t.Setenv("IMPORT_MAX_ROWS", "50")
	t.Setenv("ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_URL", "postgres://localhost/bizsuite")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ImportDelimiter != ';' || cfg.ImportMaxRows != 50 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
