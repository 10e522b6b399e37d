package config

import (
	"image/png"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "READ_TIMEOUT", "SUPABASE_URL", "SUPABASE_BUCKET", "MAX_FILE_SIZE", "PNG_COMPRESSION", "AUTO_ORIENT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("warn")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("Expected read timeout 10s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Supabase.BUCKET != "banners" {
		t.Errorf("Expected bucket banners, got %s", cfg.Supabase.BUCKET)
	}
	if cfg.Supabase.Enabled() {
		t.Error("Expected storage to be disabled without SUPABASE_URL")
	}
	if cfg.Storage.MaxFileSize != 5*1024*1024 {
		t.Errorf("Expected 5MB limit, got %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Image.Compression != png.DefaultCompression {
		t.Errorf("Expected default compression, got %v", cfg.Image.Compression)
	}
	if cfg.Image.AutoOrientation {
		t.Error("Expected auto orientation to default to false")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("READ_TIMEOUT", "3s")
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("PNG_COMPRESSION", "best")
	t.Setenv("AUTO_ORIENT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("info")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Expected read timeout 3s, got %v", cfg.Server.ReadTimeout)
	}
	if !cfg.Supabase.Enabled() {
		t.Error("Expected storage to be enabled")
	}
	if cfg.Storage.MaxFileSize != 1024 {
		t.Errorf("Expected limit 1024, got %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Image.Compression != png.BestCompression {
		t.Errorf("Expected best compression, got %v", cfg.Image.Compression)
	}
	if !cfg.Image.AutoOrientation {
		t.Error("Expected auto orientation to be enabled")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("WRITE_TIMEOUT", "soon")
	t.Setenv("PNG_COMPRESSION", "extreme")

	cfg, err := Load("info")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Storage.MaxFileSize != 5*1024*1024 {
		t.Errorf("Expected default limit, got %d", cfg.Storage.MaxFileSize)
	}
	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("Expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Image.Compression != png.DefaultCompression {
		t.Errorf("Expected default compression, got %v", cfg.Image.Compression)
	}
}
