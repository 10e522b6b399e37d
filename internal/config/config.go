package config

import (
	"errors"
	"image/png"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	Storage  StorageConfig
	Image    ImageConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type SupabaseConfig struct {
	URL    string
	KEY    string
	BUCKET string
}

// Enabled reports whether banner uploads have somewhere to go.
func (c SupabaseConfig) Enabled() bool {
	return c.URL != ""
}

type StorageConfig struct {
	MaxFileSize  int64
	AllowedTypes []string
}

type ImageConfig struct {
	Compression     png.CompressionLevel
	AutoOrientation bool
}

type LogConfig struct {
	Level string
}

// Load reads an optional .env file from the working directory and builds
// the configuration from the environment. defaultLogLevel applies when
// LOG_LEVEL is unset, so the CLI can stay quiet while the server logs info.
func Load(defaultLogLevel string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 10*time.Second),
		},
		Supabase: SupabaseConfig{
			URL:    getEnv("SUPABASE_URL", ""),
			KEY:    getEnv("SUPABASE_KEY", ""),
			BUCKET: getEnv("SUPABASE_BUCKET", "banners"),
		},
		Storage: StorageConfig{
			MaxFileSize:  getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024), // 5MB
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/bmp", "image/tiff"},
		},
		Image: ImageConfig{
			Compression:     getCompression("PNG_COMPRESSION", png.DefaultCompression),
			AutoOrientation: getEnvAsBool("AUTO_ORIENT", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", defaultLogLevel),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}

func getCompression(key string, defaultVal png.CompressionLevel) png.CompressionLevel {
	switch strings.ToLower(os.Getenv(key)) {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	case "default":
		return png.DefaultCompression
	}
	return defaultVal
}
