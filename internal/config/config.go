package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the media repository API.
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Storage StorageConfig
	Metrics MetricsConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthConfig groups authentication-related settings. The API key is a single
// static shared secret checked on every protected request.
type AuthConfig struct {
	APIKey string
}

// BackendKind selects the storage implementation at startup.
type BackendKind string

const (
	// BackendLocal stores uploads in flat directories on the local disk.
	BackendLocal BackendKind = "local"
	// BackendMinIO stores uploads in an S3-compatible object store.
	BackendMinIO BackendKind = "minio"
)

// StorageConfig carries backend selection and per-backend settings.
type StorageConfig struct {
	Backend BackendKind

	// LocalDir is the upload root for the local backend.
	LocalDir string

	// PublicBase is the browser-accessible base URL for stored files.
	// When empty each backend derives a sensible default.
	PublicBase string

	// ListLimit bounds how many items a single listing call returns per
	// category. Results beyond the bound are silently omitted.
	ListLimit int

	MinIO MinIOConfig
}

// MinIOConfig carries MinIO connection and bucket information.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	Region          string
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("MEDIAREPO_API_HOST", "0.0.0.0"),
			Port:         getInt("MEDIAREPO_API_PORT", 8080),
			ReadTimeout:  getDuration("MEDIAREPO_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("MEDIAREPO_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("MEDIAREPO_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			APIKey: getString("MEDIAREPO_API_KEY", "change-me-api-key"),
		},
		Storage: StorageConfig{
			Backend:    BackendKind(strings.ToLower(getString("MEDIAREPO_STORAGE_BACKEND", "local"))),
			LocalDir:   getString("MEDIAREPO_UPLOAD_DIR", "uploads"),
			PublicBase: getString("MEDIAREPO_PUBLIC_BASE", ""),
			ListLimit:  getInt("MEDIAREPO_LIST_LIMIT", 100),
			MinIO: MinIOConfig{
				Endpoint:        getString("MINIO_ENDPOINT", "localhost:9000"),
				AccessKeyID:     getString("MINIO_ROOT_USER", "mediarepo"),
				SecretAccessKey: getString("MINIO_ROOT_PASSWORD", "change-me-strong-password"),
				Bucket:          getString("MINIO_BUCKET", "mediarepo"),
				UseSSL:          getBool("MINIO_USE_SSL", false),
				Region:          getString("MINIO_REGION", ""),
			},
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("MEDIAREPO_METRICS_PATH", "/metrics"),
		},
	}

	switch cfg.Storage.Backend {
	case BackendLocal, BackendMinIO:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	if cfg.Storage.ListLimit <= 0 {
		return Config{}, fmt.Errorf("list limit must be positive, got %d", cfg.Storage.ListLimit)
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
