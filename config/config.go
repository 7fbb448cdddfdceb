package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetcher   FetcherConfig
	Store     StoreConfig
	Worker    WorkerConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Track     TrackConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetcherConfig controls the outbound page fetch.
type FetcherConfig struct {
	// Timeout bounds the single outbound GET (navigation + body).
	Timeout time.Duration // default: 30s

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MB

	// Proxy is an optional proxy URL for all outbound fetches.
	Proxy string
}

// StoreConfig controls analysis record persistence.
type StoreConfig struct {
	// DataDir is the directory holding one JSON file per analysis.
	DataDir string // default: $TMPDIR/sitegauge
}

// WorkerConfig controls the background analysis workers.
type WorkerConfig struct {
	// Count is the number of concurrent analysis workers.
	Count int // default: 4

	// QueueSize is the capacity of the pending-analysis queue.
	QueueSize int // default: 256
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per API key.
	Burst int // default: 10
}

// TrackConfig controls best-effort submission/completion tracking.
// Tracking is disabled when URL is empty; its failures never affect a run.
type TrackConfig struct {
	// URL is the endpoint receiving tracking events.
	URL string

	// Secret signs event payloads with HMAC-SHA256 when non-empty.
	Secret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SITEGAUGE_HOST", "0.0.0.0"),
			Port: envIntOr("SITEGAUGE_PORT", 8080),
			Mode: envOr("SITEGAUGE_MODE", "release"),
		},
		Fetcher: FetcherConfig{
			Timeout:      envDurationOr("SITEGAUGE_FETCH_TIMEOUT", 30*time.Second),
			MaxBodyBytes: envInt64Or("SITEGAUGE_FETCH_MAX_BODY", 10*1024*1024),
			Proxy:        os.Getenv("SITEGAUGE_PROXY"),
		},
		Store: StoreConfig{
			DataDir: envOr("SITEGAUGE_DATA_DIR", filepath.Join(os.TempDir(), "sitegauge")),
		},
		Worker: WorkerConfig{
			Count:     envIntOr("SITEGAUGE_WORKERS", 4),
			QueueSize: envIntOr("SITEGAUGE_QUEUE_SIZE", 256),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("SITEGAUGE_AUTH_ENABLED", false),
			APIKeys: envSliceOr("SITEGAUGE_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("SITEGAUGE_RATE_RPS", 5.0),
			Burst:             envIntOr("SITEGAUGE_RATE_BURST", 10),
		},
		Track: TrackConfig{
			URL:    os.Getenv("SITEGAUGE_TRACK_URL"),
			Secret: os.Getenv("SITEGAUGE_TRACK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("SITEGAUGE_LOG_LEVEL", "info"),
			Format: envOr("SITEGAUGE_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
