package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Application settings
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Dashboard DashboardConfig
	External  ExternalConfig
}

// Server settings
type ServerConfig struct {
	Port               string
	Environment        string
	RequestTimeout     time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
}

// IsDevelopment reports whether internal error detail may be exposed to clients.
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

// Dummy data generation settings
type DashboardConfig struct {
	Advertisers    []string
	Keywords       []string
	Days           int
	Seed           int64
	WorkerPoolSize int
}

type ExternalConfig struct {
	SinkURL            string
	SinkSecret         string
	RequestTimeout     time.Duration
	RateLimitPerSecond int
}

// Logging settings
type LoggingConfig struct {
	Level string
}

var defaultKeywords = []string{"브랜드명", "운동화", "러닝화", "스니커즈", "등산화", "샌들", "슬리퍼", "구두"}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			Environment:        getEnv("APP_ENV", "production"),
			RequestTimeout:     getDurationEnv("HTTP_TIMEOUT", "30s"),
			RateLimitPerSecond: getIntEnv("API_RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     getIntEnv("API_RATE_LIMIT_BURST", 100),
		},
		Dashboard: DashboardConfig{
			Advertisers:    getListEnv("ADVERTISERS", []string{"demo"}),
			Keywords:       getListEnv("KEYWORDS", defaultKeywords),
			Days:           getIntEnv("CHART_DAYS", 30),
			Seed:           int64(getIntEnv("DATA_SEED", 42)),
			WorkerPoolSize: getIntEnv("WORKER_POOL_SIZE", 4),
		},
		External: ExternalConfig{
			SinkURL:            getEnv("SINK_URL", ""),
			SinkSecret:         getEnv("SINK_SECRET", ""),
			RequestTimeout:     getDurationEnv("REQUEST_TIMEOUT", "30s"),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 100),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

// comma separated, blanks dropped
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
