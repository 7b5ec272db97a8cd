package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port             string
	Environment      string
	LoggingConfig    LoggingConfig
	OpenSkyConfig    OpenSkyConfig
	OpenRouterConfig OpenRouterConfig
	RedisConfig      RedisConfig
	Region           Region
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// OpenSkyConfig holds flight-state provider configuration
type OpenSkyConfig struct {
	BaseURL string
	Timeout time.Duration
	// DefaultLimit caps how many raw state vectors are examined per request
	// when the caller does not supply one.
	DefaultLimit int
}

// OpenRouterConfig holds AI completion provider configuration.
// An empty APIKey disables the external insight tier entirely.
type OpenRouterConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// RedisConfig holds the optional Redis backend for the insight cache.
// When Enabled is false the formatter uses the in-process cache.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns the host:port address for the Redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	port := getEnv("PORT", "8080")
	environment := getEnv("ENVIRONMENT", "development")

	loggingConfig := LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}

	openSkyTimeout, err := time.ParseDuration(getEnv("OPENSKY_TIMEOUT", "10s"))
	if err != nil {
		openSkyTimeout = 10 * time.Second
	}
	defaultLimit, _ := strconv.Atoi(getEnv("OPENSKY_STATE_LIMIT", "50"))

	openSkyConfig := OpenSkyConfig{
		BaseURL:      getEnv("OPENSKY_BASE_URL", "https://opensky-network.org/api"),
		Timeout:      openSkyTimeout,
		DefaultLimit: defaultLimit,
	}

	openRouterTimeout, err := time.ParseDuration(getEnv("OPENROUTER_TIMEOUT", "10s"))
	if err != nil {
		openRouterTimeout = 10 * time.Second
	}
	maxTokens, _ := strconv.Atoi(getEnv("OPENROUTER_MAX_TOKENS", "120"))

	openRouterConfig := OpenRouterConfig{
		BaseURL:   getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		APIKey:    getEnv("OPENROUTER_API_KEY", ""),
		Model:     getEnv("OPENROUTER_MODEL", "microsoft/phi-3-mini-128k-instruct:free"),
		MaxTokens: maxTokens,
		Timeout:   openRouterTimeout,
	}

	redisEnabled, _ := strconv.ParseBool(getEnv("REDIS_CACHE_ENABLED", "false"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisConfig := RedisConfig{
		Enabled:  redisEnabled,
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	region, err := RegionByName(getEnv("REGION", DefaultRegionName))
	if err != nil {
		// Unknown region names fall back to the default deployment region
		// rather than refusing to start.
		region, _ = RegionByName(DefaultRegionName)
	}

	return &Config{
		Port:             port,
		Environment:      environment,
		LoggingConfig:    loggingConfig,
		OpenSkyConfig:    openSkyConfig,
		OpenRouterConfig: openRouterConfig,
		RedisConfig:      redisConfig,
		Region:           region,
	}, nil
}

// TestConfig returns a default test configuration
func TestConfig() *Config {
	region, _ := RegionByName(DefaultRegionName)
	return &Config{
		Port:        "8080",
		Environment: "test",
		LoggingConfig: LoggingConfig{
			Level:  "error",
			Format: "text",
		},
		OpenSkyConfig: OpenSkyConfig{
			BaseURL:      "http://localhost:0",
			Timeout:      time.Second,
			DefaultLimit: 50,
		},
		OpenRouterConfig: OpenRouterConfig{
			BaseURL:   "http://localhost:0",
			Model:     "microsoft/phi-3-mini-128k-instruct:free",
			MaxTokens: 120,
			Timeout:   time.Second,
		},
		Region: region,
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
