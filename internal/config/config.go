package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Backend API
	APIBackendURL string        `env:"API_BACKEND_URL"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Session Config
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	// Incident form
	DraftTTL            time.Duration `env:"DRAFT_TTL" envDefault:"1h"`
	DepartmentsCacheTTL time.Duration `env:"DEPARTMENTS_CACHE_TTL" envDefault:"5m"`
	SubmitLockTTL       time.Duration `env:"SUBMIT_LOCK_TTL" envDefault:"30s"`
	MaxUploadMB         int           `env:"MAX_UPLOAD_MB" envDefault:"10"`

	// Map picker
	MapCenterLat float64 `env:"MAP_CENTER_LAT" envDefault:"20.5937"`
	MapCenterLng float64 `env:"MAP_CENTER_LNG" envDefault:"78.9629"`
	MapZoom      int     `env:"MAP_ZOOM" envDefault:"5"`
	MapTileURL   string  `env:"MAP_TILE_URL"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
	SlackWebhookURL   string        `env:"SLACK_WEBHOOK_URL"`
}

const DefaultMapTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		APIBackendURL:       strings.TrimRight(os.Getenv("API_BACKEND_URL"), "/"),
		APITimeout:          getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		SessionTTL:          getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:        getEnvAsBool("COOKIE_SECURE", false),
		DraftTTL:            getEnvAsDuration("DRAFT_TTL", time.Hour),
		DepartmentsCacheTTL: getEnvAsDuration("DEPARTMENTS_CACHE_TTL", 5*time.Minute),
		SubmitLockTTL:       getEnvAsDuration("SUBMIT_LOCK_TTL", 30*time.Second),
		MaxUploadMB:         getEnvAsInt("MAX_UPLOAD_MB", 10),
		MapCenterLat:        getEnvAsFloat("MAP_CENTER_LAT", 20.5937),
		MapCenterLng:        getEnvAsFloat("MAP_CENTER_LNG", 78.9629),
		MapZoom:             getEnvAsInt("MAP_ZOOM", 5),
		MapTileURL:          getEnv("MAP_TILE_URL", DefaultMapTileURL),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SlackWebhookURL:     os.Getenv("SLACK_WEBHOOK_URL"),
	}

	if cfg.APIBackendURL == "" {
		return nil, fmt.Errorf("API_BACKEND_URL environment variable is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	return cfg, nil
}

// MaxUploadBytes возвращает лимит размера загружаемого фото в байтах
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
