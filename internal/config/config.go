package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mtallentb/nes-outage-viewer/internal/models"
)

// DefaultUpstreamURL - публичный эндпоинт карты отключений NES
const DefaultUpstreamURL = "https://utilisocial.io/datacapable/v2/p/NES/map/events"

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Домашняя точка. nil, если переменная не задана или не является числом
	HomeLat      *float64      `env:"HOME_LAT"`
	HomeLng      *float64      `env:"HOME_LNG"`
	RadiusMiles  float64       `env:"RADIUS_MILES" envDefault:"1"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5"` // в минутах

	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"PORT" envDefault:"3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"public"`

	// Upstream Config
	UpstreamURL     string        `env:"UPSTREAM_URL"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	UpstreamRPS     float64       `env:"UPSTREAM_RPS" envDefault:"1"`
	UpstreamBurst   int           `env:"UPSTREAM_BURST" envDefault:"3"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	// Trends Config
	TrendHours float64 `env:"TREND_HOURS" envDefault:"6"`
}

// ConfigError - ошибка обязательного или некорректного параметра конфигурации
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config: %s %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("config: %s=%q %s", e.Key, e.Value, e.Reason)
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HomeLat:         getEnvAsCoordinate("HOME_LAT"),
		HomeLng:         getEnvAsCoordinate("HOME_LNG"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPPort:        getEnv("PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		StaticDir:       getEnv("STATIC_DIR", "public"),
		UpstreamURL:     getEnv("UPSTREAM_URL", DefaultUpstreamURL),
		UpstreamTimeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamBurst:   getEnvAsInt("UPSTREAM_BURST", 3),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		CacheTTL:        getEnvAsDuration("CACHE_TTL", 30*time.Second),
	}

	var err error
	if cfg.RadiusMiles, err = getEnvAsPositiveFloat("RADIUS_MILES", 1); err != nil {
		return nil, err
	}
	pollMinutes, err := getEnvAsPositiveFloat("POLL_INTERVAL", 5)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = time.Duration(pollMinutes * float64(time.Minute))

	if cfg.UpstreamRPS, err = getEnvAsPositiveFloat("UPSTREAM_RPS", 1); err != nil {
		return nil, err
	}
	if cfg.TrendHours, err = getEnvAsPositiveFloat("TREND_HOURS", 6); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Home возвращает домашнюю точку или ConfigError, если координаты не заданы
func (c *Config) Home() (models.Location, error) {
	if c.HomeLat == nil {
		return models.Location{}, &ConfigError{Key: "HOME_LAT", Value: os.Getenv("HOME_LAT"), Reason: "must be set to a number"}
	}
	if c.HomeLng == nil {
		return models.Location{}, &ConfigError{Key: "HOME_LNG", Value: os.Getenv("HOME_LNG"), Reason: "must be set to a number"}
	}
	return models.Location{Lat: *c.HomeLat, Lng: *c.HomeLng}, nil
}

// TrendsEnabled сообщает, настроено ли хранилище снимков
func (c *Config) TrendsEnabled() bool {
	return c.DatabaseURL != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsCoordinate возвращает конечное число или nil
func getEnvAsCoordinate(key string) *float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// getEnvAsPositiveFloat возвращает положительное число или ConfigError
func getEnvAsPositiveFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, &ConfigError{Key: key, Value: value, Reason: "must be a positive number"}
	}
	return f, nil
}
