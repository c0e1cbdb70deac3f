package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Стратегии анализа снимков
const (
	StrategyRules   = "rules"
	StrategyAgentic = "agentic"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Analysis Config
	AnalysisStrategy string        `env:"ANALYSIS_STRATEGY" envDefault:"rules"`
	AdvisorTimeout   time.Duration `env:"ADVISOR_TIMEOUT" envDefault:"3s"`
	HistoryMaxDays   int           `env:"HISTORY_MAX_DAYS" envDefault:"30"`
	DemoSeed         int64         `env:"DEMO_SEED" envDefault:"0"`

	// Authentication
	APIKeys   []string `env:"API_KEYS"`
	JWTSecret string   `env:"JWT_SECRET"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AnalysisStrategy:  strings.ToLower(getEnv("ANALYSIS_STRATEGY", StrategyRules)),
		AdvisorTimeout:    getEnvAsDuration("ADVISOR_TIMEOUT", 3*time.Second),
		HistoryMaxDays:    getEnvAsInt("HISTORY_MAX_DAYS", 30),
		DemoSeed:          getEnvAsInt64("DEMO_SEED", 0),
		JWTSecret:         os.Getenv("JWT_SECRET"),
	}

	// Загрузка API ключей
	cfg.APIKeys = splitList(os.Getenv("API_KEYS"))

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, для которых нет разумного значения по умолчанию
func (c *Config) Validate() error {
	switch c.AnalysisStrategy {
	case StrategyRules, StrategyAgentic:
	default:
		return fmt.Errorf("unknown ANALYSIS_STRATEGY %q, expected %q or %q", c.AnalysisStrategy, StrategyRules, StrategyAgentic)
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1, got %d", c.WebhookMaxRetries)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
	}
	if c.HistoryMaxDays < 1 {
		return fmt.Errorf("HISTORY_MAX_DAYS must be at least 1, got %d", c.HistoryMaxDays)
	}
	if len(c.APIKeys) == 0 && c.JWTSecret == "" {
		return fmt.Errorf("either API_KEYS or JWT_SECRET must be configured")
	}
	return nil
}

// splitList разбирает список через запятую, отбрасывая пустые элементы
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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
