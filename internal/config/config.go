package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server  ServerConfig  // Настройки HTTP сервера
	API     APIConfig     // Настройки внешнего API с пользователями
	Session SessionConfig // Настройки сессии (JWT в cookie)
	Locale  LocaleConfig  // Настройки локализации
	Log     LogConfig     // Настройки логирования
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	Host string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
}

// APIConfig содержит адрес и таймаут внешнего API
type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:3000"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
}

// SessionConfig содержит настройки сессии пользователя
type SessionConfig struct {
	Secret          string `envconfig:"SESSION_SECRET" required:"true"`
	ExpirationHours int    `envconfig:"SESSION_EXPIRATION_HOURS" default:"24"`
	CookieName      string `envconfig:"SESSION_COOKIE" default:"teamboard_session"`
	Secure          bool   `envconfig:"SESSION_SECURE" default:"false"`
	AuthRequired    bool   `envconfig:"AUTH_REQUIRED" default:"true"`
}

// LocaleConfig содержит язык по умолчанию и резервный язык
type LocaleConfig struct {
	Default  string `envconfig:"LOCALE_DEFAULT" default:"zh"`
	Fallback string `envconfig:"LOCALE_FALLBACK" default:"en"`
}

// LogConfig содержит уровень логирования
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// GetExpiration возвращает срок действия сессии как time.Duration
func (s SessionConfig) GetExpiration() time.Duration {
	return time.Duration(s.ExpirationHours) * time.Hour
}

// SlogLevel возвращает уровень логирования для slog
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if c.Session.ExpirationHours <= 0 {
		return fmt.Errorf("SESSION_EXPIRATION_HOURS must be positive")
	}
	for _, lng := range []string{c.Locale.Default, c.Locale.Fallback} {
		if lng != "zh" && lng != "en" {
			return fmt.Errorf("unsupported locale %q", lng)
		}
	}
	return nil
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
