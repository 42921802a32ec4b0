// Package config конфигурация сервиса из TOML файла
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/asavich/GymClub-BookingService/internal/domain"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Admin    AdminConfig    `toml:"admin"`
	Redis    RedisConfig    `toml:"redis"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig расписание зала: рабочие часы, шаг слотов и список услуг
type ScheduleConfig struct {
	OpenTime        string   `toml:"open_time"`         // "10:00"
	CloseTime       string   `toml:"close_time"`        // "20:00"
	SlotStepMinutes int      `toml:"slot_step_minutes"` // 15
	Services        []string `toml:"services"`          // ["Gym", "BJJ", "MMA", "Boxing"]
	// Дата бронирования допускается только в пределах [текущий год, текущий год + BookingYearWindow]
	BookingYearWindow int `toml:"booking_year_window"`
}

// AdminConfig настройки администраторского доступа.
// Пароль проверяется только на сервере, клиенту выдается подписанный токен.
type AdminConfig struct {
	Password      string `toml:"password"`
	TokenSecret   string `toml:"token_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// RedisConfig настройки кэша занятых слотов (опционально)
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// CORSConfig настройки CORS для браузерного виджета
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}

	if cfg.Schedule.OpenTime == "" {
		cfg.Schedule.OpenTime = domain.DefaultOpenTime
	}
	if cfg.Schedule.CloseTime == "" {
		cfg.Schedule.CloseTime = domain.DefaultCloseTime
	}
	if cfg.Schedule.SlotStepMinutes == 0 {
		cfg.Schedule.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if len(cfg.Schedule.Services) == 0 {
		cfg.Schedule.Services = domain.DefaultServices
	}
	if cfg.Schedule.BookingYearWindow == 0 {
		cfg.Schedule.BookingYearWindow = domain.BookingYearWindow
	}

	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "gymclub-booking-service"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Admin.TokenTTLHours == 0 {
		cfg.Admin.TokenTTLHours = 24
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.TTLSeconds == 0 {
		cfg.Redis.TTLSeconds = 30
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if cfg.Admin.Password == "" {
		return fmt.Errorf("admin.password is required")
	}
	if cfg.Admin.TokenSecret == "" {
		return fmt.Errorf("admin.token_secret is required")
	}
	if cfg.Schedule.SlotStepMinutes < 0 {
		return fmt.Errorf("schedule.slot_step_minutes must be positive")
	}
	return nil
}
