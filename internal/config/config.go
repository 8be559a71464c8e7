package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Cache    CacheConfig    `toml:"cache"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path" env:"METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"METRICS_SERVICE_NAME"`
}

// BookingConfig бизнес-параметры расписания и бронирования
type BookingConfig struct {
	// MaxBookingsPerBlock вместимость одного блока доступности
	MaxBookingsPerBlock int `toml:"max_bookings_per_block" env:"BOOKING_MAX_PER_BLOCK"`
	// MinWeeklyHours минимум рабочих часов мойщика в каждой неделе месяца
	MinWeeklyHours float64 `toml:"min_weekly_hours" env:"BOOKING_MIN_WEEKLY_HOURS"`
	// DefaultZip ZIP по умолчанию, если мойщик его не указал
	DefaultZip string `toml:"default_zip" env:"BOOKING_DEFAULT_ZIP"`
	// Timezone часовой пояс, в котором интерпретируется время слотов
	Timezone string `toml:"timezone" env:"BOOKING_TIMEZONE"`
}

// Location возвращает часовой пояс бронирований
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// CacheConfig настройки in-memory кеша профилей мойщиков
type CacheConfig struct {
	WashersEnabled bool `toml:"washers_enabled" env:"CACHE_WASHERS_ENABLED"`
	WashersSize    int  `toml:"washers_size" env:"CACHE_WASHERS_SIZE"`
}

// Load читает конфигурацию из TOML файла, затем применяет переменные окружения
// (включая .env файл, если он есть) и проверяет результат
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecodeFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "wash-service",
		},
		Booking: BookingConfig{
			MaxBookingsPerBlock: 3,
			MinWeeklyHours:      10,
			DefaultZip:          "00000",
			Timezone:            "UTC",
		},
		Cache: CacheConfig{
			WashersEnabled: true,
			WashersSize:    1000,
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Database.Host == "" || c.Database.DBName == "":
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	case c.Booking.MaxBookingsPerBlock <= 0:
		return fmt.Errorf("%w: booking.max_bookings_per_block must be positive", ErrInvalidConfig)
	case c.Booking.MinWeeklyHours < 0:
		return fmt.Errorf("%w: booking.min_weekly_hours must not be negative", ErrInvalidConfig)
	case c.Booking.DefaultZip == "":
		return fmt.Errorf("%w: booking.default_zip is required", ErrInvalidConfig)
	case c.Cache.WashersEnabled && c.Cache.WashersSize <= 0:
		return fmt.Errorf("%w: cache.washers_size must be positive", ErrInvalidConfig)
	}

	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
