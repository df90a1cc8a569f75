package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/table-buddy/internal/domain"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Restaurant RestaurantConfig `toml:"restaurant"`
	Booking    BookingConfig    `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к БД
type DatabaseConfig struct {
	Driver              string `toml:"driver"` // postgres | memory
	Host                string `toml:"host"`
	Port                int    `toml:"port"`
	User                string `toml:"user"`
	Password            string `toml:"password"`
	DBName              string `toml:"dbname"`
	SSLMode             string `toml:"sslmode"`
	MaxOpenConns        int    `toml:"max_open_conns"`
	MaxIdleConns        int    `toml:"max_idle_conns"`
	ConnMaxLifetime     int    `toml:"conn_max_lifetime"` // секунды
	SerializableRetries int    `toml:"serializable_retries"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто - stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RestaurantConfig настройки ресторана
type RestaurantConfig struct {
	Name     string `toml:"name"`
	Timezone string `toml:"timezone"` // IANA, "Local" - часовой пояс сервера
}

// Location возвращает часовой пояс ресторана
func (c RestaurantConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// BookingConfig настройки движка бронирования
type BookingConfig struct {
	DefaultTurnaroundMinutes int    `toml:"default_turnaround_minutes"`
	SlotStepMinutes          int    `toml:"slot_step_minutes"`
	DefaultStatus            string `toml:"default_status"` // confirmed | pending
	PendingBlocks            bool   `toml:"pending_blocks"`
	ChainNextDaySearch       bool   `toml:"chain_next_day_search"`
	MaxLookaheadDays         int    `toml:"max_lookahead_days"`
}

// ReservationStatus возвращает статус, с которым создаются бронирования
func (c BookingConfig) ReservationStatus() domain.ReservationStatus {
	return domain.ReservationStatus(c.DefaultStatus)
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Driver:              DriverPostgres,
			Host:                "localhost",
			Port:                5432,
			User:                "postgres",
			DBName:              "tablebuddy",
			SSLMode:             "disable",
			MaxOpenConns:        25,
			MaxIdleConns:        5,
			ConnMaxLifetime:     300,
			SerializableRetries: 3,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "table-buddy",
		},
		Restaurant: RestaurantConfig{
			Name:     "Table Buddy",
			Timezone: "Local",
		},
		Booking: BookingConfig{
			DefaultTurnaroundMinutes: domain.DefaultTurnaroundMinutes,
			SlotStepMinutes:          domain.DefaultSlotStepMinutes,
			DefaultStatus:            string(domain.DefaultReservationStatus),
			PendingBlocks:            false,
			ChainNextDaySearch:       false,
			MaxLookaheadDays:         domain.DefaultMaxLookaheadDays,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию
// и применяет переопределения из окружения (DB_HOST, DB_PORT, DB_PASSWORD)
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DB_PORT must be a number", ErrInvalidConfig)
		}
		c.Database.Port = port
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("%w: database.driver must be %q or %q", ErrInvalidConfig, DriverPostgres, DriverMemory)
	}

	if _, err := c.Restaurant.Location(); err != nil {
		return fmt.Errorf("%w: restaurant.timezone: %v", ErrInvalidConfig, err)
	}

	b := c.Booking
	if b.DefaultTurnaroundMinutes < domain.MinTurnaroundMinutes || b.DefaultTurnaroundMinutes > domain.MaxTurnaroundMinutes {
		return fmt.Errorf("%w: booking.default_turnaround_minutes must be between %d and %d",
			ErrInvalidConfig, domain.MinTurnaroundMinutes, domain.MaxTurnaroundMinutes)
	}
	if b.SlotStepMinutes <= 0 || b.SlotStepMinutes > 240 {
		return fmt.Errorf("%w: booking.slot_step_minutes must be between 1 and 240", ErrInvalidConfig)
	}
	switch domain.ReservationStatus(b.DefaultStatus) {
	case domain.ReservationStatusConfirmed, domain.ReservationStatusPending:
	default:
		return fmt.Errorf("%w: booking.default_status must be confirmed or pending", ErrInvalidConfig)
	}
	if b.MaxLookaheadDays < 1 || b.MaxLookaheadDays > 90 {
		return fmt.Errorf("%w: booking.max_lookahead_days must be between 1 and 90", ErrInvalidConfig)
	}

	return nil
}
