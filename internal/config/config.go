package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
	"github.com/KasumiMercury/primind-location-remind/internal/geofence"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	PubSub   PubSubConfig
	Geofence GeofenceConfig
	Location LocationConfig
	Device   DeviceConfig
	Tracing  TracingConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
}

// PubSubConfig leaves event publishing and transition intake disabled when
// NatsURL is empty.
type PubSubConfig struct {
	NatsURL string
}

type GeofenceConfig struct {
	Strategy                    geofence.Strategy
	RequireBackgroundPermission bool
}

type LocationConfig struct {
	MaxAttempts int
	RetryDelay  time.Duration
}

// DeviceConfig seeds the permissions the device bridge starts with.
type DeviceConfig struct {
	Permissions []domain.Permission
}

type TracingConfig struct {
	Enabled     bool
	Environment string
}

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	slowThreshold, err := time.ParseDuration(getEnv("DB_SLOW_THRESHOLD", "200ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_SLOW_THRESHOLD: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	strategy, err := geofence.ParseStrategy(os.Getenv("GEOFENCE_STRATEGY"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_STRATEGY: %w", err)
	}

	requireBackground, err := strconv.ParseBool(getEnv("REQUIRE_BACKGROUND_PERMISSION", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUIRE_BACKGROUND_PERMISSION: %w", err)
	}

	maxAttempts, err := strconv.Atoi(getEnv("LOCATION_MAX_ATTEMPTS", strconv.Itoa(domain.DefaultMaxLocationAttempts)))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCATION_MAX_ATTEMPTS: %w", err)
	}

	if maxAttempts < 1 {
		return nil, fmt.Errorf("invalid LOCATION_MAX_ATTEMPTS: must be at least 1, got %d", maxAttempts)
	}

	retryDelay, err := time.ParseDuration(getEnv("LOCATION_RETRY_DELAY", domain.DefaultLocationRetryDelay.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCATION_RETRY_DELAY: %w", err)
	}

	permissions, err := parsePermissions(getEnv("DEVICE_PERMISSIONS", "fine_location,background_location"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_PERMISSIONS: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnv("TRACING_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			DSN:             dsn,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
			SlowThreshold:   slowThreshold,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		PubSub: PubSubConfig{
			NatsURL: os.Getenv("NATS_URL"),
		},
		Geofence: GeofenceConfig{
			Strategy:                    strategy,
			RequireBackgroundPermission: requireBackground,
		},
		Location: LocationConfig{
			MaxAttempts: maxAttempts,
			RetryDelay:  retryDelay,
		},
		Device: DeviceConfig{
			Permissions: permissions,
		},
		Tracing: TracingConfig{
			Enabled:     tracingEnabled,
			Environment: getEnv("ENVIRONMENT", "development"),
		},
	}, nil
}

func parsePermissions(raw string) ([]domain.Permission, error) {
	permissions := make([]domain.Permission, 0, 2)

	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		permission, err := domain.NewPermission(p)
		if err != nil {
			return nil, err
		}

		permissions = append(permissions, permission)
	}

	return permissions, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
