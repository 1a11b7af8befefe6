package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Storage  StorageConfig
	Presence PresenceConfig
	Backup   BackupConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
	// SessionExpiration is the refresh token lifetime used when the user
	// does not ask to be remembered.
	SessionExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// PresenceConfig controls the activity heartbeat and the online
// staleness window.
type PresenceConfig struct {
	HeartbeatInterval time.Duration
	OnlineTTL         time.Duration
}

type BackupConfig struct {
	Dir      string
	Interval time.Duration
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "naumur_presence"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "336h"),
		SessionExpiration: getEnv("JWT_SESSION_EXPIRATION_TIME", "12h"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Presence configuration
	heartbeat, err := time.ParseDuration(getEnv("PRESENCE_HEARTBEAT_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRESENCE_HEARTBEAT_INTERVAL: %w", err)
	}
	onlineTTL, err := time.ParseDuration(getEnv("PRESENCE_ONLINE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRESENCE_ONLINE_TTL: %w", err)
	}
	config.Presence = PresenceConfig{
		HeartbeatInterval: heartbeat,
		OnlineTTL:         onlineTTL,
	}

	// Backup configuration
	backupInterval, err := time.ParseDuration(getEnv("BACKUP_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_INTERVAL: %w", err)
	}
	config.Backup = BackupConfig{
		Dir:      getEnv("BACKUP_DIR", "./backups"),
		Interval: backupInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Presence.OnlineTTL < c.Presence.HeartbeatInterval {
		return fmt.Errorf("PRESENCE_ONLINE_TTL must not be shorter than the heartbeat interval")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
