package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	API       APIConfig
	Session   SessionConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// APIConfig holds the external society API configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds browser session configuration
type SessionConfig struct {
	Driver     string
	CookieName string
	TTL        time.Duration
	Secure     bool
	FilePath   string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	SessionPurgeCronExpression string
}

// Session drivers
const (
	SessionDriverMemory   = "memory"
	SessionDriverPostgres = "postgres"
	SessionDriverRedis    = "redis"
	SessionDriverFile     = "file"
)

// DefaultAPITimeout is the fixed timeout for calls to the external API
const DefaultAPITimeout = 120 * time.Second

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current environment only
func FromEnv() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
			Timeout: DefaultAPITimeout,
		},
		Session: SessionConfig{
			Driver:     strings.ToLower(getEnv("SESSION_DRIVER", SessionDriverMemory)),
			CookieName: getEnv("SESSION_COOKIE_NAME", "society_admin_sid"),
			TTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			Secure:     getEnvAsBool("SESSION_COOKIE_SECURE", false),
			FilePath:   getEnv("SESSION_FILE", "sessions.json"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "society_admin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001,http://127.0.0.1:3000,http://127.0.0.1:3001"),
		},
		Scheduler: SchedulerConfig{
			SessionPurgeCronExpression: getEnv("SESSION_PURGE_CRON_EXPRESSION", "0 */15 * * * *"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that would make the service unusable
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	switch c.Session.Driver {
	case SessionDriverMemory, SessionDriverPostgres, SessionDriverRedis, SessionDriverFile:
	default:
		return fmt.Errorf("unknown SESSION_DRIVER %q", c.Session.Driver)
	}
	return nil
}

// NeedsDatabase reports whether postgres must be connected at startup
func (c *Config) NeedsDatabase() bool {
	return c.Session.Driver == SessionDriverPostgres
}

// Origins returns the configured CORS origins as a slice
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets an environment variable as bool with a fallback value
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("90s") or plain seconds ("90")
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
