package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	Cache    CacheConfig    `json:"cache"`
	App      AppConfig      `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds document-store configuration
type DatabaseConfig struct {
	Mongo MongoConfig `json:"mongo"`
}

// MongoConfig holds MongoDB-specific configuration
type MongoConfig struct {
	URI            string        `json:"uri"`
	Database       string        `json:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout"`
	MaxPoolSize    int           `json:"maxPoolSize"`
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret      string `json:"secret"`
	ExpireHours int64  `json:"expireHours"`
}

// CacheConfig holds session-cache configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	TTL     time.Duration `json:"ttl"`
	Prefix  string        `json:"prefix"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	WebDomain string `json:"webDomain"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then values from a .env file,
// then hardcoded defaults.
func LoadFromEnv() (*Config, error) {
	// godotenv.Load reads the .env file into the environment only for keys
	// that are not already set, which gives the precedence above.
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		if loadErr = godotenv.Load(envPath); loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Mongo: MongoConfig{
				URI:            getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
				Database:       getEnvOrDefault("MONGO_DATABASE", "ciaan"),
				ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
				MaxPoolSize:    getEnvAsInt("MONGO_MAX_POOL_SIZE", 100),
			},
		},
		JWT: JWTConfig{
			Secret:      getEnvOrDefault("JWT_SECRET", ""),
			ExpireHours: int64(getEnvAsInt("JWT_EXPIRE_HOURS", 24)),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
			TTL:     getEnvAsDuration("CACHE_TTL", 24*time.Hour),
			Prefix:  getEnvOrDefault("CACHE_PREFIX", "ciaan:"),
			Redis: RedisConfig{
				Address:      getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:     getEnvOrDefault("REDIS_PASSWORD", ""),
				Database:     getEnvAsInt("REDIS_DATABASE", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
				MaxConnAge:   getEnvAsDuration("REDIS_MAX_CONN_AGE", 5*time.Minute),
			},
		},
		App: AppConfig{
			Name:      getEnvOrDefault("APP_NAME", "Ciaan"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.JWT.Secret) == "" {
		errs = append(errs, "JWT_SECRET is required")
	}
	if strings.TrimSpace(c.Database.Mongo.URI) == "" {
		errs = append(errs, "MONGO_URI is required")
	}
	if strings.TrimSpace(c.Database.Mongo.Database) == "" {
		errs = append(errs, "MONGO_DATABASE is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
