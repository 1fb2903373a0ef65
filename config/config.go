package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends understood by storage.Open.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendS3    = "s3"
	BackendSQL   = "sql"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	AllowedOrigins []string

	// Catalog storage
	StorageBackend string
	DataFile       string
	BookName       string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	RedisURL       string
	RedisKeyPrefix string

	// S3 configuration
	S3Bucket  string
	AWSRegion string

	// Rate limiting for write endpoints
	RateLimit       int
	RateLimitWindow time.Duration

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from an optional config file, RECIPEBOOK_*
// environment variables and defaults, in that order of precedence from last
// to first.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("RECIPEBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := fromViper(v)
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.file", "recipes.json")
	v.SetDefault("storage.book", "default")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "recipes.db")
	v.SetDefault("db.ssl_mode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.key_prefix", "recipebook")

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "")

	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window", time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerHost:     v.GetString("server.host"),
		ServerPort:     v.GetString("server.port"),
		AllowedOrigins: splitList(v.GetStringSlice("server.allowed_origins")),

		StorageBackend: strings.ToLower(v.GetString("storage.backend")),
		DataFile:       v.GetString("storage.file"),
		BookName:       v.GetString("storage.book"),

		DBDriver:   strings.ToLower(v.GetString("db.driver")),
		DBHost:     v.GetString("db.host"),
		DBPort:     v.GetString("db.port"),
		DBUser:     v.GetString("db.user"),
		DBPassword: v.GetString("db.password"),
		DBName:     v.GetString("db.name"),
		DBSSLMode:  v.GetString("db.ssl_mode"),

		RedisHost:      v.GetString("redis.host"),
		RedisPort:      v.GetString("redis.port"),
		RedisPassword:  v.GetString("redis.password"),
		RedisDB:        v.GetInt("redis.db"),
		RedisURL:       v.GetString("redis.url"),
		RedisKeyPrefix: v.GetString("redis.key_prefix"),

		S3Bucket:  v.GetString("s3.bucket"),
		AWSRegion: v.GetString("s3.region"),

		RateLimit:       v.GetInt("rate_limit.limit"),
		RateLimitWindow: v.GetDuration("rate_limit.window"),

		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
	}
}

// Location returns where the active backend keeps the catalog: a file path
// for the file backend and a book name for the others.
func (c *Config) Location() string {
	if c.StorageBackend == BackendFile || c.StorageBackend == "" {
		return c.DataFile
	}
	return c.BookName
}

// DatabaseDSN builds the connection string for the configured driver.
func (c *Config) DatabaseDSN() string {
	if c.DBDriver == "postgres" {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
		)
	}
	return c.DBName
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// splitList flattens comma separated entries, which is how list values arrive
// from the environment.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
