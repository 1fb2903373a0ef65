package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// backendRequirements lists the settings each storage backend cannot run without.
var backendRequirements = map[string]func(cfg *Config) []ValidationError{
	BackendFile: func(cfg *Config) []ValidationError {
		if strings.TrimSpace(cfg.DataFile) == "" {
			return []ValidationError{{Field: "storage.file", Message: "data file path is required"}}
		}
		return nil
	},
	BackendRedis: func(cfg *Config) []ValidationError {
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			return []ValidationError{{Field: "redis", Message: "redis.url or redis.host and redis.port are required"}}
		}
		return nil
	},
	BackendS3: func(cfg *Config) []ValidationError {
		if cfg.S3Bucket == "" {
			return []ValidationError{{Field: "s3.bucket", Message: "bucket name is required"}}
		}
		return nil
	},
	BackendSQL: func(cfg *Config) []ValidationError {
		var errs []ValidationError
		switch cfg.DBDriver {
		case "sqlite":
		case "postgres":
			if cfg.DBHost == "" || cfg.DBName == "" {
				errs = append(errs, ValidationError{Field: "db", Message: "db.host and db.name are required for postgres"})
			}
			if IsProduction() && cfg.DBPassword == "" {
				errs = append(errs, ValidationError{Field: "db.password", Message: "database password is required in production"})
			}
		default:
			errs = append(errs, ValidationError{Field: "db.driver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
		}
		return errs
	},
}

// ValidateConfig checks the configuration for the selected storage backend
// and the server settings.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	check, ok := backendRequirements[cfg.StorageBackend]
	if !ok {
		errs = append(errs, ValidationError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q", cfg.StorageBackend)})
	} else {
		errs = append(errs, check(cfg)...)
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{Field: "server.port", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if cfg.RateLimit < 0 {
		errs = append(errs, ValidationError{Field: "rate_limit.limit", Message: "must not be negative"})
	}
	if cfg.RateLimit > 0 && cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{Field: "rate_limit.window", Message: "must be positive when rate limiting is enabled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
