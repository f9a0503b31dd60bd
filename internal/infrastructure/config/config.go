package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs bearer tokens. No default: the process must be given
	// one explicitly.
	JWTSecret string `env:"JWT_SECRET, required"`
	// TokenTTLMinutes bounds the lifetime of issued tokens.
	TokenTTLMinutes int `env:"TOKEN_TTL_MINUTES, default=30"`
	// BcryptCost is the password hashing work factor (0 = library default).
	BcryptCost int `env:"BCRYPT_COST, default=0"`
	// CORSOrigins is a comma-separated list of allowed cross-origin callers.
	CORSOrigins string `env:"CORS_ORIGINS, default=http://localhost:5173,http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=taskdeck"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// AllowedOrigins splits CORSOrigins into individual origins.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
