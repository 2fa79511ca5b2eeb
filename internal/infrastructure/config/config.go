package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// devJWTSecret is used when JWT_SECRET is unset. Acceptable only for local
// development; deployments must supply a real secret.
const devJWTSecret = "dev"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=8h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=barangay_records"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
	}
	return &cfg
}

// Development reports whether the process runs with development defaults.
func (c *Config) Development() bool {
	return c.Env == "development"
}
