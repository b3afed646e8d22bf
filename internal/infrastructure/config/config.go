package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=betting_core"`
}

// RedisConfig selects the cache transport: when both REST fields are set the
// adapter talks to the REST proxy, otherwise it connects directly to Addr.
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR, default=localhost:6379"`
	DB        int    `env:"REDIS_DB,   default=0"`
	RestURL   string `env:"UPSTASH_REDIS_REST_URL"`
	RestToken string `env:"UPSTASH_REDIS_REST_TOKEN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
