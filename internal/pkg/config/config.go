package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and never
// mutated afterwards. Both services read the same JWT settings so tokens
// issued by the login service verify at the account service.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// LoginURL is where the account service's gate sends unauthenticated
	// requests; the login page lives on the login service.
	LoginURL string `env:"LOGIN_URL, default=http://localhost:8080/login"`

	JWT      JWTConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type JWTConfig struct {
	Secret     string `env:"JWT_SECRET,                  default=bankstack-secret-key"`
	Algorithm  string `env:"JWT_ALGORITHM,               default=HS256"`
	TTLMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=60"`
}

// TTL returns the configured token lifetime as a duration.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bankstack"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ThrottleConfig struct {
	MaxFailures   int `env:"LOGIN_MAX_FAILURES,           default=10"`
	WindowMinutes int `env:"LOGIN_FAILURE_WINDOW_MINUTES, default=15"`
}

// Window returns the configured throttle window as a duration.
func (c ThrottleConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
