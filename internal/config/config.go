// Package config loads server settings from the environment. cmd/server
// applies its flags on top.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/junglerando/rando-api/internal/errors"
)

// Config is the server configuration
type Config struct {
	HTTPPort int `env:"RANDO_HTTP_PORT" envDefault:"8000"`
	GRPCPort int `env:"RANDO_GRPC_PORT" envDefault:"50051"`

	MaxWorkers int           `env:"RANDO_MAX_WORKERS" envDefault:"2"`
	JobTimeout time.Duration `env:"RANDO_JOB_TIMEOUT" envDefault:"300s"`
	ResultTTL  time.Duration `env:"RANDO_RESULT_TTL" envDefault:"1h"`

	RedisAddr string `env:"RANDO_REDIS_ADDR" envDefault:"localhost:6379"`

	// Hosted turns on the seed table and the error table
	Hosted       bool   `env:"HOSTED_SERVER" envDefault:"false"`
	ErrorLogPath string `env:"RANDO_ERROR_LOG_PATH" envDefault:"generation_errors.db"`

	CORSOrigin string `env:"RANDO_CORS_ORIGIN" envDefault:"*"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and hosted-only requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("http_port", c.HTTPPort, 1, 65535, vb)
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if c.HTTPPort == c.GRPCPort {
		vb.Field("grpc_port", "must differ from http_port")
	}
	if c.MaxWorkers < 1 {
		vb.Field("max_workers", "must be at least 1")
	}
	if c.JobTimeout <= 0 {
		vb.Field("job_timeout", "must be positive")
	}
	if c.ResultTTL <= 0 {
		vb.Field("result_ttl", "must be positive")
	}
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	if c.Hosted {
		errors.ValidateRequired("error_log_path", c.ErrorLogPath, vb)
	}
	return vb.Build()
}
