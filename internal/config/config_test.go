package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/junglerando/rando-api/internal/config"
	"github.com/junglerando/rando-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Assert().Equal(8000, cfg.HTTPPort)
	s.Assert().Equal(50051, cfg.GRPCPort)
	s.Assert().Equal(2, cfg.MaxWorkers)
	s.Assert().Equal(300*time.Second, cfg.JobTimeout)
	s.Assert().Equal(time.Hour, cfg.ResultTTL)
	s.Assert().False(cfg.Hosted)
	s.Assert().Equal("*", cfg.CORSOrigin)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("HOSTED_SERVER", "true")
	s.T().Setenv("RANDO_MAX_WORKERS", "4")
	s.T().Setenv("RANDO_JOB_TIMEOUT", "90s")
	s.T().Setenv("RANDO_ERROR_LOG_PATH", "/var/lib/rando/errors.db")

	cfg, err := config.Load()
	s.Require().NoError(err)
	s.Assert().True(cfg.Hosted)
	s.Assert().Equal(4, cfg.MaxWorkers)
	s.Assert().Equal(90*time.Second, cfg.JobTimeout)
	s.Assert().Equal("/var/lib/rando/errors.db", cfg.ErrorLogPath)
}

func (s *ConfigTestSuite) TestParseError() {
	s.T().Setenv("RANDO_MAX_WORKERS", "two")

	_, err := config.Load()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	valid := func() *config.Config {
		return &config.Config{
			HTTPPort:   8000,
			GRPCPort:   50051,
			MaxWorkers: 2,
			JobTimeout: time.Minute,
			ResultTTL:  time.Hour,
			RedisAddr:  "localhost:6379",
		}
	}

	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{name: "port out of range", mutate: func(c *config.Config) { c.HTTPPort = 70000 }, field: "http_port"},
		{name: "same ports", mutate: func(c *config.Config) { c.GRPCPort = 8000 }, field: "grpc_port"},
		{name: "no workers", mutate: func(c *config.Config) { c.MaxWorkers = 0 }, field: "max_workers"},
		{name: "zero timeout", mutate: func(c *config.Config) { c.JobTimeout = 0 }, field: "job_timeout"},
		{name: "missing redis", mutate: func(c *config.Config) { c.RedisAddr = "" }, field: "redis_addr"},
		{name: "hosted without error log", mutate: func(c *config.Config) { c.Hosted = true }, field: "error_log_path"},
	}

	s.Require().NoError(valid().Validate())

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			s.Require().Error(err)
			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Assert().Contains(fields, tc.field)
		})
	}
}
