package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Parse()
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal("default", cfg.DefaultCharacterID)
	s.Equal(3*time.Second, cfg.Narrative.Debounce)
	s.Equal(20*time.Second, cfg.Narrative.Timeout)
	s.Equal("gpt-4o-mini", cfg.Narrative.Model)
	s.Equal("dall-e-3", cfg.Portrait.Model)
	s.Equal(24*time.Hour, cfg.RollLog.TTL)
	s.Equal(50, cfg.RollLog.Size)
	s.Equal(":50051", cfg.Addr())
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("SHEET_GRPC_PORT", "6000")
	s.T().Setenv("SHEET_STORE", " SQLite ")
	s.T().Setenv("NARRATIVE_DEBOUNCE", "500ms")
	s.T().Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Parse()
	s.Require().NoError(err)

	s.Equal(6000, cfg.GRPCPort)
	s.Equal(config.StoreSQLite, cfg.Store)
	s.Equal(500*time.Millisecond, cfg.Narrative.Debounce)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad store", "SHEET_STORE", "postgres"},
		{"port out of range", "SHEET_GRPC_PORT", "70000"},
		{"zero debounce", "NARRATIVE_DEBOUNCE", "0s"},
		{"empty roll log", "ROLL_LOG_SIZE", "0"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			_, err := config.Parse()
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *ConfigTestSuite) TestParseError() {
	s.T().Setenv("SHEET_GRPC_PORT", "not-a-number")

	_, err := config.Parse()
	s.Error(err)
	s.True(errors.IsInternal(err))
}
