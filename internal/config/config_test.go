package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gearset/internal/config"
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "gearset.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestMissingFileReturnsDefaults() {
	cfg, err := config.Load(filepath.Join(s.dir, "absent.yaml"))
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
	s.NoError(cfg.Validate())

	level, class, align := cfg.CharacterParams()
	s.Equal(uint8(31), level)
	s.Equal(gear.Warrior, class)
	s.Equal(gear.Neutral, align)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.write(`
catalog:
  source: sqlite
  name: winter
  sqlite_path: /tmp/items.db
character:
  level: 50
  class: mage
  align: Good
search:
  workers: 3
  progress_interval: 250ms
log_level: debug
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Require().NoError(cfg.Validate())

	s.Equal(config.SourceSQLite, cfg.Catalog.Source)
	s.Equal("winter", cfg.Catalog.Name)
	s.Equal("localhost:6379", cfg.Catalog.RedisAddr)
	s.Equal(3, cfg.Search.Workers)
	s.Equal(250*time.Millisecond, cfg.Search.ProgressInterval)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())

	level, class, align := cfg.CharacterParams()
	s.Equal(uint8(50), level)
	s.Equal(gear.Mage, class)
	s.Equal(gear.Good, align)
}

func (s *ConfigTestSuite) TestEnvironmentWinsOverFile() {
	path := s.write("character:\n  level: 12\n")
	s.T().Setenv("GEARSET_LEVEL", "40")
	s.T().Setenv("GEARSET_CATALOG_SOURCE", "redis")
	s.T().Setenv("GEARSET_REDIS_ADDR", "cache:6380")
	s.T().Setenv("GEARSET_PROGRESS_INTERVAL", "1s")

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(40, cfg.Character.Level)
	s.Equal(config.SourceRedis, cfg.Catalog.Source)
	s.Equal("cache:6380", cfg.Catalog.RedisAddr)
	s.Equal(time.Second, cfg.Search.ProgressInterval)
}

func (s *ConfigTestSuite) TestEmptyPathSkipsFile() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	_, err := config.Load(s.write("character: [not, a, map]\n"))
	s.True(errors.IsInvalidArgument(err))

	s.T().Setenv("GEARSET_WORKERS", "many")
	_, err = config.Load("")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		modify func(*config.Config)
		field  string
	}{
		{name: "unknown source", modify: func(c *config.Config) { c.Catalog.Source = "ftp" }, field: "catalog.source"},
		{name: "blank name", modify: func(c *config.Config) { c.Catalog.Name = " " }, field: "catalog.name"},
		{name: "redis without address", modify: func(c *config.Config) {
			c.Catalog.Source = config.SourceRedis
			c.Catalog.RedisAddr = ""
		}, field: "catalog.redis_addr"},
		{name: "sqlite without path", modify: func(c *config.Config) {
			c.Catalog.Source = config.SourceSQLite
			c.Catalog.SQLitePath = ""
		}, field: "catalog.sqlite_path"},
		{name: "level too high", modify: func(c *config.Config) { c.Character.Level = 256 }, field: "character.level"},
		{name: "negative level", modify: func(c *config.Config) { c.Character.Level = -1 }, field: "character.level"},
		{name: "unknown class", modify: func(c *config.Config) { c.Character.Class = "Bard" }, field: "character.class"},
		{name: "unknown align", modify: func(c *config.Config) { c.Character.Align = "Chaotic" }, field: "character.align"},
		{name: "too many workers", modify: func(c *config.Config) { c.Search.Workers = 10000 }, field: "search.workers"},
		{name: "negative interval", modify: func(c *config.Config) { c.Search.ProgressInterval = -time.Second }, field: "search.progress_interval"},
		{name: "bad log level", modify: func(c *config.Config) { c.LogLevel = "loud" }, field: "log_level"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.modify(&cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestValidateNil() {
	var cfg *config.Config
	s.True(errors.IsInvalidArgument(cfg.Validate()))
}
