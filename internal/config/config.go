// Package config loads gearset settings from a YAML file and GEARSET_*
// environment variables.
package config

import (
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/optimizer"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog/bundled"
)

// Catalog sources
const (
	SourceBundled = "bundled"
	SourceFile    = "file"
	SourceRedis   = "redis"
	SourceSQLite  = "sqlite"
)

// Sources lists the accepted catalog sources
var Sources = []string{SourceBundled, SourceFile, SourceRedis, SourceSQLite}

// Config holds everything the gearset commands need.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Character CharacterConfig `yaml:"character"`
	Search    SearchConfig    `yaml:"search"`
	LogLevel  string          `yaml:"log_level" env:"GEARSET_LOG_LEVEL"`
}

// CatalogConfig selects where item records are read from.
type CatalogConfig struct {
	Source     string `yaml:"source" env:"GEARSET_CATALOG_SOURCE"`
	Name       string `yaml:"name" env:"GEARSET_CATALOG_NAME"`
	Dir        string `yaml:"dir" env:"GEARSET_CATALOG_DIR"`
	RedisAddr  string `yaml:"redis_addr" env:"GEARSET_REDIS_ADDR"`
	SQLitePath string `yaml:"sqlite_path" env:"GEARSET_SQLITE_PATH"`
}

// CharacterConfig describes the character being equipped.
type CharacterConfig struct {
	Level int    `yaml:"level" env:"GEARSET_LEVEL"`
	Class string `yaml:"class" env:"GEARSET_CLASS"`
	Align string `yaml:"align" env:"GEARSET_ALIGN"`
}

// SearchConfig tunes the optimizer.
type SearchConfig struct {
	Workers          int           `yaml:"workers" env:"GEARSET_WORKERS"`
	ProgressInterval time.Duration `yaml:"progress_interval" env:"GEARSET_PROGRESS_INTERVAL"`
}

// Default returns the configuration used when nothing overrides it: the
// bundled catalog and a level 31 Neutral Warrior.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			Source:     SourceBundled,
			Name:       bundled.DefaultName,
			RedisAddr:  "localhost:6379",
			SQLitePath: "gearset.db",
		},
		Character: CharacterConfig{
			Level: 31,
			Class: gear.Warrior.String(),
			Align: gear.Neutral.String(),
		},
		Search: SearchConfig{
			Workers:          min(runtime.NumCPU(), optimizer.MaxWorkers),
			ProgressInterval: 5 * time.Second,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error. An empty path
// skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
			}
		case os.IsNotExist(err):
			// defaults apply
		default:
			return cfg, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

// Validate checks every field, reporting all problems at once.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("catalog.source", c.Catalog.Source, Sources, vb)
	errors.ValidateRequired("catalog.name", c.Catalog.Name, vb)
	switch c.Catalog.Source {
	case SourceRedis:
		errors.ValidateRequired("catalog.redis_addr", c.Catalog.RedisAddr, vb)
	case SourceSQLite:
		errors.ValidateRequired("catalog.sqlite_path", c.Catalog.SQLitePath, vb)
	}

	errors.ValidateRange("character.level", c.Character.Level, 0, 255, vb)
	if _, ok := gear.ClassFromString(c.Character.Class); !ok {
		vb.Fieldf("character.class", "must be one of %s", strings.Join(gear.ClassNames(), ", "))
	}
	if _, ok := gear.AlignFromString(c.Character.Align); !ok {
		vb.Fieldf("character.align", "must be one of %s", strings.Join(gear.AlignNames(), ", "))
	}

	errors.ValidateRange("search.workers", c.Search.Workers, 0, optimizer.MaxWorkers, vb)
	if c.Search.ProgressInterval < 0 {
		vb.Field("search.progress_interval", "cannot be negative")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		vb.InvalidField("log_level", c.LogLevel)
	}

	return vb.Build()
}

// CharacterParams returns the parsed character settings. Call Validate first.
func (c *Config) CharacterParams() (level uint8, class gear.Class, align gear.Align) {
	class, _ = gear.ClassFromString(c.Character.Class)
	align, _ = gear.AlignFromString(c.Character.Align)
	return uint8(c.Character.Level), class, align
}

// SlogLevel returns the configured log level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
