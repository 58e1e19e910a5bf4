package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the dump settings. Values from a config file are overridden by
// flags given on the command line.
type Config struct {
	Format        string `toml:"format"`  // text or json
	Workers       int    `toml:"workers"` // map files decoded in parallel
	Pattern       string `toml:"pattern"` // map save glob inside a slot directory
	LogLevel      string `toml:"log_level"`
	SkipThumbnail bool   `toml:"skip_thumbnail"`
}

const (
	DefaultFormat   = "text"
	DefaultPattern  = "*.SAV"
	DefaultLogLevel = "info"
)

func DefaultConfig() Config {
	return Config{
		Format:        DefaultFormat,
		Workers:       runtime.GOMAXPROCS(0),
		Pattern:       DefaultPattern,
		LogLevel:      DefaultLogLevel,
		SkipThumbnail: true,
	}
}

// LoadConfig reads a TOML config file on top of the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, conf.Validate()
}

func (c Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.Pattern == "" {
		return fmt.Errorf("config: empty map pattern")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return level, nil
}
