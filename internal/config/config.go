package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variables read by Load.
const EnvPrefix = "UPDATE_WEBHOOKS_"

// ErrInvalid is wrapped by validation failures returned from Load.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	File         string    `koanf:"file"`
	Format       string    `koanf:"format"` // lines, json
	GitHubOutput string    `koanf:"github_output"`
	Watch        bool      `koanf:"watch"`
	Trace        bool      `koanf:"trace"`
	Log          LogConfig `koanf:"log"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

// Load builds the configuration from an optional YAML file named by
// UPDATE_WEBHOOKS_CONFIG, GitHub Actions inputs and UPDATE_WEBHOOKS_*
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Action inputs arrive as INPUT_<NAME>
	if err := k.Load(env.Provider("INPUT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "INPUT_"))
	}), nil); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("format") {
		k.Set("format", "lines")
	}
	if !k.Exists("log.level") {
		k.Set("log.level", "info")
	}
	if !k.Exists("log.format") {
		k.Set("log.format", "json")
	}
	if !k.Exists("github_output") {
		k.Set("github_output", os.Getenv("GITHUB_OUTPUT"))
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "lines", "json":
	default:
		return fmt.Errorf("%w: format %q (want lines or json)", ErrInvalid, c.Format)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format %q (want json or text)", ErrInvalid, c.Log.Format)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
