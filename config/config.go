// Package config loads settings for the shadowmap tools from a YAML file,
// then applies SHADOWMAP_* environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/amp-labs/shadowmap/hashing"
	"github.com/amp-labs/shadowmap/logger"
	"github.com/amp-labs/shadowmap/persist"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvCodec     = "SHADOWMAP_CODEC"
	EnvHash      = "SHADOWMAP_HASH"
	EnvLogLevel  = "SHADOWMAP_LOG_LEVEL"
	EnvLogJSON   = "SHADOWMAP_LOG_JSON"
	EnvRedisAddr = "SHADOWMAP_REDIS_ADDR"
)

// ErrInvalidValue is returned when a setting cannot be interpreted.
var ErrInvalidValue = errors.New("invalid config value")

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type RedisConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

type Config struct {
	Codec string      `yaml:"codec"`
	Hash  string      `yaml:"hash"`
	Log   LogConfig   `yaml:"log"`
	Redis RedisConfig `yaml:"redis"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Codec: persist.JSON.Name(),
		Hash:  "xxh3",
		Log:   LogConfig{Level: "info"},
		Redis: RedisConfig{Prefix: "shadowmap"},
	}
}

// Load reads path over the defaults. An empty path skips the file. Unknown
// keys in the file are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file %q: %w", path, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		decoder.KnownFields(true)

		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCodec); ok {
		c.Codec = v
	}

	if v, ok := lookup(EnvHash); ok {
		c.Hash = v
	}

	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}

	if v, ok := lookup(EnvLogJSON); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLogJSON, v)
		}

		c.Log.JSON = b
	}

	if v, ok := lookup(EnvRedisAddr); ok {
		c.Redis.Addr = v
	}

	return nil
}

// Validate checks that the codec, hash and log level name something real.
func (c *Config) Validate() error {
	if _, err := persist.Lookup(c.Codec); err != nil {
		return err
	}

	if _, err := hashing.Lookup(c.Hash); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// CodecOrDefault resolves the configured codec.
func (c *Config) CodecOrDefault() persist.Codec {
	codec, err := persist.Lookup(c.Codec)
	if err != nil {
		return persist.JSON
	}

	return codec
}

// HashOrDefault resolves the hash function used for document keys.
func (c *Config) HashOrDefault() hashing.HashFunc {
	fn, err := hashing.Lookup(c.Hash)
	if err != nil {
		return hashing.Xxh3
	}

	return fn
}

// LoggingOptions converts the log section for logger.ConfigureLoggingWithOptions.
func (c *Config) LoggingOptions(subsystem string) logger.Options {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	return logger.Options{
		Subsystem:   subsystem,
		JSON:        c.Log.JSON,
		MinLevel:    level,
		LegacyLevel: slog.LevelInfo,
	}
}
