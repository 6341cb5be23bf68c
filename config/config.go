// SPDX-License-Identifier: MIT

// Package config provides environment- and file-driven configuration for
// the traverser CLI.
//
// Precedence, highest first: command-line flags (applied by the caller),
// TRAVERSER_* environment variables, the YAML file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/traverser/log"
	"github.com/katalvlaran/traverser/playback"
	"github.com/katalvlaran/traverser/traversal"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all application configuration values.
type Config struct {
	GraphSize       int
	Start           string
	End             string
	Algorithm       traversal.Kind
	Speed           playback.Speed
	TraverseAll     bool
	Seed            int64 // 0 = time-seeded
	LogCap          int
	LogLevel        log.LogLevel
	LogBackend      string
	EdgeProbability float64
	WeightMin       int64
	WeightMax       int64
}

// fileConfig mirrors Config in the YAML file; pointers tell "unset" from zero.
type fileConfig struct {
	GraphSize       *int     `yaml:"graph_size"`
	Start           *string  `yaml:"start"`
	End             *string  `yaml:"end"`
	Algorithm       *string  `yaml:"algorithm"`
	Speed           *string  `yaml:"speed"`
	TraverseAll     *bool    `yaml:"traverse_all"`
	Seed            *int64   `yaml:"seed"`
	LogCap          *int     `yaml:"log_cap"`
	LogLevel        *string  `yaml:"log_level"`
	LogBackend      *string  `yaml:"log_backend"`
	EdgeProbability *float64 `yaml:"edge_probability"`
	WeightMin       *int64   `yaml:"weight_min"`
	WeightMax       *int64   `yaml:"weight_max"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		GraphSize:       38,
		Start:           "A",
		End:             "l",
		Algorithm:       traversal.Dijkstra,
		Speed:           playback.Fast,
		LogCap:          playback.DefaultLogCap,
		LogLevel:        log.LogLevelInfo,
		LogBackend:      log.BackendGolog,
		EdgeProbability: 0.06,
		WeightMin:       1,
		WeightMax:       20,
	}
}

// Load builds a Config from defaults, the YAML file at path (if path is
// non-empty, else TRAVERSER_CONFIG if set) and TRAVERSER_* variables,
// then validates it.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv("TRAVERSER_CONFIG")
	}
	if path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.overlayEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var f fileConfig
	if err = yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	setIf(&c.GraphSize, f.GraphSize)
	setIf(&c.Start, f.Start)
	setIf(&c.End, f.End)
	setIf(&c.TraverseAll, f.TraverseAll)
	setIf(&c.Seed, f.Seed)
	setIf(&c.LogCap, f.LogCap)
	setIf(&c.LogBackend, f.LogBackend)
	setIf(&c.EdgeProbability, f.EdgeProbability)
	setIf(&c.WeightMin, f.WeightMin)
	setIf(&c.WeightMax, f.WeightMax)

	if f.Algorithm != nil {
		if c.Algorithm, err = traversal.ParseKind(*f.Algorithm); err != nil {
			return fmt.Errorf("config: %s: algorithm: %w", path, err)
		}
	}
	if f.Speed != nil {
		if c.Speed, err = playback.ParseSpeed(*f.Speed); err != nil {
			return fmt.Errorf("config: %s: speed: %w", path, err)
		}
	}
	if f.LogLevel != nil {
		if c.LogLevel, err = log.ParseLevel(*f.LogLevel); err != nil {
			return fmt.Errorf("config: %s: log_level: %w", path, err)
		}
	}

	return nil
}

func (c *Config) overlayEnv() error {
	var err error
	if v, ok := os.LookupEnv("TRAVERSER_GRAPH_SIZE"); ok {
		if c.GraphSize, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("TRAVERSER_GRAPH_SIZE must be an integer: %w", err)
		}
	}
	c.Start = envOrDefault("TRAVERSER_START", c.Start)
	c.End = envOrDefault("TRAVERSER_END", c.End)
	if v, ok := os.LookupEnv("TRAVERSER_ALGORITHM"); ok {
		if c.Algorithm, err = traversal.ParseKind(v); err != nil {
			return fmt.Errorf("TRAVERSER_ALGORITHM: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_SPEED"); ok {
		if c.Speed, err = playback.ParseSpeed(v); err != nil {
			return fmt.Errorf("TRAVERSER_SPEED: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_TRAVERSE_ALL"); ok {
		if c.TraverseAll, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("TRAVERSER_TRAVERSE_ALL must be a boolean: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_SEED"); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("TRAVERSER_SEED must be an integer: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_LOG_CAP"); ok {
		if c.LogCap, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("TRAVERSER_LOG_CAP must be an integer: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_LOG_LEVEL"); ok {
		if c.LogLevel, err = log.ParseLevel(v); err != nil {
			return fmt.Errorf("TRAVERSER_LOG_LEVEL: %w", err)
		}
	}
	c.LogBackend = envOrDefault("TRAVERSER_LOG_BACKEND", c.LogBackend)
	if v, ok := os.LookupEnv("TRAVERSER_EDGE_PROBABILITY"); ok {
		if c.EdgeProbability, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("TRAVERSER_EDGE_PROBABILITY must be a number: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_WEIGHT_MIN"); ok {
		if c.WeightMin, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("TRAVERSER_WEIGHT_MIN must be an integer: %w", err)
		}
	}
	if v, ok := os.LookupEnv("TRAVERSER_WEIGHT_MAX"); ok {
		if c.WeightMax, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("TRAVERSER_WEIGHT_MAX must be an integer: %w", err)
		}
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
