package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	// Places is the path to places.sqlite. Empty means "discover".
	Places string `yaml:"places"`
	// Output is the CSV file to write.
	Output string `yaml:"output"`
	// Timezone is "local", "UTC" or an IANA zone name.
	Timezone string `yaml:"timezone"`
	// Immutable opens the places database without taking any locks.
	Immutable bool `yaml:"immutable"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// ProfileRoots overrides the directories scanned for Firefox profiles.
	ProfileRoots []string `yaml:"profile_roots"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Output:   "bookmarks.csv",
		Timezone: "local",
		LogLevel: "info",
	}
}

// Load reads configuration from a YAML file and applies env var overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set in the environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides overrides config values with environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLACESEXPORT_PLACES"); v != "" {
		cfg.Places = v
	}
	if v := os.Getenv("PLACESEXPORT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("PLACESEXPORT_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("PLACESEXPORT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Location resolves Timezone. Empty and "local" mean the machine's zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
