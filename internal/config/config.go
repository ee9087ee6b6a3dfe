// Package config loads notebook settings from notebook.yaml, .env files and
// NOTEBOOK_* environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/notebook/internal/platform"
)

// FileName is the config file looked up when no explicit path is given.
const FileName = platform.ConfigFileName

// Environment variables.
const (
	EnvStore     = "NOTEBOOK_STORE"
	EnvPath      = "NOTEBOOK_PATH"
	EnvCodec     = "NOTEBOOK_CODEC"
	EnvNotesKey  = "NOTEBOOK_NOTES_KEY"
	EnvFlagKey   = "NOTEBOOK_FLAG_KEY"
	EnvReadOnly  = "NOTEBOOK_READ_ONLY"
	EnvDevSafety = "NOTEBOOK_DEV_SAFETY"
)

// Config holds every user-facing setting.
type Config struct {
	Store     string `yaml:"store"`
	Path      string `yaml:"path"`
	Codec     string `yaml:"codec"`
	NotesKey  string `yaml:"notes_key"`
	FlagKey   string `yaml:"flag_key"`
	ReadOnly  bool   `yaml:"read_only"`
	DevSafety *bool  `yaml:"dev_safety,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Store: platform.AdapterFS,
		Path:  ".notebook",
		Codec: "json",
	}
}

// Load builds a Config from defaults, the YAML file at path and the environment.
// An empty path means FileName in the working directory, which may be absent.
// Dotenv files are loaded without overriding variables already set.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FileName
	}
	if err := cfg.readFile(path, explicit); err != nil {
		return cfg, err
	}

	if err := LoadDotenv(envFiles...); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// LoadDotenv loads the given dotenv files, or ".env" when none are given.
// Missing files are skipped.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from NOTEBOOK_* variables that are set.
func (c *Config) ApplyEnv() error {
	strs := map[string]*string{
		EnvStore:    &c.Store,
		EnvPath:     &c.Path,
		EnvCodec:    &c.Codec,
		EnvNotesKey: &c.NotesKey,
		EnvFlagKey:  &c.FlagKey,
	}
	for name, field := range strs {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field = v
		}
	}

	if v, ok := os.LookupEnv(EnvReadOnly); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvReadOnly, err)
		}
		c.ReadOnly = b
	}
	if v, ok := os.LookupEnv(EnvDevSafety); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDevSafety, err)
		}
		c.DevSafety = &b
	}
	return nil
}

// Options translates the settings into platform options.
func (c Config) Options(logger *slog.Logger) []platform.Option {
	opts := []platform.Option{
		platform.WithAdapter(c.Store),
		platform.WithCodec(c.Codec),
		platform.WithNotesKey(c.NotesKey),
		platform.WithFlagKey(c.FlagKey),
		platform.WithReadOnly(c.ReadOnly),
		platform.WithLogger(logger),
	}
	if c.DevSafety != nil {
		opts = append(opts, platform.WithDevSafety(*c.DevSafety))
	}
	return opts
}
