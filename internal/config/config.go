// Package config loads claudelint settings from defaults, a global file, a
// local file and the environment, highest priority last.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/claudelint/internal/report"
	"github.com/ariel-frischer/claudelint/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. CLAUDELINT_STRICT.
const EnvPrefix = "CLAUDELINT_"

// DefaultLocalPath is the local config file read when --config is not given.
const DefaultLocalPath = ".claudelint.json"

// Configuration represents the claudelint configuration
type Configuration struct {
	Strict            bool   `koanf:"strict"`
	AgentMaxLines     int    `koanf:"agent_max_lines" validate:"min=1"`
	SkillMaxLines     int    `koanf:"skill_max_lines" validate:"min=1"`
	OptionalHeadLines int    `koanf:"optional_head_lines" validate:"min=1"`
	Format            string `koanf:"format" validate:"oneof=text json"`
	Color             bool   `koanf:"color"` // colour is still dropped when stderr is not a terminal
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if globalPath, err := GlobalPath(); err == nil {
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LintOptions converts the configuration into validation options.
func (c *Configuration) LintOptions() validation.Options {
	return validation.Options{
		Strict:            c.Strict,
		AgentMaxLines:     c.AgentMaxLines,
		SkillMaxLines:     c.SkillMaxLines,
		OptionalHeadLines: c.OptionalHeadLines,
	}
}

// OutputFormat returns the parsed report format.
func (c *Configuration) OutputFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// GlobalPath returns ~/.claudelint/config.json.
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claudelint", "config.json"), nil
}

// envTransform converts environment variable names to config keys
// Example: CLAUDELINT_AGENT_MAX_LINES -> agent_max_lines
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
