// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/fcomp/internal/source"
	"github.com/jeranaias/fcomp/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete fcomp configuration.
type Config struct {
	Diff  DiffConfig  `toml:"diff"`
	Input InputConfig `toml:"input"`
	UI    UIConfig    `toml:"ui"`
}

// DiffConfig contains edit script search settings.
type DiffConfig struct {
	// MaxDistance bounds the edit distance considered (-1 = unlimited,
	// 0 = only identical files pass).
	MaxDistance int `toml:"max_distance"`
	// MaxEdits bounds the edit nodes the search may allocate (0 = unlimited).
	MaxEdits int `toml:"max_edits"`
	// IgnoreCase compares lines under Unicode case folding.
	IgnoreCase bool `toml:"ignore_case"`
	// IgnoreSpace compares lines with all whitespace removed.
	IgnoreSpace bool `toml:"ignore_space"`
}

// InputConfig contains settings for reading the two files.
type InputConfig struct {
	// MaxLines refuses larger inputs (0 = unlimited).
	MaxLines int `toml:"max_lines"`
	// Normalize applies Unicode NFC to every line before comparing.
	Normalize bool `toml:"normalize"`
}

// UIConfig contains report output settings.
type UIConfig struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// Width truncates report lines to this many columns (0 = no limit).
	Width int `toml:"width"`
}

// Unlimited disables the max_distance bound.
const Unlimited = -1

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Diff: DiffConfig{
			MaxDistance: Unlimited,
			MaxEdits:    0,
		},
		Input: InputConfig{
			MaxLines: source.DefaultMaxLines,
		},
		UI: UIConfig{
			Color: ColorAuto,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the fcomp configuration directory (~/.fcomp).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".fcomp"), nil
}

// ConfigPath returns the config file path. FCOMP_CONFIG overrides the
// default location.
func ConfigPath() (string, error) {
	if p := os.Getenv("FCOMP_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the configuration from ConfigPath. A missing file is not an
// error: defaults and environment overrides are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		// No home directory: run on defaults.
		return finish(Default())
	}
	cfg, err := LoadFromPath(path)
	if errors.Is(err, fs.ErrNotExist) {
		return finish(Default())
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific TOML file, then applies
// environment overrides, defaults and validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadTOML decodes path into cfg. Keys absent from the file leave cfg
// untouched; keys fcomp does not know are rejected.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var errs ValidateErrors
		for _, key := range undecoded {
			errs = append(errs, ValidationError{Field: key.String(), Message: "unknown key"})
		}
		return fmt.Errorf("%s: %w", path, errs)
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to ConfigPath.
func Save(cfg *Config) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return path, SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# fcomp configuration file\n")
	buf.WriteString("# max_distance = -1 means unlimited; 0 means unlimited for max_edits, max_lines and width.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

// ApplyEnvOverrides applies FCOMP_* environment variables to c.
func (c *Config) ApplyEnvOverrides() error {
	var errs ValidateErrors

	intVar := func(name string, dst *int) {
		v := os.Getenv(name)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, ValidationError{Field: name, Message: fmt.Sprintf("not an integer: %q", v)})
			return
		}
		*dst = n
	}
	boolVar := func(name string, dst *bool) {
		if v := os.Getenv(name); v != "" {
			*dst = v == "1" || strings.EqualFold(v, "true")
		}
	}

	intVar("FCOMP_MAX_DISTANCE", &c.Diff.MaxDistance)
	intVar("FCOMP_MAX_EDITS", &c.Diff.MaxEdits)
	intVar("FCOMP_MAX_LINES", &c.Input.MaxLines)
	intVar("FCOMP_WIDTH", &c.UI.Width)
	boolVar("FCOMP_IGNORE_CASE", &c.Diff.IgnoreCase)
	boolVar("FCOMP_IGNORE_SPACE", &c.Diff.IgnoreSpace)
	boolVar("FCOMP_NORMALIZE", &c.Input.Normalize)
	if color := os.Getenv("FCOMP_COLOR"); color != "" {
		c.UI.Color = color
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %w", errs)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	nonNegative := func(field string, v int) {
		if v < 0 {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("must be non-negative, got %d", v),
			})
		}
	}
	if c.Diff.MaxDistance < Unlimited {
		errs = append(errs, ValidationError{
			Field:   "diff.max_distance",
			Message: fmt.Sprintf("must be -1 (unlimited) or non-negative, got %d", c.Diff.MaxDistance),
		})
	}
	nonNegative("diff.max_edits", c.Diff.MaxEdits)
	nonNegative("input.max_lines", c.Input.MaxLines)
	nonNegative("ui.width", c.UI.Width)

	switch strings.ToLower(c.UI.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.color",
			Message: fmt.Sprintf("invalid color mode '%s', must be one of: auto, always, never", c.UI.Color),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills settings that have no usable zero value.
func (c *Config) SetDefaults() {
	if c.UI.Color == "" {
		c.UI.Color = ColorAuto
	}
	c.UI.Color = strings.ToLower(c.UI.Color)
}
