package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/harrison/different/internal/diff"
	"gopkg.in/yaml.v3"
)

// DiffConfig represents diff report presentation options
type DiffConfig struct {
	// LeftMarker and RightMarker are single characters repeated in the headers
	LeftMarker  string `yaml:"left_marker"`
	RightMarker string `yaml:"right_marker"`

	// MarkerCount is how many times each marker is repeated
	MarkerCount int `yaml:"marker_count"`

	// IndentSpaces is the indent before each line number column
	IndentSpaces int `yaml:"indent_spaces"`

	// LeftColor and RightColor are color names such as "green" or "bright_red"
	LeftColor  string `yaml:"left_color"`
	RightColor string `yaml:"right_color"`

	// ForceColor enables color even when output is not a terminal
	ForceColor bool `yaml:"force_color"`

	// NoColor disables color unconditionally
	NoColor bool `yaml:"no_color"`
}

// Config represents different configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// PrintDiffs prints a diff report when a textual check fails
	PrintDiffs bool `yaml:"print_diffs"`

	// TemplateDir is the directory templates are loaded from
	TemplateDir string `yaml:"template_dir"`

	// EnvPrefix selects environment variables exposed as check variables
	EnvPrefix string `yaml:"env_prefix"`

	// Diff contains report presentation options
	Diff DiffConfig `yaml:"diff"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		PrintDiffs: true,
		Diff: DiffConfig{
			LeftMarker:   string(diff.DefaultLeftMarker),
			RightMarker:  string(diff.DefaultRightMarker),
			MarkerCount:  diff.DefaultMarkerCount,
			IndentSpaces: diff.DefaultIndentSpaces,
			LeftColor:    "green",
			RightColor:   "red",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from explicit zero values such as
	// print_diffs: false or indent_spaces: 0.
	type yamlDiffConfig struct {
		LeftMarker   *string `yaml:"left_marker"`
		RightMarker  *string `yaml:"right_marker"`
		MarkerCount  *int    `yaml:"marker_count"`
		IndentSpaces *int    `yaml:"indent_spaces"`
		LeftColor    *string `yaml:"left_color"`
		RightColor   *string `yaml:"right_color"`
		ForceColor   *bool   `yaml:"force_color"`
		NoColor      *bool   `yaml:"no_color"`
	}
	type yamlConfig struct {
		LogLevel    *string        `yaml:"log_level"`
		PrintDiffs  *bool          `yaml:"print_diffs"`
		TemplateDir *string        `yaml:"template_dir"`
		EnvPrefix   *string        `yaml:"env_prefix"`
		Diff        yamlDiffConfig `yaml:"diff"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.MergeWithFlags(yamlCfg.LogLevel, yamlCfg.PrintDiffs, yamlCfg.TemplateDir, yamlCfg.EnvPrefix)
	d := yamlCfg.Diff
	cfg.Diff.MergeWithFlags(d.LeftMarker, d.RightMarker, d.MarkerCount, d.IndentSpaces,
		d.LeftColor, d.RightColor, d.ForceColor, d.NoColor)

	// A relative template_dir is relative to the config file
	if yamlCfg.TemplateDir != nil && cfg.TemplateDir != "" && !filepath.IsAbs(cfg.TemplateDir) {
		cfg.TemplateDir = filepath.Join(filepath.Dir(path), cfg.TemplateDir)
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, printDiffs *bool, templateDir *string, envPrefix *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if printDiffs != nil {
		c.PrintDiffs = *printDiffs
	}
	if templateDir != nil {
		c.TemplateDir = *templateDir
	}
	if envPrefix != nil {
		c.EnvPrefix = *envPrefix
	}
}

// MergeWithFlags merges diff presentation flags into the configuration
// Non-nil flag values override configuration values
func (d *DiffConfig) MergeWithFlags(leftMarker, rightMarker *string, markerCount, indentSpaces *int, leftColor, rightColor *string, forceColor, noColor *bool) {
	if leftMarker != nil {
		d.LeftMarker = *leftMarker
	}
	if rightMarker != nil {
		d.RightMarker = *rightMarker
	}
	if markerCount != nil {
		d.MarkerCount = *markerCount
	}
	if indentSpaces != nil {
		d.IndentSpaces = *indentSpaces
	}
	if leftColor != nil {
		d.LeftColor = *leftColor
	}
	if rightColor != nil {
		d.RightColor = *rightColor
	}
	if forceColor != nil {
		d.ForceColor = *forceColor
	}
	if noColor != nil {
		d.NoColor = *noColor
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return c.Diff.Validate()
}

// Validate validates the diff presentation values
func (d *DiffConfig) Validate() error {
	if utf8.RuneCountInString(d.LeftMarker) != 1 {
		return fmt.Errorf("diff.left_marker must be a single character, got %q", d.LeftMarker)
	}
	if utf8.RuneCountInString(d.RightMarker) != 1 {
		return fmt.Errorf("diff.right_marker must be a single character, got %q", d.RightMarker)
	}
	if d.MarkerCount <= 0 {
		return fmt.Errorf("diff.marker_count must be > 0, got %d", d.MarkerCount)
	}
	if d.IndentSpaces < 0 {
		return fmt.Errorf("diff.indent_spaces must be >= 0, got %d", d.IndentSpaces)
	}
	if _, err := diff.ParseColor(d.LeftColor); err != nil {
		return fmt.Errorf("diff.left_color: %w", err)
	}
	if _, err := diff.ParseColor(d.RightColor); err != nil {
		return fmt.Errorf("diff.right_color: %w", err)
	}
	if d.ForceColor && d.NoColor {
		return fmt.Errorf("diff: %w", diff.ErrConflictingColorFlags)
	}
	return nil
}

// Settings converts the configuration into diff settings
// The configuration must be valid
func (d *DiffConfig) Settings() (diff.Settings, error) {
	if err := d.Validate(); err != nil {
		return diff.Settings{}, err
	}

	s := diff.DefaultSettings()
	s.LeftMarker, _ = utf8.DecodeRuneInString(d.LeftMarker)
	s.RightMarker, _ = utf8.DecodeRuneInString(d.RightMarker)
	s.MarkerCount = d.MarkerCount
	s = s.WithIndent(d.IndentSpaces)
	s.LeftColor, _ = diff.ParseColor(d.LeftColor)
	s.RightColor, _ = diff.ParseColor(d.RightColor)
	s.ForceColor = d.ForceColor
	s.NoColor = d.NoColor
	return s, nil
}

// DiffSettings converts the diff section into renderer settings
func (c *Config) DiffSettings() (diff.Settings, error) {
	return c.Diff.Settings()
}
