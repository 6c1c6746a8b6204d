// Package config loads nodeedit settings from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// EnvVar names the environment variable holding the default config file.
const EnvVar = "NODEEDIT_CONFIG"

type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

type Config struct {
	// Indent is the indentation of saved documents.
	Indent      int           `yaml:"indent"`
	Color       Color         `yaml:"color"`
	SaveTimeout time.Duration `yaml:"saveTimeout"`
	LogLevel    string        `yaml:"logLevel"`
	// Editor overrides $VISUAL and $EDITOR.
	Editor string `yaml:"editor"`
}

func Default() *Config {
	return &Config{
		Indent:      2,
		Color:       ColorAuto,
		SaveTimeout: 5 * time.Second,
		LogLevel:    "info",
	}
}

// Load reads the config file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults. Data without content,
// such as an empty file or only comments, gives the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	f, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if isEmpty(f) {
		return cfg, nil
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isEmpty reports whether f holds no value. Decoding such a document
// zeroes the target.
func isEmpty(f *ast.File) bool {
	for _, doc := range f.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		switch doc.Body.Type() {
		case ast.NullType, ast.CommentType, ast.CommentGroupType:
			continue
		}
		return false
	}
	return true
}

// Find loads the config file at path, or the one named by $NODEEDIT_CONFIG
// if path is empty. With neither, it returns the defaults.
func Find(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > 16 {
		return fmt.Errorf("%w: indent %d out of range [0, 16]", ErrConfig, c.Indent)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrConfig, c.Color)
	}
	if c.SaveTimeout < 0 {
		return fmt.Errorf("%w: negative saveTimeout %s", ErrConfig, c.SaveTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: logLevel: %w", ErrConfig, err)
	}
	return l, nil
}
