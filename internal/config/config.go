// Package config loads readmegen settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-readmegen/internal/fileutil"
	"github.com/alnah/go-readmegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits; paths and markers beyond these are configuration
// mistakes, not real inputs.
const (
	MaxPathLength   = 4096
	MaxMarkerLength = 200
)

// Config holds all file-level configuration for README assembly.
// Zero values mean "use the built-in default".
type Config struct {
	CoverageReport   string          `yaml:"coverageReport"`   // HTML coverage report path
	Readme           string          `yaml:"readme"`           // README output path
	TestStatus       string          `yaml:"testStatus"`       // coverage table output path
	StatusMarker     string          `yaml:"statusMarker"`     // placeholder replaced by the coverage table
	SourceExtensions []string        `yaml:"sourceExtensions"` // extensions resolved through the generator
	Generator        GeneratorConfig `yaml:"generator"`
	Preview          PreviewConfig   `yaml:"preview"`
}

// GeneratorConfig defines how the external readme generator is invoked.
type GeneratorConfig struct {
	Command string `yaml:"command"` // binary name (default "cargo")
}

// PreviewConfig defines the optional HTML preview artifact.
type PreviewConfig struct {
	Enabled bool   `yaml:"enabled"`
	Output  string `yaml:"output"` // default "README.html"
}

// Validate checks field shapes. Called automatically by Load, but available
// for consumers who construct Config manually.
func (c *Config) Validate() error {
	paths := map[string]string{
		"coverageReport": c.CoverageReport,
		"readme":         c.Readme,
		"testStatus":     c.TestStatus,
		"preview.output": c.Preview.Output,
	}
	for field, value := range paths {
		if len(value) > MaxPathLength {
			return fmt.Errorf("%w: %s exceeds %d chars", ErrInvalidField, field, MaxPathLength)
		}
	}

	if len(c.StatusMarker) > MaxMarkerLength {
		return fmt.Errorf("%w: statusMarker exceeds %d chars", ErrInvalidField, MaxMarkerLength)
	}

	for i, ext := range c.SourceExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: sourceExtensions[%d] %q must start with a dot", ErrInvalidField, i, ext)
		}
	}

	return nil
}

// Load loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-readmegen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-readmegen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
