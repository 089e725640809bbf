// Package config loads render-settings files for the wkpdf CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kasparsaleksejevs/go-wkhtmltopdf/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound     = errors.New("config file not found")
	ErrEmptyConfigName    = errors.New("config name cannot be empty")
	ErrConfigParse        = errors.New("failed to parse config")
	ErrConfigTooLarge     = errors.New("config exceeds maximum size")
	ErrInvalidOrientation = errors.New("invalid orientation")
)

// maxConfigSize limits config input to prevent memory exhaustion (1 MB).
const maxConfigSize = 1 << 20

// configDirName is the subdirectory of the user config dir searched for
// named configs.
const configDirName = "wkpdf"

// Config holds render settings for the wkpdf CLI. Unset optional fields
// (nil pointers) leave the corresponding wkhtmltopdf default untouched.
type Config struct {
	Executable string     `yaml:"executable"` // explicit wkhtmltopdf path (empty = discover)
	Auth       AuthConfig `yaml:"auth"`
	Page       PageConfig `yaml:"page"`
}

// AuthConfig holds HTTP authentication settings forwarded to wkhtmltopdf.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// PageConfig holds page layout settings.
type PageConfig struct {
	BottomMargin          *int   `yaml:"bottomMargin"` // mm
	LeftMargin            *int   `yaml:"leftMargin"`   // mm
	RightMargin           *int   `yaml:"rightMargin"`  // mm
	TopMargin             *int   `yaml:"topMargin"`    // mm
	Orientation           string `yaml:"orientation"`  // "Portrait" or "Landscape"
	PrintMediaType        *bool  `yaml:"printMediaType"`
	DisableSmartShrinking *bool  `yaml:"disableSmartShrinking"`
	JavascriptDelay       *int   `yaml:"javascriptDelay"` // milliseconds
}

// DefaultConfig returns a neutral configuration that changes nothing.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field values. Margins and delays are deliberately not
// range-checked; the tool itself rejects what it cannot use.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be Portrait or Landscape)", ErrInvalidOrientation, c.Page.Orientation)
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it is treated as a file path.
// Otherwise it is treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/wkpdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

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
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
