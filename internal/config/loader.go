package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".flpscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the contents of a .flpscan configuration file.
// Every field is optional; zero values mean "use the built-in default".
//
// Example:
//
//	output: reports/coverage.html
//	top: 50
//	parser: /opt/pyflp/bin/flp2json
type File struct {
	// Output is the default report output path.
	Output string `yaml:"output"`

	// Top is the default display row limit for ranked tables.
	Top int `yaml:"top"`

	// Parser is the default FLP dumper command name or path.
	Parser string `yaml:"parser"`
}

// LoadConfigFile loads defaults from a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified by
// the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. .flpscan in the current directory
//  3. config.yaml in the XDG config directory for flpscan
//  4. .flpscan in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if path, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml")); err == nil {
		return path
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// Apply copies the file's non-zero values onto cfg.
// CLI flags the user set explicitly are expected to be reapplied by the
// caller afterwards, so flag values always win over file values.
func (f *File) Apply(cfg *Config) {
	if f.Output != "" {
		cfg.OutputFile = f.Output
	}
	if f.Top > 0 {
		cfg.TopRows = f.Top
	}
	if f.Parser != "" {
		cfg.ParserCommand = f.Parser
	}
}
