// Package projectconfig provides the ProjectConfig struct and loader for
// .testforge.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".testforge.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultDataDir = "data/"

	DefaultFormat = "table"
	DefaultView   = "test-set"
	DefaultLevel  = "full_config"

	DefaultSeverityHigh   = 20.0
	DefaultSeverityMedium = 10.0
	DefaultUniqueProblems = 489
)

// PathsConfig holds directory paths.
type PathsConfig struct {
	Data string `yaml:"data,omitempty"`
}

// DefaultsConfig holds default CLI parameters.
type DefaultsConfig struct {
	Format string `yaml:"format,omitempty"`
	View   string `yaml:"view,omitempty"`
	Level  string `yaml:"level,omitempty"`
	Debug  *bool  `yaml:"debug,omitempty"`
}

// PolicyConfig holds the tunable engine inputs.
type PolicyConfig struct {
	SeverityHigh   float64 `yaml:"severity_high,omitempty"`
	SeverityMedium float64 `yaml:"severity_medium,omitempty"`
	UniqueProblems int     `yaml:"unique_problems,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .testforge.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Policy   PolicyConfig   `yaml:"policy,omitempty"`

	// Dir is the directory the config file was found in, empty when none was.
	Dir string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Data: DefaultDataDir,
		},
		Defaults: DefaultsConfig{
			Format: DefaultFormat,
			View:   DefaultView,
			Level:  DefaultLevel,
			Debug:  boolPtr(false),
		},
		Policy: PolicyConfig{
			SeverityHigh:   DefaultSeverityHigh,
			SeverityMedium: DefaultSeverityMedium,
			UniqueProblems: DefaultUniqueProblems,
		},
	}
}

// Load finds .testforge.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, dir, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Dir = dir
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// DataDir returns the data directory, resolved against the directory the
// config file lives in when it is relative.
func (c *ProjectConfig) DataDir() string {
	if c.Dir == "" || filepath.IsAbs(c.Paths.Data) {
		return c.Paths.Data
	}
	return filepath.Join(c.Dir, c.Paths.Data)
}

func (c *ProjectConfig) validate() error {
	if c.Policy.SeverityMedium > c.Policy.SeverityHigh {
		return fmt.Errorf("policy.severity_medium (%g) exceeds policy.severity_high (%g)",
			c.Policy.SeverityMedium, c.Policy.SeverityHigh)
	}
	if c.Policy.UniqueProblems < 0 {
		return fmt.Errorf("policy.unique_problems must be >= 0, got %d", c.Policy.UniqueProblems)
	}
	return nil
}

// findConfigFile walks up from dir looking for .testforge.yaml (max 10
// levels) and returns its contents and directory. Returns os.ErrNotExist if
// no config file is found.
func findConfigFile(dir string) ([]byte, string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, dir, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Data != "" {
		dst.Paths.Data = src.Paths.Data
	}

	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}
	if src.Defaults.View != "" {
		dst.Defaults.View = src.Defaults.View
	}
	if src.Defaults.Level != "" {
		dst.Defaults.Level = src.Defaults.Level
	}
	if src.Defaults.Debug != nil {
		dst.Defaults.Debug = src.Defaults.Debug
	}

	if src.Policy.SeverityHigh != 0 {
		dst.Policy.SeverityHigh = src.Policy.SeverityHigh
	}
	if src.Policy.SeverityMedium != 0 {
		dst.Policy.SeverityMedium = src.Policy.SeverityMedium
	}
	if src.Policy.UniqueProblems != 0 {
		dst.Policy.UniqueProblems = src.Policy.UniqueProblems
	}
}

func boolPtr(b bool) *bool {
	return &b
}
