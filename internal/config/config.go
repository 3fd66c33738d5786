package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// DefaultFile is the configuration file name used when none is given.
const DefaultFile = "docsite.yaml"

// Config represents the application configuration.
type Config struct {
	Site     SiteConfig    `yaml:"site"`
	Content  ContentConfig `yaml:"content"`
	Sidebars string        `yaml:"sidebars,omitempty"` // Sidebars YAML; empty uses the built-in Amply sidebars
	Features string        `yaml:"features,omitempty"` // Feature list YAML; empty uses the built-in Amply features
	Static   string        `yaml:"static,omitempty"`   // Static assets (icons) directory
	Output   OutputConfig  `yaml:"output"`
	Metrics  MetricsConfig `yaml:"metrics,omitempty"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// SiteConfig describes the published site.
type SiteConfig struct {
	Title        string `yaml:"title"`
	BaseURL      string `yaml:"base_url,omitempty"`
	DocsBasePath string `yaml:"docs_base_path,omitempty"` // URL prefix of documentation routes
}

// ContentConfig locates the Markdown documents.
type ContentConfig struct {
	Dir           string `yaml:"dir"`
	IncludeDrafts bool   `yaml:"include_drafts,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// MetricsConfig controls metrics export after a build.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"` // node_exporter textfile path
}

// Load reads, expands, defaults and validates the configuration at configPath.
// Variables from .env and .env.local are loaded first and never override the
// process environment.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewError(errors.CategoryNotFound, "configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	return parse([]byte(os.ExpandEnv(string(data))), filepath.Dir(configPath))
}

// Parse decodes configuration YAML without environment expansion, applies
// defaults and validates the result. Relative paths resolve against the working
// directory.
func Parse(data []byte) (*Config, error) {
	return parse(data, "")
}

func parse(data []byte, dir string) (*Config, error) {
	cfg := Config{dir: dir}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Build()
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve returns p relative to the configuration file's directory. Absolute
// and empty paths are returned unchanged.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// ContentDir returns the resolved content directory.
func (c *Config) ContentDir() string { return c.Resolve(c.Content.Dir) }

// OutputDir returns the resolved output directory.
func (c *Config) OutputDir() string { return c.Resolve(c.Output.Directory) }

func (c *Config) String() string {
	return fmt.Sprintf("site=%q content=%s output=%s", c.Site.Title, c.ContentDir(), c.OutputDir())
}
