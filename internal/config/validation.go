package config

import (
	"net/url"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// ValidateConfig checks a defaulted configuration.
func ValidateConfig(cfg *Config) error {
	v := configurationValidator{config: cfg}
	return v.validate()
}

type configurationValidator struct {
	config *Config
}

func (cv configurationValidator) validate() error {
	if err := cv.validateSite(); err != nil {
		return err
	}
	return cv.validatePaths()
}

func (cv configurationValidator) validateSite() error {
	if cv.config.Site.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(cv.config.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.ConfigError("site.base_url must be an absolute URL").
			WithContext("base_url", cv.config.Site.BaseURL).
			Build()
	}
	return nil
}

func (cv configurationValidator) validatePaths() error {
	out := filepath.Clean(cv.config.Output.Directory)
	if out == "." || out == "/" {
		return errors.ConfigError("output.directory must not be the working directory or filesystem root").
			WithContext("directory", cv.config.Output.Directory).
			Build()
	}
	outDir := absPath(cv.config.OutputDir())
	if within(absPath(cv.config.ContentDir()), outDir) {
		return errors.ConfigError("output.directory must not contain content.dir").
			WithContext("directory", cv.config.Output.Directory).
			WithContext("content_dir", cv.config.Content.Dir).
			Build()
	}
	configDir := cv.config.dir
	if configDir == "" {
		configDir = "."
	}
	if within(absPath(configDir), outDir) {
		return errors.ConfigError("output.directory must not contain the configuration directory").
			WithContext("directory", cv.config.Output.Directory).
			Build()
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// within reports whether p is dir or lies below it.
func within(p, dir string) bool {
	if p == dir {
		return true
	}
	return strings.HasPrefix(p, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
