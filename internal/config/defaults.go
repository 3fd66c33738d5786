package config

import "strings"

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles Site configuration defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Amply Documentation"
	}
	if cfg.Site.DocsBasePath == "" {
		cfg.Site.DocsBasePath = "/docs"
	}
	cfg.Site.DocsBasePath = "/" + strings.Trim(cfg.Site.DocsBasePath, "/")
	return nil
}

// ContentDefaultApplier handles Content configuration defaults.
type ContentDefaultApplier struct{}

func (ContentDefaultApplier) Domain() string { return "content" }

func (ContentDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "docs"
	}
	return nil
}

// OutputDefaultApplier handles Output configuration defaults.
type OutputDefaultApplier struct{}

func (OutputDefaultApplier) Domain() string { return "output" }

func (OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = "./build"
		cfg.Output.Clean = true
	}
	return nil
}

func defaultAppliers() []DefaultApplier {
	return []DefaultApplier{SiteDefaultApplier{}, ContentDefaultApplier{}, OutputDefaultApplier{}}
}

func applyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers() {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
