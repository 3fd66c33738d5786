package config

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/features"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// Example returns the configuration written by Init.
func Example() Config {
	return Config{
		Site: SiteConfig{
			Title:        "Amply Documentation",
			BaseURL:      "https://docs.amply.example",
			DocsBasePath: "/docs",
		},
		Content:  ContentConfig{Dir: "docs"},
		Sidebars: "sidebars.yaml",
		Features: "features.yaml",
		Static:   "static",
		Output:   OutputConfig{Directory: "./build", Clean: true},
	}
}

// Init writes an example configuration to configPath together with sidebars.yaml
// and features.yaml holding the built-in Amply navigation and feature list.
// Existing files are kept unless force is set.
func Init(configPath string, force bool) error {
	cfg := Example()
	dir := filepath.Dir(configPath)

	sidebars, err := yaml.Marshal(nav.Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal sidebars").Build()
	}
	feats, err := features.Marshal(features.Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal features").Build()
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}

	files := []struct {
		path string
		data []byte
	}{
		{configPath, data},
		{filepath.Join(dir, cfg.Sidebars), sidebars},
		{filepath.Join(dir, cfg.Features), feats},
	}
	if !force {
		for _, f := range files {
			if _, err := os.Stat(f.path); err == nil {
				return errors.ConfigError("file already exists (use --force to overwrite)").
					WithContext("path", f.path).
					Build()
			}
		}
	}
	for _, f := range files {
		if err := renameio.WriteFile(f.path, f.data, 0o644); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to write file").
				WithContext("path", f.path).
				Build()
		}
	}
	return nil
}
