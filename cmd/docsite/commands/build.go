package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output          string `short:"o" help:"Override output.directory"`
	NoClean         bool   `name:"no-clean" help:"Keep existing files in the output directory"`
	MetricsTextfile string `name:"metrics-textfile" help:"Write Prometheus metrics to this file after the build (overrides metrics.textfile)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.NoClean {
		cfg.Output.Clean = false
	}
	textfile := cfg.Resolve(cfg.Metrics.Textfile)
	if b.MetricsTextfile != "" {
		textfile = b.MetricsTextfile
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prom.NewRegistry()
	gen := site.NewGenerator(cfg).WithRecorder(metrics.NewPrometheusRecorder(reg))
	report, buildErr := gen.Build(ctx)

	if textfile != "" {
		if err := metrics.WriteTextfile(textfile, reg); err != nil && buildErr == nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
				WithContext("path", textfile).
				Build()
		}
	}
	if buildErr != nil {
		return buildErr
	}
	fmt.Printf("Built %d sidebars, %d index pages and %d routes into %s (build %s)\n",
		report.Sidebars, report.IndexPages, report.Routes, cfg.OutputDir(), report.BuildID)
	return nil
}
