package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/preview"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// PreviewCmd serves the output directory and rebuilds on change.
type PreviewCmd struct {
	Addr     string        `name:"addr" default:":3000" help:"Listen address."`
	Debounce time.Duration `name:"debounce" default:"300ms" help:"Quiet period after a change before rebuilding."`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reg := prom.NewRegistry()
	gen := site.NewGenerator(cfg).WithRecorder(metrics.NewPrometheusRecorder(reg))
	return preview.Run(ctx, gen, preview.Options{Addr: p.Addr, Debounce: p.Debounce, Gatherer: reg})
}
