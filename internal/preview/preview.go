// Package preview serves the build output locally and rebuilds on change.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultDebounce is the quiet period after the last change before a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// StatusPath serves the last build result as JSON.
const StatusPath = "/_docsite/status"

// Options configures a preview session.
type Options struct {
	Addr     string // Listen address, e.g. ":3000"
	Debounce time.Duration
	// Gatherer, when set, is exposed on /metrics.
	Gatherer prom.Gatherer
}

// Builder runs one site build.
type Builder interface {
	Build(ctx context.Context) (*site.Report, error)
	Config() *config.Config
}

// buildStatus tracks the current build state for the status endpoint.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	lastReport   *site.Report
	hasGoodBuild bool
}

func (bs *buildStatus) record(report *site.Report, err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastReport = report
	bs.lastError = err
	if err == nil {
		bs.hasGoodBuild = true
	}
}

type statusBody struct {
	OK           bool         `json:"ok"`
	Error        string       `json:"error,omitempty"`
	HasGoodBuild bool         `json:"has_good_build"`
	Report       *site.Report `json:"report,omitempty"`
}

func (bs *buildStatus) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	bs.mu.RLock()
	body := statusBody{OK: bs.lastError == nil, HasGoodBuild: bs.hasGoodBuild, Report: bs.lastReport}
	if bs.lastError != nil {
		body.Error = bs.lastError.Error()
	}
	bs.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if !body.OK {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(body)
}

// Run builds once, serves the output directory and rebuilds whenever content,
// sidebars, features or static assets change. It returns when ctx is done.
func Run(ctx context.Context, b Builder, opts Options) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	cfg := b.Config()
	out := cfg.OutputDir()
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	status := &buildStatus{}
	status.record(b.Build(ctx))

	ws, err := newWatchSet(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = ws.Close() }()

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: newHandler(out, status, opts.Gatherer), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Preview server stopped", logfields.Error(err))
		}
	}()
	slog.Info("Preview server listening", slog.String("addr", ln.Addr().String()), logfields.Path(out))

	rebuildReq, trigger := newDebouncer(opts.Debounce)
	startRebuildWorker(ctx, rebuildReq, func() {
		slog.Info("Change detected; rebuilding site")
		status.record(b.Build(ctx))
	})

	ws.run(ctx, trigger)

	slog.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newHandler(out string, status http.Handler, g prom.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(StatusPath, status)
	if g != nil {
		mux.Handle("/metrics", metrics.HTTPHandler(g))
	}
	mux.Handle("/", http.FileServer(http.Dir(out)))
	return mux
}
