package site

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// Generator builds the site artifacts described by a configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

// NewGenerator creates a generator for cfg. Metrics are discarded until a
// recorder is set.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, recorder: metrics.NoopRecorder{}}
}

// WithRecorder injects a metrics recorder. Returns the generator for chaining.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// Config exposes the generator configuration.
func (g *Generator) Config() *config.Config { return g.cfg }

// Build runs every stage and writes the artifacts to the output directory.
func (g *Generator) Build(ctx context.Context) (*Report, error) {
	return g.run(ctx, g.stages(true))
}

// Validate runs every stage except writing output. It reports the same errors
// as Build without touching the output directory.
func (g *Generator) Validate(ctx context.Context) (*Report, error) {
	return g.run(ctx, g.stages(false))
}

func (g *Generator) stages(write bool) []StageDef {
	defs := []StageDef{
		{StageDiscoverDocs, stageDiscoverDocs},
		{StageLoadNavigation, stageLoadNavigation},
		{StageBuildRoutes, stageBuildRoutes},
		{StageRenderSidebars, stageRenderSidebars},
		{StageRenderIndexes, stageRenderIndexes},
		{StageRenderFeatures, stageRenderFeatures},
		{StageVerifyLinks, stageVerifyLinks},
	}
	if write {
		defs = append(defs, StageDef{StageWriteOutput, stageWriteOutput})
	}
	return defs
}

func (g *Generator) run(ctx context.Context, stages []StageDef) (*Report, error) {
	bs := &BuildState{
		Generator: g,
		Artifacts: newArtifacts(),
		Report:    newReport(g.cfg.Site.Title, time.Now()),
	}
	slog.Info("Starting build", logfields.BuildID(bs.Report.BuildID), logfields.Path(g.cfg.ContentDir()))

	err := runStages(ctx, bs, stages)
	outcome := metrics.BuildSuccess
	if err != nil {
		outcome = metrics.BuildFailed
		var se *StageError
		if errors.As(err, &se) && se.Kind == StageErrorCanceled {
			outcome = metrics.BuildCanceled
		}
	}
	bs.Report.finish(string(outcome))
	g.recorder.IncBuildOutcome(outcome)
	g.recorder.ObserveBuildDuration(time.Since(bs.Report.Started))

	if err != nil {
		slog.Error("Build failed", logfields.BuildID(bs.Report.BuildID), logfields.Error(err))
		return bs.Report, err
	}
	slog.Info("Build complete",
		logfields.BuildID(bs.Report.BuildID),
		logfields.Count(bs.Artifacts.Len()),
		logfields.DurationMS(bs.Report.Duration))
	return bs.Report, nil
}
