package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names.
const (
	StageDiscoverDocs   StageName = "discover_docs"
	StageLoadNavigation StageName = "load_navigation"
	StageBuildRoutes    StageName = "build_routes"
	StageRenderSidebars StageName = "render_sidebars"
	StageRenderIndexes  StageName = "render_indexes"
	StageRenderFeatures StageName = "render_features"
	StageVerifyLinks    StageName = "verify_links"
	StageWriteOutput    StageName = "write_output"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage with its name.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageErrorKind classifies the outcome of a failed stage.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"
	StageErrorCanceled StageErrorKind = "canceled"
)

// StageError records which stage failed and why.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	rec := bs.recorder()
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			rec.IncStageResult(string(st.Name), metrics.ResultCanceled)
			return &StageError{Kind: StageErrorCanceled, Stage: st.Name, Err: err}
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.recordStage(st.Name, dur)
		rec.ObserveStageDuration(string(st.Name), dur)

		if err != nil {
			kind, result := StageErrorFatal, metrics.ResultFatal
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				kind, result = StageErrorCanceled, metrics.ResultCanceled
			}
			rec.IncStageResult(string(st.Name), result)
			return &StageError{Kind: kind, Stage: st.Name, Err: err}
		}
		rec.IncStageResult(string(st.Name), metrics.ResultSuccess)
		slog.Debug("Stage complete", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
	}
	return nil
}
