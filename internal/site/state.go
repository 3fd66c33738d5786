package site

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/docsite/internal/docs"
	"git.home.luguber.info/inful/docsite/internal/features"
	"git.home.luguber.info/inful/docsite/internal/linkverify"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/render"
)

// BuildState carries values between stages.
type BuildState struct {
	Generator *Generator
	Registry  *docs.Registry
	Sidebars  *nav.Sidebars
	Routes    *render.RouteTable
	Features  []features.Descriptor
	Artifacts *Artifacts
	Pages     []linkverify.Page
	Report    *Report
}

func (bs *BuildState) recorder() metrics.Recorder {
	if bs.Generator == nil || bs.Generator.recorder == nil {
		return metrics.NoopRecorder{}
	}
	return bs.Generator.recorder
}

// Artifacts are output files keyed by slash-separated path relative to the
// output directory, kept in insertion order.
type Artifacts struct {
	order []string
	files map[string][]byte
}

func newArtifacts() *Artifacts {
	return &Artifacts{files: make(map[string][]byte)}
}

// Add stores a file. Paths are unique within one build.
func (a *Artifacts) Add(rel string, data []byte) error {
	if _, ok := a.files[rel]; ok {
		return fmt.Errorf("artifact %s produced twice", rel)
	}
	a.files[rel] = data
	a.order = append(a.order, rel)
	return nil
}

// Get returns the content of rel.
func (a *Artifacts) Get(rel string) ([]byte, bool) {
	b, ok := a.files[rel]
	return b, ok
}

// Paths returns artifact paths in insertion order.
func (a *Artifacts) Paths() []string { return slices.Clone(a.order) }

func (a *Artifacts) Len() int { return len(a.order) }
