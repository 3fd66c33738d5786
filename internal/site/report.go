package site

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/version"
)

// Report summarizes one build. It is written as manifest.json.
type Report struct {
	BuildID     string    `json:"build_id"`
	Version     string    `json:"version"`
	Site        string    `json:"site"`
	Started     time.Time `json:"started"`
	Duration    float64   `json:"duration_ms"`
	ContentHash string    `json:"content_hash"`
	Outcome     string    `json:"outcome"`

	Documents  int `json:"documents"`
	Sidebars   int `json:"sidebars"`
	Routes     int `json:"routes"`
	IndexPages int `json:"index_pages"`
	Features   int `json:"features"`

	Stages []StageTiming `json:"stages"`
}

// StageTiming is the wall time of one completed stage.
type StageTiming struct {
	Stage    StageName `json:"stage"`
	Duration float64   `json:"duration_ms"`
}

func newReport(site string, started time.Time) *Report {
	return &Report{
		BuildID: uuid.NewString(),
		Version: version.String(),
		Site:    site,
		Started: started,
	}
}

func (r *Report) recordStage(name StageName, d time.Duration) {
	r.Stages = append(r.Stages, StageTiming{Stage: name, Duration: ms(d)})
}

func (r *Report) finish(outcome string) {
	r.Outcome = outcome
	r.Duration = ms(time.Since(r.Started))
}

// MarshalIndent encodes the report for manifest.json.
func (r *Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
