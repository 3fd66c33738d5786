// Package metrics records build observability data for docsite.
//
// Components receive a Recorder and default to NoopRecorder, so call sites never
// check for nil:
//
//	gen := site.NewGenerator(cfg) // records into metrics.NoopRecorder{}
//	gen.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// PrometheusRecorder registers its collectors on the given registry. After a
// one-shot build the registry can be written to a node_exporter textfile with
// WriteTextfile; the preview server exposes it over HTTP with HTTPHandler.
package metrics
