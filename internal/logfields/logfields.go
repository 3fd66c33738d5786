package logfields

import "log/slog"

// Canonical log field names shared by every package.
const (
	KeySidebar    = "sidebar"
	KeyDocID      = "doc_id"
	KeyCategory   = "category"
	KeyRoute      = "route"
	KeyIcon       = "icon"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyBuildID    = "build_id"
	KeyError      = "error"
)

func Sidebar(name string) slog.Attr   { return slog.String(KeySidebar, name) }
func DocID(id string) slog.Attr       { return slog.String(KeyDocID, id) }
func Category(label string) slog.Attr { return slog.String(KeyCategory, label) }
func Route(r string) slog.Attr        { return slog.String(KeyRoute, r) }
func Icon(ref string) slog.Attr       { return slog.String(KeyIcon, ref) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }

// Error renders err as a string attribute; nil yields an empty value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
