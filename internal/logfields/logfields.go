package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage      = "stage"
	KeyTool       = "tool"
	KeyPath       = "path"
	KeyArchive    = "archive"
	KeyVersion    = "version"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
	KeyRunID      = "run_id"
	KeyOutcome    = "outcome"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func Tool(name string) slog.Attr       { return slog.String(KeyTool, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Archive(name string) slog.Attr    { return slog.String(KeyArchive, name) }
func Version(v string) slog.Attr       { return slog.String(KeyVersion, v) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Outcome(o string) slog.Attr       { return slog.String(KeyOutcome, o) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
