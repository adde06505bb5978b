package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyDir      = "directory"
	KeyDocument = "document"
	KeyOutput   = "output"
	KeyRunID    = "run_id"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr      { return slog.String(KeyDir, d) }
func Document(d string) slog.Attr { return slog.String(KeyDocument, d) }
func Output(o string) slog.Attr   { return slog.String(KeyOutput, o) }
func RunID(id string) slog.Attr   { return slog.String(KeyRunID, id) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
