package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// File records a definition file path under the key "file".
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// State records a machine state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Input records an input symbol name under the key "input".
func Input(name string) slog.Attr {
	return slog.String("input", name)
}

// SnapshotID records the snapshot identifier under the key "snapshot_id".
func SnapshotID(id string) slog.Attr {
	return slog.String("snapshot_id", id)
}
