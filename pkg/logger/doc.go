// Package logger builds configured slog loggers through functional options.
//
// A single factory, New, selects the handler (text or JSON), the minimum
// level, the output writer, and any static attributes stamped on every
// record. Defaults favor a command-line process: text on stderr at INFO, so
// stdout stays free for program output.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	    logger.WithAttr(logger.Component("mealysim")),
//	)
//	log.Info("snapshot saved", logger.SnapshotID("run-42"))
//
// Attribute constructors in attr.go keep key naming consistent across the
// codebase; Error produces an attribute only when the error is non-nil, so
// it can be passed unconditionally.
package logger
