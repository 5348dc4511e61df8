// Package log builds the slog.Logger used by the schemagen command.
//
// Records are rendered by a charmbracelet/log handler. The command writes
// generated source to stdout, so logs always go to the writer given to New,
// which is stderr in practice.
package log

import (
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Prefix is printed in front of every record.
const Prefix = "schemagen"

// ParseLevel maps a level name to its slog level. Unknown names fall back to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing human readable records to w, dropping records
// below the given level.
func New(w io.Writer, level string) *slog.Logger {
	h := charmlog.NewWithOptions(w, charmlog.Options{
		Level:  charmlog.Level(ParseLevel(level)),
		Prefix: Prefix,
	})
	return slog.New(h)
}
