// Package logging configures the default slog logger for the
// application.
package logging

import (
	"log/slog"
	"os"
)

// Init installs a JSON handler on the default logger.
//
// The handler writes to stderr (stdout belongs to the GUI toolkit) and
// normalizes the time and level keys to "ts" and "severity" so logs
// are easy to query.
func Init(level string) {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "ts"
			case slog.LevelKey:
				a.Key = "severity"
			}
			return a
		},
	})

	slog.SetDefault(slog.New(handler).With(slog.String("service", "refile")))
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
