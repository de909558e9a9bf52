package main

import (
	"io"
	"log/slog"
	"os"
)

var theLog = newLog(os.Stderr)

// newLog logs plain text lines to w: no timestamps and no level on
// informational records.
func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) != 0 {
				return a
			}
			switch {
			case a.Key == slog.TimeKey:
				return slog.Attr{}
			case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
				return slog.Attr{}
			}
			return a
		},
	}))
}
