package log

import "log/slog"

// Discard is a logger that discards all its messages.
var Discard = &Logger{slog.New(slog.DiscardHandler)}
