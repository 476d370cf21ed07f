package log

import "log/slog"

// OmitEmpty builds an attribute with fn
// unless value is the zero value for its type,
// in which case it returns an empty attribute that the handler drops.
//
//	logger.Debug("built code", log.OmitEmpty(slog.String, "decode", bits))
func OmitEmpty[T comparable](fn func(string, T) slog.Attr, name string, value T) slog.Attr {
	var zero T
	if value == zero {
		return slog.Attr{}
	}
	return fn(name, value)
}
