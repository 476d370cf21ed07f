package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// handler renders records as
//
//	LEVEL message group.key=value ...
type handler struct {
	W     io.Writer
	Level Level

	// Pre-rendered attributes from WithAttrs.
	attrs []byte

	// Dot-separated group prefix from WithGroup.
	group string
}

var _ slog.Handler = (*handler)(nil)

func (h *handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.Level
}

func (h *handler) Handle(_ context.Context, rec slog.Record) error {
	buf := *getBuf()
	defer putBuf(&buf)

	buf = append(buf, rec.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, strings.TrimRight(rec.Message, "\n")...)
	buf = append(buf, h.attrs...)

	rec.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})

	buf = append(buf, '\n')
	_, err := h.W.Write(buf)
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		out.attrs = appendAttr(out.attrs, h.group, a)
	}
	return &out
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	out := *h
	if len(out.group) > 0 {
		out.group += "."
	}
	out.group += name
	return &out
}

// appendAttr appends " key=value" to buf,
// flattening groups into dot-separated keys.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		if len(a.Key) > 0 {
			if len(group) > 0 {
				group += "."
			}
			group += a.Key
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, group, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	if len(group) > 0 {
		buf = append(buf, group...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	switch v := a.Value; v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \"=\n\t") {
			buf = strconv.AppendQuote(buf, s)
		} else {
			buf = append(buf, s...)
		}

	case slog.KindInt64:
		buf = strconv.AppendInt(buf, v.Int64(), 10)

	case slog.KindUint64:
		buf = strconv.AppendUint(buf, v.Uint64(), 10)

	case slog.KindFloat64:
		buf = strconv.AppendFloat(buf, v.Float64(), 'f', -1, 64)

	case slog.KindBool:
		buf = strconv.AppendBool(buf, v.Bool())

	case slog.KindDuration:
		buf = append(buf, v.Duration().String()...)

	default:
		buf = fmt.Appendf(buf, "%v", v.Any())
	}

	return buf
}

var _bufPool = sync.Pool{
	New: func() any {
		bs := make([]byte, 0, 1024)
		return &bs
	},
}

func getBuf() *[]byte {
	return _bufPool.Get().(*[]byte)
}

func putBuf(bs *[]byte) {
	*bs = (*bs)[:0]
	_bufPool.Put(bs)
}
