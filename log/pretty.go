package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyTextHandler implements a colorized text handler.
type prettyTextHandler struct {
	opts       slog.HandlerOptions
	mu         *sync.Mutex
	w          io.Writer
	formatTime FormatTime
	attrs      []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:       *opts,
		mu:         &sync.Mutex{},
		w:          w,
		formatTime: formatTime,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if stamp := h.formatTime(r.Time); stamp != "" {
			h.writeField(buf, slog.TimeKey, colorBlue, stamp)
		}
	}

	h.writeLevel(buf, r.Level)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeField(buf, slog.SourceKey, colorGray,
				fmt.Sprintf("%s:%d", src.File, src.Line))
		}
	}

	h.writeField(buf, slog.MessageKey, colorCyan, r.Message)

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyTextHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	var color string

	switch {
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level >= slog.LevelInfo:
		color = colorGreen
	default:
		color = colorBlue
	}

	h.writeField(buf, slog.LevelKey, color, Level(level).String())
}

func (h *prettyTextHandler) writeField(
	buf *bytes.Buffer,
	key, color, value string,
) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')
	buf.WriteString(color)
	buf.WriteString(value)
	buf.WriteString(colorReset)
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	v := a.Value.Resolve()

	switch v.Kind() {
	case slog.KindInt64:
		h.writeField(buf, a.Key, colorYellow,
			strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		h.writeField(buf, a.Key, colorYellow,
			strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		h.writeField(buf, a.Key, colorYellow,
			strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			h.writeField(buf, a.Key, colorGreen, "true")
		} else {
			h.writeField(buf, a.Key, colorRed, "false")
		}

	case slog.KindDuration:
		h.writeField(buf, a.Key, colorMagenta, v.Duration().String())

	case slog.KindTime:
		h.writeField(buf, a.Key, colorBlue, v.Time().String())

	case slog.KindGroup:
		for _, member := range v.Group() {
			h.writeAttr(buf, slog.Attr{
				Key:   a.Key + "." + member.Key,
				Value: member.Value,
			})
		}

	default:
		h.writeField(buf, a.Key, colorCyan, v.String())
	}
}
