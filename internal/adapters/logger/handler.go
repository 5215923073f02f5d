package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/rivebuild/internal/ui/output"
	"go.trai.ch/rivebuild/internal/ui/style"
)

// PrettyHandler writes one coloured line per record. Errors get a cross,
// warnings a warning sign, and informational lines are dimmed so they stand
// apart from the step banners on stdout.
type PrettyHandler struct {
	mu      *sync.Mutex
	out     *termenv.Output
	palette style.Palette
	level   slog.Leveler
	// prefix is prepended to attribute keys, one "name." per open group.
	prefix string
	// attrs holds the attributes added through WithAttrs, already rendered.
	attrs string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		mu:      &sync.Mutex{},
		out:     output.New(w),
		palette: style.DefaultPalette(),
		level:   level,
	}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r as a single line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := h.decoration(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon + " ")
	}
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.prefix, attr)
		return true
	})

	line := h.out.String(b.String()).Foreground(color).String() + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line)
	return err
}

func (h *PrettyHandler) decoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, h.out.Color(string(h.palette.Failure))
	case level >= slog.LevelWarn:
		return style.Warning, h.out.Color(string(h.palette.Warning))
	default:
		return "", h.out.Color(string(h.palette.Muted))
	}
}

// WithAttrs returns a handler that writes attrs after every message.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		appendAttr(&b, h.prefix, attr)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			appendAttr(b, prefix, member)
		}
		return
	}

	b.WriteString(" " + prefix + attr.Key + "=" + attr.Value.String())
}
