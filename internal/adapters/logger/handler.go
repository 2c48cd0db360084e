package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/pkgr/internal/ui/output"
	"go.trai.ch/pkgr/internal/ui/style"
)

// PrettyHandler writes each record as one terminal line: glyph, message, then
// key=value pairs. Lines are tinted by level unless color is disabled.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// prefix qualifies keys of attrs added after WithGroup, e.g. "feed.".
	prefix string
	// bound holds attrs from WithAttrs, already rendered.
	bound []string
}

// NewPrettyHandler creates a PrettyHandler on w, or stderr when w is nil.
// opts.Level is consulted per record, so a *slog.LevelVar can change it later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	return h
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, color := style.ForLevel(r.Level)

	var line strings.Builder
	if glyph != "" {
		line.WriteString(glyph + " ")
	}
	line.WriteString(r.Message)
	for _, field := range h.bound {
		line.WriteString(" " + field)
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, field := range renderAttr(h.prefix, a) {
			line.WriteString(" " + field)
		}
		return true
	})

	text := line.String()
	if h.out.Profile != termenv.Ascii {
		text = h.out.String(text).Foreground(h.out.Color(string(color))).String()
	}
	_, err := h.out.WriteString(text + "\n")
	return err
}

// WithAttrs implements slog.Handler. The attrs keep the group path active now.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.bound = append([]string(nil), h.bound...)
	for _, a := range attrs {
		next.bound = append(next.bound, renderAttr(h.prefix, a)...)
	}
	return &next
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// renderAttr flattens a into key=value fields. Group values expand into dotted keys
// and empty attrs render nothing.
func renderAttr(prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return nil
	}
	if a.Value.Kind() != slog.KindGroup {
		return []string{prefix + a.Key + "=" + a.Value.String()}
	}

	inner := prefix
	if a.Key != "" {
		inner += a.Key + "."
	}
	var fields []string
	for _, member := range a.Value.Group() {
		fields = append(fields, renderAttr(inner, member)...)
	}
	return fields
}
