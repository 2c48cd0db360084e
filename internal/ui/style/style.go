// Package style is the pkgr terminal palette. Colors are named for what they mark
// in plan and log output rather than for their hue.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Added and Removed mark plan actions; the rest tint log lines.
var (
	Added   = lipgloss.Color("#16A34A")
	Removed = lipgloss.Color("#DC2626")
	Caution = lipgloss.Color("#D97706")
	Detail  = lipgloss.Color("#7C3AED")
	Muted   = lipgloss.Color("#6B7280")
)

// Glyphs prefix plan entries, completed actions and warning or error lines.
const (
	Done      = "✓"
	Failed    = "✗"
	Attention = "!"
	Install   = "+"
	Uninstall = "-"
)

// ForLevel returns the glyph and color of a log line. Info and debug lines carry no glyph.
func ForLevel(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return Failed, Removed
	case level >= slog.LevelWarn:
		return Attention, Caution
	case level < slog.LevelInfo:
		return "", Detail
	default:
		return "", Muted
	}
}
