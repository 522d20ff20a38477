package pillar

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// levelWidth is the fixed width of the level column. "CRITICAL" fills it
	// exactly; the four shorter names are right-padded with spaces.
	levelWidth = 8

	timeLayout = "2006-01-02 15:04:05"
	fieldSep   = " | "
)

// Record is a single log event as the formatter sees it: a capture-time
// instant, a severity, the emitting call site, and the rendered message.
type Record struct {
	Time    time.Time
	Level   Level
	File    string
	Line    int
	Message string
}

// palette holds the console styles. Timestamp and location colors are fixed;
// the level and message fields share a color chosen by severity.
type palette struct {
	timestamp lipgloss.Style
	location  lipgloss.Style
	neutral   lipgloss.Style
	warning   lipgloss.Style
	alert     lipgloss.Style
}

// Styles are built against a renderer pinned to the basic ANSI profile so
// the formatter emits the same escape sequences regardless of what terminal
// (if any) the process is attached to.
var colorPalette = func() palette {
	r := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))
	r.SetColorProfile(termenv.ANSI)
	return palette{
		timestamp: r.NewStyle().Foreground(lipgloss.Color("2")), // green
		location:  r.NewStyle().Foreground(lipgloss.Color("4")), // blue
		neutral:   r.NewStyle().Foreground(lipgloss.Color("8")), // grey
		warning:   r.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		alert:     r.NewStyle().Foreground(lipgloss.Color("1")), // red
	}
}()

// byLevel maps severity to the style for the level and message fields. The
// switch enumerates every Level; values outside the enum get the neutral
// style.
func (p palette) byLevel(l Level) lipgloss.Style {
	switch l {
	case LevelDebug, LevelInfo:
		return p.neutral
	case LevelWarning:
		return p.warning
	case LevelError, LevelCritical:
		return p.alert
	}
	return p.neutral
}

// Formatter renders a Record as one line of aligned columns:
//
//	<timestamp> | <level, padded to 8> | <file>:<line> | <message>
//
// Color mode is fixed at construction. With color on, fields are wrapped in
// ANSI escape sequences after padding, so the visible column offsets are the
// same as in plain mode. With color off the output contains no escape
// sequences at all.
type Formatter struct {
	color bool
}

// NewFormatter returns a Formatter with the given color mode.
func NewFormatter(color bool) *Formatter {
	return &Formatter{color: color}
}

// Format renders r as a single line without a trailing newline. It never
// fails: every field is plain string formatting.
func (f *Formatter) Format(r Record) string {
	ts := r.Time.Format(timeLayout)
	level := fmt.Sprintf("%-*s", levelWidth, r.Level.String())
	loc := fmt.Sprintf("%s:%d", r.File, r.Line)
	msg := r.Message

	if f.color {
		main := colorPalette.byLevel(r.Level)
		ts = colorPalette.timestamp.Render(ts)
		level = main.Render(level)
		loc = colorPalette.location.Render(loc)
		msg = main.Render(msg)
	}

	return ts + fieldSep + level + fieldSep + loc + fieldSep + msg
}
