package pillar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// DefaultDir is the log directory used when New or Setup receive an empty
// directory argument, relative to the process working directory.
const DefaultDir = "logs"

// logFileName is the file sink's file name inside the log directory.
const logFileName = "log.txt"

type options struct {
	consoleWriter io.Writer
	color         bool
}

// Option configures a Logger at construction.
type Option func(*options)

// WithConsoleWriter redirects the console sink to w instead of standard
// output. Intended for tests.
func WithConsoleWriter(w io.Writer) Option {
	return func(o *options) { o.consoleWriter = w }
}

// WithColor toggles ANSI color on the console sink. Default is on. The file
// sink is always plain regardless of this option.
func WithColor(enabled bool) Option {
	return func(o *options) { o.color = enabled }
}

// sink is one output destination: a writer, a minimum level, and a bound
// formatter. It implements slog.Handler. Writes are serialized by the sink's
// own mutex so concurrent emissions cannot interleave within a line.
type sink struct {
	mu  sync.Mutex
	w   io.Writer
	min slog.Level
	f   *Formatter
}

func (s *sink) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.min
}

func (s *sink) Handle(_ context.Context, r slog.Record) error {
	rec := Record{
		Time:    r.Time,
		Level:   levelFromSlog(r.Level),
		Message: r.Message,
	}
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		rec.File = frame.File
		rec.Line = frame.Line
	}

	line := s.f.Format(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// The columnar line format has no field slots; attrs and groups pass through.
func (s *sink) WithAttrs([]slog.Attr) slog.Handler { return s }
func (s *sink) WithGroup(string) slog.Handler      { return s }

// fanout dispatches a record to every sink whose threshold passes. Sinks are
// independent: a write error on one does not stop delivery to the others.
type fanout struct {
	sinks []slog.Handler
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range f.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, s := range f.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}
		if err := s.Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs([]slog.Attr) slog.Handler { return f }
func (f fanout) WithGroup(string) slog.Handler      { return f }

// Logger is the assembled dual-sink logger. It is safe for concurrent use.
type Logger struct {
	handler slog.Handler
	file    *os.File
	mu      sync.Mutex // protects file operations
}

// New assembles a Logger writing to two sinks: standard output (INFO and
// above, colorized) and <dir>/log.txt (DEBUG and above, plain text,
// appended). An empty dir defaults to [DefaultDir]. The directory and any
// missing parents are created; creation or open failure returns the error
// and no logger.
func New(dir string, opts ...Option) (*Logger, error) {
	if dir == "" {
		dir = DefaultDir
	}

	o := options{
		consoleWriter: os.Stdout,
		color:         true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	console := &sink{w: o.consoleWriter, min: slog.LevelInfo, f: NewFormatter(o.color)}
	fileSink := &sink{w: file, min: slog.LevelDebug, f: NewFormatter(false)}

	return &Logger{
		handler: fanout{sinks: []slog.Handler{console, fileSink}},
		file:    file,
	}, nil
}

// Process-wide shared instance, assembled once by Setup.
var (
	setupMu     sync.Mutex
	setupLogger *Logger
)

// Setup returns the process-wide shared Logger, assembling it with New on
// the first successful call. Every later call returns that same instance
// unmodified, whatever arguments it passes: sinks are registered exactly
// once per process. A failed first call is not memoized.
//
// Callers that need independent instances should use New directly.
func Setup(dir string, opts ...Option) (*Logger, error) {
	setupMu.Lock()
	defer setupMu.Unlock()

	if setupLogger != nil {
		return setupLogger, nil
	}

	logger, err := New(dir, opts...)
	if err != nil {
		return nil, err
	}
	setupLogger = logger
	return logger, nil
}

// log builds a record carrying the caller's program counter and hands it to
// the sinks. The skip depth assumes exported method -> log -> Callers.
func (l *Logger) log(level Level, msg string) {
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level.toSlog(), msg, pcs[0])
	_ = l.handler.Handle(context.Background(), r)
}

// sprint renders emission arguments the way fmt would, separating operands
// with spaces.
func sprint(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// Debug logs at DEBUG level: file sink only under the default thresholds.
func (l *Logger) Debug(args ...any) { l.log(LevelDebug, sprint(args...)) }

// Info logs at INFO level.
func (l *Logger) Info(args ...any) { l.log(LevelInfo, sprint(args...)) }

// Warning logs at WARNING level.
func (l *Logger) Warning(args ...any) { l.log(LevelWarning, sprint(args...)) }

// Error logs at ERROR level.
func (l *Logger) Error(args ...any) { l.log(LevelError, sprint(args...)) }

// Critical logs at CRITICAL level.
func (l *Logger) Critical(args ...any) { l.log(LevelCritical, sprint(args...)) }

// Debugf logs a formatted message at DEBUG level.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at INFO level.
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warningf logs a formatted message at WARNING level.
func (l *Logger) Warningf(format string, args ...any) {
	l.log(LevelWarning, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at ERROR level.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}

// Criticalf logs a formatted message at CRITICAL level.
func (l *Logger) Criticalf(format string, args ...any) {
	l.log(LevelCritical, fmt.Sprintf(format, args...))
}

// Slog returns a *slog.Logger backed by the same two sinks, for code that
// already speaks slog. Records logged through it carry their own call sites.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.handler)
}

// Close flushes and closes the log file. It is safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		if err := l.file.Sync(); err != nil {
			return fmt.Errorf("failed to sync log file: %w", err)
		}
		if err := l.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
		l.file = nil
	}
	return nil
}

// NopLogger returns a Logger with no sinks that discards all output. Useful
// for testing or when logging is disabled.
func NopLogger() *Logger {
	return &Logger{handler: fanout{}}
}
